package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/d3ku010/macroo/internal/app"
	"github.com/d3ku010/macroo/internal/model"
)

const (
	mealsFile   = "meals.json"
	waterFile   = "water.json"
	profileFile = "profile.json"
)

type storedMeal struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"mealType"`
	Calories   int     `json:"calories"`
	ProteinG   float64 `json:"protein"`
	CarbsG     float64 `json:"carbs"`
	FatG       float64 `json:"fat"`
	ConsumedAt string  `json:"timestamp"`
	Notes      string  `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

type storedWater struct {
	ID       string `json:"id"`
	AmountML int    `json:"amountMl"`
	LoggedAt string `json:"timestamp"`
}

type storedProfile struct {
	Name           string  `json:"name"`
	CalorieTarget  int     `json:"calorieTarget"`
	WaterTargetML  int     `json:"waterTargetMl"`
	ProteinTargetG float64 `json:"proteinTarget"`
	CarbsTargetG   float64 `json:"carbsTarget"`
	FatTargetG     float64 `json:"fatTarget"`
	UpdatedAt      string  `json:"updatedAt"`
}

// FileRepository keeps each collection as a JSON document keyed by record ID,
// mirroring the key-value layout of the mobile app's local storage.
type FileRepository struct {
	dir string
	mu  sync.Mutex
}

func OpenFile(dir string) (*FileRepository, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := app.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &FileRepository{dir: dir}, nil
}

func (r *FileRepository) Close() error {
	return nil
}

func (r *FileRepository) AddMeal(m model.Meal) (model.Meal, error) {
	if err := validateMeal(&m); err != nil {
		return model.Meal{}, err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	meals := map[string]storedMeal{}
	if err := r.load(mealsFile, &meals); err != nil {
		return model.Meal{}, err
	}
	meals[m.ID] = storedMeal{
		ID:         m.ID,
		Name:       m.Name,
		Type:       string(m.Type),
		Calories:   m.Calories,
		ProteinG:   m.ProteinG,
		CarbsG:     m.CarbsG,
		FatG:       m.FatG,
		ConsumedAt: m.ConsumedAt.Format(time.RFC3339),
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
	if err := r.save(mealsFile, meals); err != nil {
		return model.Meal{}, err
	}
	return m, nil
}

func (r *FileRepository) ListMeals(f MealFilter) ([]model.Meal, error) {
	rng, err := resolveRange(f.Date, f.FromDate, f.ToDate)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := map[string]storedMeal{}
	if err := r.load(mealsFile, &stored); err != nil {
		return nil, err
	}

	meals := make([]model.Meal, 0, len(stored))
	for _, s := range stored {
		consumed, err := time.Parse(time.RFC3339, s.ConsumedAt)
		if err != nil {
			// Records without a usable date never match a range.
			continue
		}
		if !rng.contains(consumed) {
			continue
		}
		if f.Type != "" && model.MealType(s.Type) != f.Type {
			continue
		}
		m := model.Meal{
			ID:         s.ID,
			Name:       s.Name,
			Type:       model.MealType(s.Type),
			Calories:   s.Calories,
			ProteinG:   s.ProteinG,
			CarbsG:     s.CarbsG,
			FatG:       s.FatG,
			ConsumedAt: consumed,
			Notes:      s.Notes,
		}
		if created, err := time.Parse(time.RFC3339, s.CreatedAt); err == nil {
			m.CreatedAt = created
		}
		meals = append(meals, m)
	}
	sort.Slice(meals, func(i, j int) bool {
		return meals[i].ConsumedAt.After(meals[j].ConsumedAt)
	})
	if f.Limit > 0 && len(meals) > f.Limit {
		meals = meals[:f.Limit]
	}
	return meals, nil
}

func (r *FileRepository) DeleteMeal(id string) error {
	if id == "" {
		return fmt.Errorf("meal id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	meals := map[string]storedMeal{}
	if err := r.load(mealsFile, &meals); err != nil {
		return err
	}
	if _, ok := meals[id]; !ok {
		return fmt.Errorf("meal %s not found", id)
	}
	delete(meals, id)
	return r.save(mealsFile, meals)
}

func (r *FileRepository) AddWater(w model.WaterEntry) (model.WaterEntry, error) {
	if err := validateWater(&w); err != nil {
		return model.WaterEntry{}, err
	}
	if w.ID == "" {
		w.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries := map[string]storedWater{}
	if err := r.load(waterFile, &entries); err != nil {
		return model.WaterEntry{}, err
	}
	entries[w.ID] = storedWater{
		ID:       w.ID,
		AmountML: w.AmountML,
		LoggedAt: w.LoggedAt.Format(time.RFC3339),
	}
	if err := r.save(waterFile, entries); err != nil {
		return model.WaterEntry{}, err
	}
	return w, nil
}

func (r *FileRepository) ListWater(f WaterFilter) ([]model.WaterEntry, error) {
	rng, err := resolveRange(f.Date, f.FromDate, f.ToDate)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := map[string]storedWater{}
	if err := r.load(waterFile, &stored); err != nil {
		return nil, err
	}

	entries := make([]model.WaterEntry, 0, len(stored))
	for _, s := range stored {
		logged, err := time.Parse(time.RFC3339, s.LoggedAt)
		if err != nil {
			continue
		}
		if !rng.contains(logged) {
			continue
		}
		entries = append(entries, model.WaterEntry{ID: s.ID, AmountML: s.AmountML, LoggedAt: logged})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LoggedAt.After(entries[j].LoggedAt)
	})
	if f.Limit > 0 && len(entries) > f.Limit {
		entries = entries[:f.Limit]
	}
	return entries, nil
}

func (r *FileRepository) Profile() (model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := storedProfile{CalorieTarget: 2000, WaterTargetML: 2000}
	if err := r.load(profileFile, &s); err != nil {
		return model.Profile{}, err
	}
	p := model.Profile{
		Name:           s.Name,
		CalorieTarget:  s.CalorieTarget,
		WaterTargetML:  s.WaterTargetML,
		ProteinTargetG: s.ProteinTargetG,
		CarbsTargetG:   s.CarbsTargetG,
		FatTargetG:     s.FatTargetG,
	}
	if updated, err := time.Parse(time.RFC3339, s.UpdatedAt); err == nil {
		p.UpdatedAt = updated
	}
	return p, nil
}

func (r *FileRepository) SaveProfile(p model.Profile) error {
	if err := validateProfile(&p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(profileFile, storedProfile{
		Name:           p.Name,
		CalorieTarget:  p.CalorieTarget,
		WaterTargetML:  p.WaterTargetML,
		ProteinTargetG: p.ProteinTargetG,
		CarbsTargetG:   p.CarbsTargetG,
		FatTargetG:     p.FatTargetG,
		UpdatedAt:      time.Now().Format(time.RFC3339),
	})
}

func (r *FileRepository) load(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (r *FileRepository) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(r.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
