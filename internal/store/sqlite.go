package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/d3ku010/macroo/internal/db"
	"github.com/d3ku010/macroo/internal/model"
)

type SQLiteRepository struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		sqldb.Close()
		return nil, err
	}
	return &SQLiteRepository{db: sqldb}, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// DB exposes the underlying handle for app_config access.
func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) AddMeal(m model.Meal) (model.Meal, error) {
	if err := validateMeal(&m); err != nil {
		return model.Meal{}, err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now()

	_, err := r.db.Exec(`
INSERT INTO meals(id, name, meal_type, calories, protein_g, carbs_g, fat_g, consumed_at, notes, created_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, m.ID, m.Name, string(m.Type), m.Calories, m.ProteinG, m.CarbsG, m.FatG,
		m.ConsumedAt.Format(time.RFC3339), m.Notes, m.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return model.Meal{}, fmt.Errorf("insert meal: %w", err)
	}
	return m, nil
}

func (r *SQLiteRepository) ListMeals(f MealFilter) ([]model.Meal, error) {
	rng, err := resolveRange(f.Date, f.FromDate, f.ToDate)
	if err != nil {
		return nil, err
	}

	query := `
SELECT id, name, meal_type, calories, protein_g, carbs_g, fat_g, consumed_at, IFNULL(notes, ''), created_at
FROM meals
WHERE 1=1`
	args := make([]any, 0)

	if !rng.open {
		if !rng.start.IsZero() {
			query += ` AND consumed_at >= ?`
			args = append(args, rng.start.Format(time.RFC3339))
		}
		query += ` AND consumed_at < ?`
		args = append(args, rng.end.Format(time.RFC3339))
	}
	if f.Type != "" {
		query += ` AND meal_type = ?`
		args = append(args, string(f.Type))
	}
	query += ` ORDER BY consumed_at DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	meals := make([]model.Meal, 0)
	for rows.Next() {
		var m model.Meal
		var mealType, consumedRaw, createdRaw string
		if err := rows.Scan(&m.ID, &m.Name, &mealType, &m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG, &consumedRaw, &m.Notes, &createdRaw); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		m.Type = model.MealType(mealType)
		consumed, err := time.Parse(time.RFC3339, consumedRaw)
		if err != nil {
			return nil, fmt.Errorf("parse consumed_at for meal %s: %w", m.ID, err)
		}
		m.ConsumedAt = consumed
		if created, err := time.Parse(time.RFC3339, createdRaw); err == nil {
			m.CreatedAt = created
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}
	return meals, nil
}

func (r *SQLiteRepository) DeleteMeal(id string) error {
	if id == "" {
		return fmt.Errorf("meal id is required")
	}
	res, err := r.db.Exec(`DELETE FROM meals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete meal %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected for meal %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("meal %s not found", id)
	}
	return nil
}

func (r *SQLiteRepository) AddWater(w model.WaterEntry) (model.WaterEntry, error) {
	if err := validateWater(&w); err != nil {
		return model.WaterEntry{}, err
	}
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	_, err := r.db.Exec(`
INSERT INTO water_entries(id, amount_ml, logged_at)
VALUES(?, ?, ?)
`, w.ID, w.AmountML, w.LoggedAt.Format(time.RFC3339))
	if err != nil {
		return model.WaterEntry{}, fmt.Errorf("insert water entry: %w", err)
	}
	return w, nil
}

func (r *SQLiteRepository) ListWater(f WaterFilter) ([]model.WaterEntry, error) {
	rng, err := resolveRange(f.Date, f.FromDate, f.ToDate)
	if err != nil {
		return nil, err
	}

	query := `SELECT id, amount_ml, logged_at FROM water_entries WHERE 1=1`
	args := make([]any, 0)
	if !rng.open {
		if !rng.start.IsZero() {
			query += ` AND logged_at >= ?`
			args = append(args, rng.start.Format(time.RFC3339))
		}
		query += ` AND logged_at < ?`
		args = append(args, rng.end.Format(time.RFC3339))
	}
	query += ` ORDER BY logged_at DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list water entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.WaterEntry, 0)
	for rows.Next() {
		var w model.WaterEntry
		var loggedRaw string
		if err := rows.Scan(&w.ID, &w.AmountML, &loggedRaw); err != nil {
			return nil, fmt.Errorf("scan water entry: %w", err)
		}
		logged, err := time.Parse(time.RFC3339, loggedRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at for water entry %s: %w", w.ID, err)
		}
		w.LoggedAt = logged
		entries = append(entries, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate water entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteRepository) Profile() (model.Profile, error) {
	var p model.Profile
	var updatedRaw string
	err := r.db.QueryRow(`
SELECT name, calorie_target, water_target_ml, protein_target_g, carbs_target_g, fat_target_g, updated_at
FROM profile WHERE id = 1
`).Scan(&p.Name, &p.CalorieTarget, &p.WaterTargetML, &p.ProteinTargetG, &p.CarbsTargetG, &p.FatTargetG, &updatedRaw)
	if err != nil {
		return model.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if updated, err := time.Parse(time.RFC3339, updatedRaw); err == nil {
		p.UpdatedAt = updated
	}
	return p, nil
}

func (r *SQLiteRepository) SaveProfile(p model.Profile) error {
	if err := validateProfile(&p); err != nil {
		return err
	}
	_, err := r.db.Exec(`
UPDATE profile
SET name = ?, calorie_target = ?, water_target_ml = ?, protein_target_g = ?, carbs_target_g = ?, fat_target_g = ?, updated_at = ?
WHERE id = 1
`, p.Name, p.CalorieTarget, p.WaterTargetML, p.ProteinTargetG, p.CarbsTargetG, p.FatTargetG, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
