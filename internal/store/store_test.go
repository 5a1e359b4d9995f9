package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/d3ku010/macroo/internal/model"
	"github.com/d3ku010/macroo/internal/store"
)

func newBackends(t *testing.T) map[string]store.Repository {
	t.Helper()
	sqlite, err := store.OpenSQLite(filepath.Join(t.TempDir(), "macroo.db"))
	if err != nil {
		t.Fatalf("open sqlite backend: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	file, err := store.OpenFile(filepath.Join(t.TempDir(), "data"))
	if err != nil {
		t.Fatalf("open file backend: %v", err)
	}
	t.Cleanup(func() { file.Close() })

	return map[string]store.Repository{"sqlite": sqlite, "file": file}
}

func TestMealLifecycle(t *testing.T) {
	t.Parallel()
	for name, repo := range newBackends(t) {
		repo := repo
		t.Run(name, func(t *testing.T) {
			seed := []model.Meal{
				{Name: "Oatmeal", Type: model.MealBreakfast, Calories: 350, ProteinG: 12, CarbsG: 60, FatG: 6,
					ConsumedAt: time.Date(2026, 3, 10, 8, 0, 0, 0, time.Local)},
				{Name: "Chicken bowl", Type: model.MealLunch, Calories: 650, ProteinG: 45, CarbsG: 70, FatG: 18,
					ConsumedAt: time.Date(2026, 3, 10, 13, 0, 0, 0, time.Local)},
				{Name: "Pasta", Type: model.MealDinner, Calories: 800, ProteinG: 30, CarbsG: 110, FatG: 22,
					ConsumedAt: time.Date(2026, 3, 11, 19, 0, 0, 0, time.Local)},
			}
			ids := make([]string, 0, len(seed))
			for _, m := range seed {
				saved, err := repo.AddMeal(m)
				if err != nil {
					t.Fatalf("add meal %s: %v", m.Name, err)
				}
				if saved.ID == "" {
					t.Fatalf("expected generated id for %s", m.Name)
				}
				ids = append(ids, saved.ID)
			}

			day, err := repo.ListMeals(store.MealFilter{Date: "2026-03-10"})
			if err != nil {
				t.Fatalf("list meals by day: %v", err)
			}
			if len(day) != 2 {
				t.Fatalf("expected 2 meals on 2026-03-10, got %d", len(day))
			}
			if day[0].Name != "Chicken bowl" {
				t.Fatalf("expected newest-first ordering, got %s first", day[0].Name)
			}

			lunches, err := repo.ListMeals(store.MealFilter{Type: model.MealLunch})
			if err != nil {
				t.Fatalf("list meals by type: %v", err)
			}
			if len(lunches) != 1 || lunches[0].Name != "Chicken bowl" {
				t.Fatalf("expected only the lunch, got %v", lunches)
			}

			ranged, err := repo.ListMeals(store.MealFilter{FromDate: "2026-03-10", ToDate: "2026-03-11"})
			if err != nil {
				t.Fatalf("list meals by range: %v", err)
			}
			if len(ranged) != 3 {
				t.Fatalf("expected 3 meals in range, got %d", len(ranged))
			}

			if err := repo.DeleteMeal(ids[0]); err != nil {
				t.Fatalf("delete meal: %v", err)
			}
			if err := repo.DeleteMeal(ids[0]); err == nil {
				t.Fatalf("expected error deleting missing meal")
			}
		})
	}
}

func TestMealValidation(t *testing.T) {
	t.Parallel()
	for name, repo := range newBackends(t) {
		repo := repo
		t.Run(name, func(t *testing.T) {
			if _, err := repo.AddMeal(model.Meal{Name: "", Type: model.MealLunch}); err == nil {
				t.Fatalf("expected error for empty name")
			}
			if _, err := repo.AddMeal(model.Meal{Name: "x", Type: "brunch"}); err == nil {
				t.Fatalf("expected error for invalid meal type")
			}
			if _, err := repo.AddMeal(model.Meal{Name: "x", Type: model.MealSnack, Calories: -1}); err == nil {
				t.Fatalf("expected error for negative calories")
			}
			if _, err := repo.ListMeals(store.MealFilter{Date: "2026-03-10", FromDate: "2026-03-01"}); err == nil {
				t.Fatalf("expected error combining date with range")
			}
		})
	}
}

func TestWaterLifecycle(t *testing.T) {
	t.Parallel()
	for name, repo := range newBackends(t) {
		repo := repo
		t.Run(name, func(t *testing.T) {
			for _, amount := range []int{250, 500} {
				if _, err := repo.AddWater(model.WaterEntry{
					AmountML: amount,
					LoggedAt: time.Date(2026, 3, 10, 9, amount/100, 0, 0, time.Local),
				}); err != nil {
					t.Fatalf("add water %d: %v", amount, err)
				}
			}
			if _, err := repo.AddWater(model.WaterEntry{AmountML: 0}); err == nil {
				t.Fatalf("expected error for zero amount")
			}

			entries, err := repo.ListWater(store.WaterFilter{Date: "2026-03-10"})
			if err != nil {
				t.Fatalf("list water: %v", err)
			}
			if len(entries) != 2 {
				t.Fatalf("expected 2 water entries, got %d", len(entries))
			}

			none, err := repo.ListWater(store.WaterFilter{Date: "2026-03-11"})
			if err != nil {
				t.Fatalf("list water empty day: %v", err)
			}
			if len(none) != 0 {
				t.Fatalf("expected no entries on 2026-03-11, got %d", len(none))
			}
		})
	}
}

func TestProfileRoundTrip(t *testing.T) {
	t.Parallel()
	for name, repo := range newBackends(t) {
		repo := repo
		t.Run(name, func(t *testing.T) {
			initial, err := repo.Profile()
			if err != nil {
				t.Fatalf("load default profile: %v", err)
			}
			if initial.CalorieTarget != 2000 || initial.WaterTargetML != 2000 {
				t.Fatalf("unexpected default targets %+v", initial)
			}

			want := model.Profile{
				Name:           "Dev",
				CalorieTarget:  2400,
				WaterTargetML:  3000,
				ProteinTargetG: 150,
				CarbsTargetG:   250,
				FatTargetG:     80,
			}
			if err := repo.SaveProfile(want); err != nil {
				t.Fatalf("save profile: %v", err)
			}
			got, err := repo.Profile()
			if err != nil {
				t.Fatalf("reload profile: %v", err)
			}
			if got.Name != want.Name || got.CalorieTarget != 2400 || got.WaterTargetML != 3000 ||
				got.ProteinTargetG != 150 || got.CarbsTargetG != 250 || got.FatTargetG != 80 {
				t.Fatalf("expected %+v, got %+v", want, got)
			}

			if err := repo.SaveProfile(model.Profile{CalorieTarget: -5}); err == nil {
				t.Fatalf("expected error for negative calorie target")
			}
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	t.Parallel()
	if _, err := store.Open("redis", store.Options{}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
