package report

import (
	"fmt"
	"time"

	"github.com/d3ku010/macroo/internal/model"
	"github.com/d3ku010/macroo/internal/store"
	"github.com/d3ku010/macroo/internal/trend"
)

type ExportMeal struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"meal_type"`
	Calories   int     `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatG       float64 `json:"fat_g"`
	ConsumedAt string  `json:"consumed_at"`
	Notes      string  `json:"notes,omitempty"`
}

type ExportWater struct {
	ID       string `json:"id"`
	AmountML int    `json:"amount_ml"`
	LoggedAt string `json:"logged_at"`
}

type Archive struct {
	ExportedAt string              `json:"exported_at"`
	FromDate   string              `json:"from_date,omitempty"`
	ToDate     string              `json:"to_date,omitempty"`
	Profile    model.Profile       `json:"profile"`
	Meals      []ExportMeal        `json:"meals"`
	Water      []ExportWater       `json:"water"`
	Totals     trend.PreciseTotals `json:"totals"`
}

// Export collects meals, water, and profile for an optional date range.
// Totals stay unrounded here so re-imports and spreadsheets see exact sums.
func Export(repo store.Repository, fromDate, toDate string) (*Archive, error) {
	if fromDate != "" {
		if _, err := time.Parse("2006-01-02", fromDate); err != nil {
			return nil, fmt.Errorf("invalid from date %q, expected YYYY-MM-DD", fromDate)
		}
	}
	if toDate != "" {
		if _, err := time.Parse("2006-01-02", toDate); err != nil {
			return nil, fmt.Errorf("invalid to date %q, expected YYYY-MM-DD", toDate)
		}
	}

	meals, err := repo.ListMeals(store.MealFilter{FromDate: fromDate, ToDate: toDate})
	if err != nil {
		return nil, err
	}
	water, err := repo.ListWater(store.WaterFilter{FromDate: fromDate, ToDate: toDate})
	if err != nil {
		return nil, err
	}
	profile, err := repo.Profile()
	if err != nil {
		return nil, err
	}

	archive := &Archive{
		ExportedAt: time.Now().Format(time.RFC3339),
		FromDate:   fromDate,
		ToDate:     toDate,
		Profile:    profile,
		Meals:      make([]ExportMeal, 0, len(meals)),
		Water:      make([]ExportWater, 0, len(water)),
		Totals:     trend.SumNutrientsPrecise(mealRecords(meals)),
	}
	for _, m := range meals {
		archive.Meals = append(archive.Meals, ExportMeal{
			ID:         m.ID,
			Name:       m.Name,
			Type:       string(m.Type),
			Calories:   m.Calories,
			ProteinG:   m.ProteinG,
			CarbsG:     m.CarbsG,
			FatG:       m.FatG,
			ConsumedAt: m.ConsumedAt.Format(time.RFC3339),
			Notes:      m.Notes,
		})
	}
	for _, w := range water {
		archive.Water = append(archive.Water, ExportWater{
			ID:       w.ID,
			AmountML: w.AmountML,
			LoggedAt: w.LoggedAt.Format(time.RFC3339),
		})
	}
	return archive, nil
}
