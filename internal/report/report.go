package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/d3ku010/macroo/internal/model"
	"github.com/d3ku010/macroo/internal/store"
	"github.com/d3ku010/macroo/internal/trend"
)

// nutrientWater lets hydration reuse the daily-series machinery: water
// entries become records with a single "water" nutrient in ml.
const nutrientWater = trend.Nutrient("water")

type DaySummary struct {
	Date              string       `json:"date"`
	Totals            trend.Totals `json:"totals"`
	WaterML           int          `json:"water_ml"`
	CalorieTarget     int          `json:"calorie_target"`
	WaterTargetML     int          `json:"water_target_ml"`
	ProteinTargetG    float64      `json:"protein_target_g,omitempty"`
	CarbsTargetG      float64      `json:"carbs_target_g,omitempty"`
	FatTargetG        float64      `json:"fat_target_g,omitempty"`
	RemainingCalories int          `json:"remaining_calories"`
	RemainingWaterML  int          `json:"remaining_water_ml"`
	MealCount         int          `json:"meal_count"`
}

type Dataset struct {
	Nutrient string    `json:"nutrient"`
	Data     []float64 `json:"data"`
}

// MonthReport is the chart-ready contract: Labels, Dates, and every dataset
// have identical length, and Axis covers the tallest point of all datasets.
type MonthReport struct {
	FromDate string          `json:"from_date"`
	ToDate   string          `json:"to_date"`
	Labels   []string        `json:"labels"`
	Dates    []string        `json:"dates"`
	Datasets []Dataset       `json:"datasets"`
	Axis     trend.AxisScale `json:"axis"`
}

func mealRecords(meals []model.Meal) []trend.Record {
	records := make([]trend.Record, 0, len(meals))
	for _, m := range meals {
		records = append(records, trend.Record{
			Timestamp: m.ConsumedAt.Format(time.RFC3339),
			Nutrients: map[trend.Nutrient]float64{
				trend.NutrientCalories: float64(m.Calories),
				trend.NutrientProtein:  m.ProteinG,
				trend.NutrientCarbs:    m.CarbsG,
				trend.NutrientFat:      m.FatG,
			},
		})
	}
	return records
}

func waterRecords(entries []model.WaterEntry) []trend.Record {
	records := make([]trend.Record, 0, len(entries))
	for _, w := range entries {
		records = append(records, trend.Record{
			Timestamp: w.LoggedAt.Format(time.RFC3339),
			Nutrients: map[trend.Nutrient]float64{nutrientWater: float64(w.AmountML)},
		})
	}
	return records
}

// Daily builds the summary for one calendar day: meal totals against profile
// targets plus hydration progress.
func Daily(repo store.Repository, day time.Time) (*DaySummary, error) {
	date := day.Format("2006-01-02")

	meals, err := repo.ListMeals(store.MealFilter{Date: date})
	if err != nil {
		return nil, err
	}
	water, err := repo.ListWater(store.WaterFilter{Date: date})
	if err != nil {
		return nil, err
	}
	profile, err := repo.Profile()
	if err != nil {
		return nil, err
	}

	records := trend.FilterByDay(mealRecords(meals), day)
	totals := trend.SumNutrients(records)

	waterML := 0
	for _, w := range water {
		waterML += w.AmountML
	}

	return &DaySummary{
		Date:              date,
		Totals:            totals,
		WaterML:           waterML,
		CalorieTarget:     profile.CalorieTarget,
		WaterTargetML:     profile.WaterTargetML,
		ProteinTargetG:    profile.ProteinTargetG,
		CarbsTargetG:      profile.CarbsTargetG,
		FatTargetG:        profile.FatTargetG,
		RemainingCalories: profile.CalorieTarget - totals.Calories,
		RemainingWaterML:  profile.WaterTargetML - waterML,
		MealCount:         len(records),
	}, nil
}

// Monthly builds the trend chart for a window of days ending at end.
// Nutrient selects a single series (calories, protein, carbs, fat, water) or
// "macros" for the protein/carbs/fat overlay.
func Monthly(repo store.Repository, end time.Time, windowDays int, nutrient string) (*MonthReport, error) {
	if windowDays <= 0 {
		windowDays = trend.DefaultWindowDays
	}
	start := end.AddDate(0, 0, 1-windowDays)
	fromDate := start.Format("2006-01-02")
	toDate := end.Format("2006-01-02")

	nutrient = strings.TrimSpace(strings.ToLower(nutrient))
	var datasets []Dataset
	var reference trend.Series

	switch nutrient {
	case "water":
		entries, err := repo.ListWater(store.WaterFilter{FromDate: fromDate, ToDate: toDate})
		if err != nil {
			return nil, err
		}
		s := trend.BuildDailySeries(waterRecords(entries), end, windowDays, nutrientWater)
		reference = s
		datasets = []Dataset{{Nutrient: "water", Data: s.Values()}}
	case "macros", "all":
		meals, err := repo.ListMeals(store.MealFilter{FromDate: fromDate, ToDate: toDate})
		if err != nil {
			return nil, err
		}
		all := trend.BuildMacroSeries(mealRecords(meals), end, windowDays)
		for _, n := range trend.Macros {
			s := all[n]
			reference = s
			datasets = append(datasets, Dataset{Nutrient: string(n), Data: s.Values()})
		}
	case "", "calories", "protein", "carbs", "fat":
		if nutrient == "" {
			nutrient = "calories"
		}
		meals, err := repo.ListMeals(store.MealFilter{FromDate: fromDate, ToDate: toDate})
		if err != nil {
			return nil, err
		}
		s := trend.BuildDailySeries(mealRecords(meals), end, windowDays, trend.Nutrient(nutrient))
		reference = s
		datasets = []Dataset{{Nutrient: nutrient, Data: s.Values()}}
	default:
		return nil, fmt.Errorf("invalid nutrient %q (use calories|protein|carbs|fat|water|macros)", nutrient)
	}

	var allValues []float64
	for _, d := range datasets {
		allValues = append(allValues, d.Data...)
	}

	labels := make([]string, len(reference))
	dates := make([]string, len(reference))
	for i, p := range reference {
		labels[i] = p.Label
		dates[i] = p.Date
	}

	return &MonthReport{
		FromDate: fromDate,
		ToDate:   toDate,
		Labels:   labels,
		Dates:    dates,
		Datasets: datasets,
		Axis:     trend.ComputeAxisMax(allValues),
	}, nil
}
