package trend_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/d3ku010/macroo/internal/trend"
)

func rec(ts string, calories, protein, carbs, fat float64) trend.Record {
	return trend.Record{
		Timestamp: ts,
		Nutrients: map[trend.Nutrient]float64{
			trend.NutrientCalories: calories,
			trend.NutrientProtein:  protein,
			trend.NutrientCarbs:    carbs,
			trend.NutrientFat:      fat,
		},
	}
}

func TestFilterByDayMatchesDatePrefix(t *testing.T) {
	t.Parallel()
	records := []trend.Record{
		rec("2024-01-01T08:00:00Z", 500, 30, 50, 10),
		rec("2024-01-02", 600, 40, 60, 20),
		rec("2024-01-01", 300, 20, 30, 5),
	}
	day := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)

	got := trend.FilterByDay(records, day)
	if len(got) != 2 {
		t.Fatalf("expected 2 records for 2024-01-01, got %d", len(got))
	}
	if got[0].Timestamp != "2024-01-01T08:00:00Z" || got[1].Timestamp != "2024-01-01" {
		t.Fatalf("expected original relative order, got %v", got)
	}
}

func TestFilterByDayDropsMalformedTimestamps(t *testing.T) {
	t.Parallel()
	records := []trend.Record{
		{Timestamp: "", Nutrients: map[trend.Nutrient]float64{trend.NutrientCalories: 100}},
		{Timestamp: "not-a-date", Nutrients: map[trend.Nutrient]float64{trend.NutrientCalories: 100}},
		{Timestamp: "2024-13-99", Nutrients: map[trend.Nutrient]float64{trend.NutrientCalories: 100}},
		rec("2024-01-01", 250, 0, 0, 0),
	}
	got := trend.FilterByDay(records, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if len(got) != 1 {
		t.Fatalf("expected only the well-formed record, got %d", len(got))
	}
}

func TestFilterByDayIdempotent(t *testing.T) {
	t.Parallel()
	records := []trend.Record{
		rec("2024-03-10T09:00:00Z", 400, 25, 40, 12),
		rec("2024-03-10T13:00:00Z", 650, 45, 70, 22),
	}
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	once := trend.FilterByDay(records, day)
	twice := trend.FilterByDay(once, day)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering twice changed the result: %v vs %v", once, twice)
	}
}

func TestSumNutrientsEndToEnd(t *testing.T) {
	t.Parallel()
	records := []trend.Record{
		rec("2024-01-01", 500, 30, 50, 10),
		rec("2024-01-01", 300, 20, 30, 5),
	}
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got := trend.SumNutrients(trend.FilterByDay(records, day))
	want := trend.Totals{Calories: 800, Protein: 50, Carbs: 80, Fat: 15}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSumNutrientsMissingFieldsCountAsZero(t *testing.T) {
	t.Parallel()
	records := []trend.Record{
		{Timestamp: "2024-01-01", Nutrients: map[trend.Nutrient]float64{trend.NutrientCalories: 450}},
		{Timestamp: "2024-01-01"},
		{Timestamp: "2024-01-01", Nutrients: map[trend.Nutrient]float64{trend.NutrientProtein: 31.4}},
	}
	got := trend.SumNutrients(records)
	want := trend.Totals{Calories: 450, Protein: 31, Carbs: 0, Fat: 0}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSumNutrientsEmptyInput(t *testing.T) {
	t.Parallel()
	got := trend.SumNutrients(nil)
	if got != (trend.Totals{}) {
		t.Fatalf("expected all-zero totals, got %+v", got)
	}
}

func TestSumNutrientsRoundsWhilePreciseKeepsFractions(t *testing.T) {
	t.Parallel()
	records := []trend.Record{
		rec("2024-01-01", 100.4, 10.25, 20.5, 5.3),
		rec("2024-01-01", 100.4, 10.25, 20.1, 5.3),
	}
	rounded := trend.SumNutrients(records)
	if rounded.Calories != 201 || rounded.Protein != 21 || rounded.Carbs != 41 || rounded.Fat != 11 {
		t.Fatalf("unexpected rounded totals %+v", rounded)
	}
	precise := trend.SumNutrientsPrecise(records)
	if precise.Protein != 20.5 {
		t.Fatalf("expected precise protein 20.5, got %v", precise.Protein)
	}
}
