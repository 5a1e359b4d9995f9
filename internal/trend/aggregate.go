package trend

import (
	"math"
	"time"
)

type Totals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

type PreciseTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FilterByDay returns the records whose timestamp falls on the given calendar
// day, preserving input order. Records without a usable date are dropped.
func FilterByDay(records []Record, day time.Time) []Record {
	key := day.Format(dayLayout)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		d, ok := r.Day()
		if !ok || d != key {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SumNutrientsPrecise sums calories and macros across records without
// rounding, for callers that need the exact values (exports, further math).
func SumNutrientsPrecise(records []Record) PreciseTotals {
	var t PreciseTotals
	for _, r := range records {
		t.Calories += r.value(NutrientCalories)
		t.Protein += r.value(NutrientProtein)
		t.Carbs += r.value(NutrientCarbs)
		t.Fat += r.value(NutrientFat)
	}
	return t
}

// SumNutrients sums calories and macros across records, rounded to whole
// units. Rounding is a display policy: calorie and macro totals are shown as
// integers everywhere in the app.
func SumNutrients(records []Record) Totals {
	p := SumNutrientsPrecise(records)
	return Totals{
		Calories: int(math.Round(p.Calories)),
		Protein:  int(math.Round(p.Protein)),
		Carbs:    int(math.Round(p.Carbs)),
		Fat:      int(math.Round(p.Fat)),
	}
}
