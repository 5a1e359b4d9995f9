package trend

import "time"

type Nutrient string

const (
	NutrientCalories Nutrient = "calories"
	NutrientProtein  Nutrient = "protein"
	NutrientCarbs    Nutrient = "carbs"
	NutrientFat      Nutrient = "fat"
)

// Macros are the nutrients plotted together on the multi-line trend view.
// Calories is excluded on purpose: its magnitude dwarfs the gram-denominated
// macros and would flatten the other lines.
var Macros = []Nutrient{NutrientProtein, NutrientCarbs, NutrientFat}

const dayLayout = "2006-01-02"

// Record is a single logged item as seen by the aggregation pipeline.
// Timestamp is an ISO-8601 date or date-time string; the calendar day is
// always its first ten characters. Missing nutrients count as zero.
type Record struct {
	Timestamp string
	Nutrients map[Nutrient]float64
}

// Day extracts the YYYY-MM-DD grouping key from the record's timestamp.
// It reports false for missing or malformed timestamps.
func (r Record) Day() (string, bool) {
	if len(r.Timestamp) < len(dayLayout) {
		return "", false
	}
	day := r.Timestamp[:len(dayLayout)]
	if _, err := time.Parse(dayLayout, day); err != nil {
		return "", false
	}
	return day, true
}

func (r Record) value(n Nutrient) float64 {
	v, ok := r.Nutrients[n]
	if !ok || v < 0 {
		return 0
	}
	return v
}
