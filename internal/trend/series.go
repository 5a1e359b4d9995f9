package trend

import (
	"math"
	"time"
)

const (
	// DefaultWindowDays is the monthly trend window length.
	DefaultWindowDays = 30

	// labelEvery controls label sparsification: only every fifth point
	// carries a printed DD/MM label so a 30-point axis stays readable.
	labelEvery = 5
)

type Point struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Series []Point

func (s Series) Labels() []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[i].Label
	}
	return out
}

func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i := range s {
		out[i] = s[i].Value
	}
	return out
}

// BuildDailySeries produces one point per day for windowDays consecutive days
// ending at windowEnd inclusive, oldest first. Days without records yield a
// zero point, so the result always has exactly windowDays points. Values are
// rounded to whole units like SumNutrients. Every point keeps its full
// YYYY-MM-DD date; the sparse DD/MM labels are a rendering convenience.
func BuildDailySeries(records []Record, windowEnd time.Time, windowDays int, nutrient Nutrient) Series {
	if windowDays <= 0 {
		return nil
	}

	sums := make(map[string]float64, windowDays)
	for _, r := range records {
		d, ok := r.Day()
		if !ok {
			continue
		}
		sums[d] += r.value(nutrient)
	}

	end := time.Date(windowEnd.Year(), windowEnd.Month(), windowEnd.Day(), 0, 0, 0, 0, windowEnd.Location())
	series := make(Series, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		day := end.AddDate(0, 0, i-windowDays+1)
		key := day.Format(dayLayout)
		label := ""
		if i%labelEvery == 0 {
			label = day.Format("02/01")
		}
		series = append(series, Point{
			Date:  key,
			Label: label,
			Value: math.Round(sums[key]),
		})
	}
	return series
}

// BuildMacroSeries builds parallel protein, carbs, and fat series over the
// same window for the multi-line chart. See Macros for why calories is not
// part of the overlay.
func BuildMacroSeries(records []Record, windowEnd time.Time, windowDays int) map[Nutrient]Series {
	out := make(map[Nutrient]Series, len(Macros))
	for _, n := range Macros {
		out[n] = BuildDailySeries(records, windowEnd, windowDays, n)
	}
	return out
}
