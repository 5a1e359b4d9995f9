package trend_test

import (
	"testing"
	"time"

	"github.com/d3ku010/macroo/internal/trend"
)

func TestChooseStepBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		max  float64
		want float64
	}{
		{0, 5},
		{50, 5},
		{51, 10},
		{200, 10},
		{201, 50},
		{1000, 50},
		{1001, 100},
		{25000, 100},
	}
	for _, c := range cases {
		if got := trend.ChooseStep(c.max); got != c.want {
			t.Fatalf("ChooseStep(%v): expected %v, got %v", c.max, c.want, got)
		}
	}
}

func TestComputeAxisMax(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		values []float64
		want   trend.AxisScale
	}{
		{"empty input falls back to one step", nil, trend.AxisScale{Step: 5, Max: 5}},
		{"all zero falls back to one step", []float64{0, 0, 0}, trend.AxisScale{Step: 5, Max: 5}},
		{"95 pads to 100", []float64{95}, trend.AxisScale{Step: 10, Max: 100}},
		{"negative values ignored", []float64{-20, 30}, trend.AxisScale{Step: 5, Max: 35}},
		{"large calorie range", []float64{2100, 1800, 1950}, trend.AxisScale{Step: 100, Max: 2300}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			if got := trend.ComputeAxisMax(c.values); got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestAxisMaxCoversSeriesValues(t *testing.T) {
	t.Parallel()
	records := []trend.Record{
		rec("2024-06-01", 1850, 120, 210, 65),
		rec("2024-06-02", 2400, 140, 260, 80),
		rec("2024-06-05", 950, 60, 100, 30),
	}
	end := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	for _, n := range []trend.Nutrient{trend.NutrientCalories, trend.NutrientProtein, trend.NutrientCarbs, trend.NutrientFat} {
		s := trend.BuildDailySeries(records, end, 30, n)
		scale := trend.ComputeAxisMax(s.Values())
		for _, v := range s.Values() {
			if scale.Max < v {
				t.Fatalf("%s: axis max %v below data point %v", n, scale.Max, v)
			}
		}
		if scale.Step <= 0 || scale.Max <= 0 {
			t.Fatalf("%s: degenerate scale %+v", n, scale)
		}
		steps := scale.Max / scale.Step
		if steps != float64(int(steps)) {
			t.Fatalf("%s: max %v is not a multiple of step %v", n, scale.Max, scale.Step)
		}
	}
}
