package trend_test

import (
	"testing"
	"time"

	"github.com/d3ku010/macroo/internal/trend"
)

func TestBuildDailySeriesExactWindowLength(t *testing.T) {
	t.Parallel()
	end := time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)

	for _, days := range []int{1, 7, 30} {
		s := trend.BuildDailySeries(nil, end, days, trend.NutrientCalories)
		if len(s) != days {
			t.Fatalf("expected %d points for empty input, got %d", days, len(s))
		}
		for _, p := range s {
			if p.Value != 0 {
				t.Fatalf("expected zero value for sparse day %s, got %v", p.Date, p.Value)
			}
		}
	}
}

func TestBuildDailySeriesOrderAndValues(t *testing.T) {
	t.Parallel()
	records := []trend.Record{
		rec("2024-01-28", 1800, 90, 200, 60),
		rec("2024-01-30T08:00:00Z", 400, 30, 40, 10),
		rec("2024-01-30T19:00:00Z", 700, 50, 80, 25),
		rec("bogus", 9999, 0, 0, 0),
	}
	end := time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)

	s := trend.BuildDailySeries(records, end, 3, trend.NutrientCalories)
	if len(s) != 3 {
		t.Fatalf("expected 3 points, got %d", len(s))
	}
	if s[0].Date != "2024-01-28" || s[2].Date != "2024-01-30" {
		t.Fatalf("expected oldest-first window, got %s .. %s", s[0].Date, s[2].Date)
	}
	if s[0].Value != 1800 {
		t.Fatalf("expected 1800 on 2024-01-28, got %v", s[0].Value)
	}
	if s[1].Value != 0 {
		t.Fatalf("expected sparse zero on 2024-01-29, got %v", s[1].Value)
	}
	if s[2].Value != 1100 {
		t.Fatalf("expected 1100 on 2024-01-30, got %v", s[2].Value)
	}
}

func TestBuildDailySeriesLabelCadence(t *testing.T) {
	t.Parallel()
	end := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	s := trend.BuildDailySeries(nil, end, 30, trend.NutrientProtein)

	for i, p := range s {
		if i%5 == 0 {
			day, err := time.Parse("2006-01-02", p.Date)
			if err != nil {
				t.Fatalf("parse point date %q: %v", p.Date, err)
			}
			if p.Label != day.Format("02/01") {
				t.Fatalf("point %d: expected DD/MM label for %s, got %q", i, p.Date, p.Label)
			}
			continue
		}
		if p.Label != "" {
			t.Fatalf("point %d: expected empty label, got %q", i, p.Label)
		}
	}
}

func TestBuildMacroSeriesExcludesCalories(t *testing.T) {
	t.Parallel()
	records := []trend.Record{rec("2024-05-01", 2000, 100, 220, 70)}
	end := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	all := trend.BuildMacroSeries(records, end, 7)
	if len(all) != 3 {
		t.Fatalf("expected protein/carbs/fat series, got %d series", len(all))
	}
	if _, ok := all[trend.NutrientCalories]; ok {
		t.Fatalf("calories must not appear in the macro overlay")
	}
	for _, n := range trend.Macros {
		s, ok := all[n]
		if !ok {
			t.Fatalf("missing %s series", n)
		}
		if len(s) != 7 {
			t.Fatalf("%s: expected 7 points, got %d", n, len(s))
		}
	}
	if got := all[trend.NutrientCarbs][6].Value; got != 220 {
		t.Fatalf("expected carbs 220 on window end, got %v", got)
	}
}

func TestBuildDailySeriesNonPositiveWindow(t *testing.T) {
	t.Parallel()
	if s := trend.BuildDailySeries(nil, time.Now(), 0, trend.NutrientFat); s != nil {
		t.Fatalf("expected nil series for zero window, got %v", s)
	}
}
