package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/d3ku010/macroo/internal/model"
)

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validateMeal(m *model.Meal) error {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return fmt.Errorf("meal name is required")
	}
	mealType, err := model.ParseMealType(string(m.Type))
	if err != nil {
		return err
	}
	m.Type = mealType
	if err := validateNonNegativeInt("calories", m.Calories); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("protein", m.ProteinG); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("carbs", m.CarbsG); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("fat", m.FatG); err != nil {
		return err
	}
	if m.ConsumedAt.IsZero() {
		m.ConsumedAt = time.Now()
	}
	m.Notes = strings.TrimSpace(m.Notes)
	return nil
}

func validateWater(w *model.WaterEntry) error {
	if w.AmountML <= 0 {
		return fmt.Errorf("water amount must be > 0 ml")
	}
	if w.LoggedAt.IsZero() {
		w.LoggedAt = time.Now()
	}
	return nil
}

func validateProfile(p *model.Profile) error {
	p.Name = strings.TrimSpace(p.Name)
	if err := validateNonNegativeInt("calorie target", p.CalorieTarget); err != nil {
		return err
	}
	if err := validateNonNegativeInt("water target", p.WaterTargetML); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("protein target", p.ProteinTargetG); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("carbs target", p.CarbsTargetG); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("fat target", p.FatTargetG); err != nil {
		return err
	}
	return nil
}

type dateRange struct {
	start time.Time
	end   time.Time // exclusive
	open  bool      // no bounds at all
}

func resolveRange(date, fromDate, toDate string) (dateRange, error) {
	date = strings.TrimSpace(date)
	fromDate = strings.TrimSpace(fromDate)
	toDate = strings.TrimSpace(toDate)

	if date != "" && (fromDate != "" || toDate != "") {
		return dateRange{}, fmt.Errorf("date cannot be combined with a from/to range")
	}
	if date != "" {
		fromDate, toDate = date, date
	}
	if fromDate == "" && toDate == "" {
		return dateRange{open: true}, nil
	}

	r := dateRange{start: time.Time{}, end: time.Date(9999, 1, 1, 0, 0, 0, 0, time.Local)}
	if fromDate != "" {
		t, err := time.ParseInLocation("2006-01-02", fromDate, time.Local)
		if err != nil {
			return dateRange{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", fromDate)
		}
		r.start = t
	}
	if toDate != "" {
		t, err := time.ParseInLocation("2006-01-02", toDate, time.Local)
		if err != nil {
			return dateRange{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", toDate)
		}
		r.end = t.AddDate(0, 0, 1)
	}
	if !r.start.IsZero() && r.end.Before(r.start) {
		return dateRange{}, fmt.Errorf("from date must be <= to date")
	}
	return r, nil
}

func (r dateRange) contains(t time.Time) bool {
	if r.open {
		return true
	}
	if !r.start.IsZero() && t.Before(r.start) {
		return false
	}
	return t.Before(r.end)
}
