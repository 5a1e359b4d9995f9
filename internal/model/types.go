package model

import (
	"fmt"
	"strings"
	"time"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func ParseMealType(value string) (MealType, error) {
	switch MealType(strings.TrimSpace(strings.ToLower(value))) {
	case MealBreakfast:
		return MealBreakfast, nil
	case MealLunch:
		return MealLunch, nil
	case MealDinner:
		return MealDinner, nil
	case MealSnack, "other":
		return MealSnack, nil
	default:
		return "", fmt.Errorf("invalid meal type %q (use breakfast|lunch|dinner|snack)", value)
	}
}

type Meal struct {
	ID         string
	Name       string
	Type       MealType
	Calories   int
	ProteinG   float64
	CarbsG     float64
	FatG       float64
	ConsumedAt time.Time
	Notes      string
	CreatedAt  time.Time
}

type WaterEntry struct {
	ID       string
	AmountML int
	LoggedAt time.Time
}

type Profile struct {
	Name           string
	CalorieTarget  int
	WaterTargetML  int
	ProteinTargetG float64
	CarbsTargetG   float64
	FatTargetG     float64
	UpdatedAt      time.Time
}
