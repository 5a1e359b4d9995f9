package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/d3ku010/macroo/internal/model"
	"github.com/d3ku010/macroo/internal/store"
)

var expectedHeader = []string{"date", "name", "type", "calories", "protein_g", "carbs_g", "fat_g"}

// ParseMeals reads meal records from a CSV file. The header is strict; rows
// carry a YYYY-MM-DD date (optionally with a HH:MM time column appended to
// the date via a space).
func ParseMeals(path string) ([]model.Meal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening meals file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != len(expectedHeader) {
		return nil, fmt.Errorf("invalid header length: expected %d columns, got %d", len(expectedHeader), len(header))
	}
	for i, h := range header {
		if h != expectedHeader[i] {
			return nil, fmt.Errorf("invalid header: expected %s at position %d, got %s", expectedHeader[i], i, h)
		}
	}

	var meals []model.Meal
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		line++

		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("invalid record length at line %d: %v", line, record)
		}

		consumed, err := parseConsumedAt(record[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		mealType, err := model.ParseMealType(record[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		calories, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing calories %q: %w", line, record[3], err)
		}

		meals = append(meals, model.Meal{
			Name:       record[1],
			Type:       mealType,
			Calories:   calories,
			ProteinG:   parseFloat(record[4]),
			CarbsG:     parseFloat(record[5]),
			FatG:       parseFloat(record[6]),
			ConsumedAt: consumed,
		})
	}

	return meals, nil
}

// Import parses a CSV file and stores every meal, returning the count.
func Import(repo store.Repository, path string) (int, error) {
	meals, err := ParseMeals(path)
	if err != nil {
		return 0, err
	}
	for i, m := range meals {
		if _, err := repo.AddMeal(m); err != nil {
			return i, fmt.Errorf("storing meal %q: %w", m.Name, err)
		}
	}
	return len(meals), nil
}

func parseConsumedAt(value string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: expected YYYY-MM-DD or YYYY-MM-DD HH:MM", value)
	}
	return t, nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
