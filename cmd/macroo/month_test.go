package macroo

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/d3ku010/macroo/internal/report"
)

func TestLogThenTodayAndMonth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macroo.db")

	runCommand(t, "--db", path, "init")
	runCommand(t, "--db", path,
		"meal", "log", "--name", "Eggs", "--type", "breakfast",
		"--calories", "500", "--protein", "30", "--carbs", "50", "--fat", "10",
		"--date", "2026-06-10", "--time", "08:00")
	runCommand(t, "--db", path,
		"meal", "log", "--name", "Salad", "--type", "lunch",
		"--calories", "300", "--protein", "20", "--carbs", "30", "--fat", "5",
		"--date", "2026-06-10", "--time", "13:00")
	runCommand(t, "--db", path, "water", "log", "--ml", "500", "--date", "2026-06-10", "--time", "09:00")

	today := runCommand(t, "--db", path, "today", "--date", "2026-06-10")
	if !strings.Contains(today, "Calories: 800") {
		t.Fatalf("expected 800 kcal in today output, got:\n%s", today)
	}
	if !strings.Contains(today, "Water: 500") {
		t.Fatalf("expected 500 ml water in today output, got:\n%s", today)
	}

	macroOut := runCommand(t, "--db", path,
		"month", "--end", "2026-06-10", "--days", "7", "--nutrient", "macros")
	if !strings.Contains(macroOut, "Macro Sparklines") {
		t.Fatalf("expected sparkline section, got:\n%s", macroOut)
	}
	if strings.Contains(macroOut, "calories") {
		t.Fatalf("calories must not appear in macro overlay output:\n%s", macroOut)
	}

	monthOut := runCommand(t, "--db", path,
		"month", "--end", "2026-06-10", "--days", "7", "--nutrient", "calories", "--json")
	var r report.MonthReport
	if err := json.Unmarshal([]byte(monthOut), &r); err != nil {
		t.Fatalf("decode month json: %v", err)
	}
	if len(r.Labels) != 7 || len(r.Datasets) != 1 {
		t.Fatalf("expected one 7-point dataset, got %+v", r)
	}
	if r.Datasets[0].Data[6] != 800 {
		t.Fatalf("expected 800 kcal on window end, got %v", r.Datasets[0].Data[6])
	}
	if r.Axis.Max < 800 {
		t.Fatalf("axis max %v below tallest point", r.Axis.Max)
	}
}

func TestMealListAndDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macroo.db")

	runCommand(t, "--db", path,
		"meal", "log", "--name", "Toast", "--type", "breakfast", "--calories", "250",
		"--date", "2026-06-11")
	listOut := runCommand(t, "--db", path, "meal", "list", "--date", "2026-06-11")
	if !strings.Contains(listOut, "Toast") {
		t.Fatalf("expected Toast in list output, got:\n%s", listOut)
	}

	fields := strings.Fields(strings.Split(strings.TrimSpace(listOut), "\n")[1])
	id := fields[len(fields)-1]
	runCommand(t, "--db", path, "meal", "delete", id)

	after := runCommand(t, "--db", path, "meal", "list", "--date", "2026-06-11")
	if !strings.Contains(after, "No meals found") {
		t.Fatalf("expected empty list after delete, got:\n%s", after)
	}
}
