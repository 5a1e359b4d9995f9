package store

import (
	"fmt"
	"strings"

	"github.com/d3ku010/macroo/internal/model"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// ConfigStorageBackend is the app_config key selecting the record backend.
const ConfigStorageBackend = "storage_backend"

type MealFilter struct {
	Date     string // YYYY-MM-DD, exclusive with FromDate/ToDate
	FromDate string // YYYY-MM-DD inclusive
	ToDate   string // YYYY-MM-DD inclusive
	Type     model.MealType
	Limit    int
}

type WaterFilter struct {
	Date     string
	FromDate string
	ToDate   string
	Limit    int
}

// Repository is the record collaborator behind every screen: meal and water
// logs plus the profile that supplies calorie/water targets. The sqlite
// backend is relational, the file backend is a JSON key-value store; both
// honor the same semantics.
type Repository interface {
	AddMeal(m model.Meal) (model.Meal, error)
	ListMeals(f MealFilter) ([]model.Meal, error)
	DeleteMeal(id string) error

	AddWater(w model.WaterEntry) (model.WaterEntry, error)
	ListWater(f WaterFilter) ([]model.WaterEntry, error)

	Profile() (model.Profile, error)
	SaveProfile(p model.Profile) error

	Close() error
}

type Options struct {
	DBPath  string
	DataDir string
}

func Open(backend string, opts Options) (Repository, error) {
	switch strings.TrimSpace(strings.ToLower(backend)) {
	case "", BackendSQLite:
		return OpenSQLite(opts.DBPath)
	case BackendFile:
		return OpenFile(opts.DataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (use sqlite|file)", backend)
	}
}
