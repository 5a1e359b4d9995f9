package macroo

import (
	"fmt"
	"strings"
	"time"

	"github.com/d3ku010/macroo/internal/app"
	"github.com/d3ku010/macroo/internal/store"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func resolveDataDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	return app.DefaultDataDir()
}

// resolveBackend prefers the --backend flag, then the storage_backend config
// key in the sqlite database, then sqlite. The sqlite database anchors config
// even when records live in the file backend.
func resolveBackend() (string, error) {
	if backendFlag != "" {
		return backendFlag, nil
	}
	path, err := resolveDBPath()
	if err != nil {
		return "", err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return "", err
	}
	sqlrepo, err := store.OpenSQLite(path)
	if err != nil {
		return "", err
	}
	defer sqlrepo.Close()

	value, found, err := store.GetConfig(sqlrepo.DB(), store.ConfigStorageBackend)
	if err != nil {
		return "", err
	}
	if !found {
		return store.BackendSQLite, nil
	}
	return value, nil
}

func withRepo(run func(store.Repository) error) error {
	backend, err := resolveBackend()
	if err != nil {
		return err
	}

	opts := store.Options{}
	if opts.DBPath, err = resolveDBPath(); err != nil {
		return err
	}
	if opts.DataDir, err = resolveDataDir(); err != nil {
		return err
	}
	if err := app.EnsureDBDir(opts.DBPath); err != nil {
		return err
	}

	repo, err := store.Open(backend, opts)
	if err != nil {
		return err
	}
	defer repo.Close()

	return run(repo)
}

func parseDateTimeOrNow(date, timeStr string) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeStr = strings.TrimSpace(timeStr)
	if date == "" && timeStr == "" {
		return time.Now(), nil
	}
	if date == "" {
		return time.Time{}, fmt.Errorf("--date is required when --time is set")
	}
	if timeStr == "" {
		t, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
		}
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date/--time (expected YYYY-MM-DD and HH:MM)")
	}
	return t, nil
}

func parseDateOrToday(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}
