package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName  = "macroo"
	dbFileName  = "macroo.db"
	dataDirName = "data"
)

func DefaultDBPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dbFileName), nil
}

// DefaultDataDir is where the file-backed store keeps its JSON collections.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dataDirName), nil
}

func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

func EnsureDBDir(path string) error {
	return EnsureDir(filepath.Dir(path))
}
