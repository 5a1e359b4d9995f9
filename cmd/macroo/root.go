package macroo

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath      string
	dataDir     string
	backendFlag string
)

var rootCmd = &cobra.Command{
	Use:   "macroo",
	Short: "macroo tracks meals, macros, and hydration from your terminal",
	Long:  "macroo is a local-first diet tracking CLI with meal and water logging, profile targets, monthly trend charts, CSV import, and a JSON API for chart renderers.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Path to file-backend data directory")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "Storage backend (sqlite|file)")
}
