package macroo

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/d3ku010/macroo/internal/importer"
	"github.com/d3ku010/macroo/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import meals from CSV files",
}

var importCSVCmd = &cobra.Command{
	Use:   "csv <file>",
	Short: "Import meals from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo store.Repository) error {
			count, err := importer.Import(repo, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d meals from %s\n", count, args[0])
			return nil
		})
	},
}

var importWatchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and import CSV drops as they change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo store.Repository) error {
			w, err := importer.NewWatcher(args[0], repo)
			if err != nil {
				return fmt.Errorf("watch %s: %w", args[0], err)
			}
			defer w.Close()

			log.Printf("watching %s for CSV drops", args[0])
			w.Watch()
			return nil
		})
	},
}

func init() {
	importCmd.AddCommand(importCSVCmd)
	importCmd.AddCommand(importWatchCmd)
	rootCmd.AddCommand(importCmd)
}
