package macroo

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d3ku010/macroo/internal/app"
	"github.com/d3ku010/macroo/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local macroo storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		repo, err := store.OpenSQLite(path)
		if err != nil {
			return err
		}
		defer repo.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized macroo database at %s\n", path)

		backend, err := resolveBackend()
		if err != nil {
			return err
		}
		if backend == store.BackendFile {
			dir, err := resolveDataDir()
			if err != nil {
				return err
			}
			if err := app.EnsureDir(dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized file backend at %s\n", dir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
