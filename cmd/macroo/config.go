package macroo

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d3ku010/macroo/internal/app"
	"github.com/d3ku010/macroo/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage app configuration (storage backend, etc.)",
}

func withConfigDB(run func(*store.SQLiteRepository) error) error {
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
	return run(repo)
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConfigDB(func(repo *store.SQLiteRepository) error {
			if err := store.SetConfig(repo.DB(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s=%s\n", args[0], args[1])
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConfigDB(func(repo *store.SQLiteRepository) error {
			value, found, err := store.GetConfig(repo.DB(), args[0])
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("config key %q is not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		})
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List config values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withConfigDB(func(repo *store.SQLiteRepository) error {
			values, err := store.ListConfig(repo.DB())
			if err != nil {
				return err
			}
			for key, value := range values {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, value)
			}
			return nil
		})
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
