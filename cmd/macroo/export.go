package macroo

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/d3ku010/macroo/internal/report"
	"github.com/d3ku010/macroo/internal/store"
)

var (
	exportFrom string
	exportTo   string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export meals, water, and profile as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo store.Repository) error {
			archive, err := report.Export(repo, exportFrom, exportTo)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(archive, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal export json: %w", err)
			}
			if exportOut == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			if err := os.WriteFile(exportOut, b, 0o644); err != nil {
				return fmt.Errorf("write export to %q: %w", exportOut, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d meals and %d water entries to %s\n", len(archive.Meals), len(archive.Water), exportOut)
			return nil
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Range start (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Range end (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
