package macroo

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d3ku010/macroo/internal/report"
	"github.com/d3ku010/macroo/internal/store"
)

var (
	todayDate string
	todayJSON bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Daily nutrition and hydration summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withRepo(func(repo store.Repository) error {
			summary, err := report.Daily(repo, day)
			if err != nil {
				return err
			}
			if todayJSON {
				b, err := json.MarshalIndent(summary, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal summary json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			printDaySummary(cmd, summary)
			return nil
		})
	},
}

func printDaySummary(cmd *cobra.Command, s *report.DaySummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Date: %s (%d meals)\n", s.Date, s.MealCount)
	fmt.Fprintf(out, "Calories: %d / %d kcal (%d remaining)\n", s.Totals.Calories, s.CalorieTarget, s.RemainingCalories)
	fmt.Fprintf(out, "Macros: P=%dg C=%dg F=%dg\n", s.Totals.Protein, s.Totals.Carbs, s.Totals.Fat)
	if s.ProteinTargetG > 0 || s.CarbsTargetG > 0 || s.FatTargetG > 0 {
		fmt.Fprintf(out, "Macro targets: P=%.0fg C=%.0fg F=%.0fg\n", s.ProteinTargetG, s.CarbsTargetG, s.FatTargetG)
	}
	fmt.Fprintf(out, "Water: %d / %d ml (%d remaining)\n", s.WaterML, s.WaterTargetML, s.RemainingWaterML)
}

func init() {
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Day to summarize (YYYY-MM-DD), defaults to today")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output JSON")
	rootCmd.AddCommand(todayCmd)
}
