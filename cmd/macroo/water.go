package macroo

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d3ku010/macroo/internal/model"
	"github.com/d3ku010/macroo/internal/store"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log and review hydration",
}

var (
	waterAmount int
	waterDate   string
	waterTime   string
)

var waterLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		logged, err := parseDateTimeOrNow(waterDate, waterTime)
		if err != nil {
			return err
		}
		return withRepo(func(repo store.Repository) error {
			entry, err := repo.AddWater(model.WaterEntry{AmountML: waterAmount, LoggedAt: logged})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d ml id=%s\n", entry.AmountML, entry.ID)
			return nil
		})
	},
}

var (
	waterListDate string
	waterListFrom string
	waterListTo   string
)

var waterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List water entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo store.Repository) error {
			entries, err := repo.ListWater(store.WaterFilter{
				Date:     waterListDate,
				FromDate: waterListFrom,
				ToDate:   waterListTo,
			})
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No water entries found")
				return nil
			}
			total := 0
			fmt.Fprintln(cmd.OutOrStdout(), "WHEN\tML\tID")
			for _, w := range entries {
				total += w.AmountML
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", w.LoggedAt.Format("2006-01-02 15:04"), w.AmountML, w.ID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d ml\n", total)
			return nil
		})
	},
}

func init() {
	waterLogCmd.Flags().IntVar(&waterAmount, "ml", 250, "Amount in milliliters")
	waterLogCmd.Flags().StringVar(&waterDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	waterLogCmd.Flags().StringVar(&waterTime, "time", "", "Time (HH:MM)")

	waterListCmd.Flags().StringVar(&waterListDate, "date", "", "Single day (YYYY-MM-DD)")
	waterListCmd.Flags().StringVar(&waterListFrom, "from", "", "Range start (YYYY-MM-DD)")
	waterListCmd.Flags().StringVar(&waterListTo, "to", "", "Range end (YYYY-MM-DD)")

	waterCmd.AddCommand(waterLogCmd)
	waterCmd.AddCommand(waterListCmd)
	rootCmd.AddCommand(waterCmd)
}
