package macroo

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/d3ku010/macroo/internal/report"
	"github.com/d3ku010/macroo/internal/store"
	"github.com/d3ku010/macroo/internal/trend"
)

var (
	monthEnd      string
	monthDays     int
	monthNutrient string
	monthJSON     bool
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Monthly trend chart for a nutrient or the macro overlay",
	RunE: func(cmd *cobra.Command, args []string) error {
		end, err := parseDateOrToday(monthEnd)
		if err != nil {
			return err
		}
		return withRepo(func(repo store.Repository) error {
			r, err := report.Monthly(repo, end, monthDays, monthNutrient)
			if err != nil {
				return err
			}
			if monthJSON {
				b, err := json.MarshalIndent(r, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal month json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			printMonthReport(cmd.OutOrStdout(), r)
			return nil
		})
	},
}

func printMonthReport(out io.Writer, r *report.MonthReport) {
	fmt.Fprintf(out, "Range: %s to %s\n", r.FromDate, r.ToDate)
	fmt.Fprintf(out, "Axis: step=%.0f max=%.0f\n", r.Axis.Step, r.Axis.Max)

	if len(r.Datasets) == 1 {
		printSeriesBars(out, r.Datasets[0].Nutrient, r.Labels, r.Datasets[0].Data, r.Axis)
		return
	}

	fmt.Fprintln(out, "Macro Sparklines")
	for _, d := range r.Datasets {
		fmt.Fprintf(out, "%-7s %s\n", d.Nutrient, sparkline(d.Data))
	}
}

func printSeriesBars(out io.Writer, name string, labels []string, data []float64, axis trend.AxisScale) {
	fmt.Fprintf(out, "%s:\n", name)
	for i, v := range data {
		fmt.Fprintf(out, "  %-6s %s %.0f\n", labels[i], horizontalBar(v, axis.Max, 24), v)
	}
}

func horizontalBar(value, max float64, width int) string {
	if width <= 0 || max <= 0 {
		return ""
	}
	bars := int(math.Round((value / max) * float64(width)))
	if bars == 0 && value != 0 {
		bars = 1
	}
	return strings.Repeat("#", bars)
}

func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	chars := []rune("._-~=*#@")
	minV := values[0]
	maxV := values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	if maxV == minV {
		return strings.Repeat(string(chars[0]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		ratio := (v - minV) / (maxV - minV)
		idx := int(math.Round(ratio * float64(len(chars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		b.WriteRune(chars[idx])
	}
	return b.String()
}

func init() {
	monthCmd.Flags().StringVar(&monthEnd, "end", "", "Window end day (YYYY-MM-DD), defaults to today")
	monthCmd.Flags().IntVar(&monthDays, "days", trend.DefaultWindowDays, "Window length in days")
	monthCmd.Flags().StringVar(&monthNutrient, "nutrient", "calories", "calories|protein|carbs|fat|water|macros")
	monthCmd.Flags().BoolVar(&monthJSON, "json", false, "Output chart-ready JSON")
	rootCmd.AddCommand(monthCmd)
}
