package macroo

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d3ku010/macroo/internal/model"
	"github.com/d3ku010/macroo/internal/store"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and manage meals",
}

var (
	mealName     string
	mealType     string
	mealCalories int
	mealProtein  float64
	mealCarbs    float64
	mealFat      float64
	mealDate     string
	mealTime     string
	mealNotes    string
)

var mealLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		consumed, err := parseDateTimeOrNow(mealDate, mealTime)
		if err != nil {
			return err
		}
		parsedType, err := model.ParseMealType(mealType)
		if err != nil {
			return err
		}
		return withRepo(func(repo store.Repository) error {
			meal, err := repo.AddMeal(model.Meal{
				Name:       mealName,
				Type:       parsedType,
				Calories:   mealCalories,
				ProteinG:   mealProtein,
				CarbsG:     mealCarbs,
				FatG:       mealFat,
				ConsumedAt: consumed,
				Notes:      mealNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s, %d kcal) id=%s\n", meal.Name, meal.Type, meal.Calories, meal.ID)
			return nil
		})
	},
}

var (
	mealListDate  string
	mealListFrom  string
	mealListTo    string
	mealListType  string
	mealListLimit int
)

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := store.MealFilter{
			Date:     mealListDate,
			FromDate: mealListFrom,
			ToDate:   mealListTo,
			Limit:    mealListLimit,
		}
		if mealListType != "" {
			parsedType, err := model.ParseMealType(mealListType)
			if err != nil {
				return err
			}
			filter.Type = parsedType
		}
		return withRepo(func(repo store.Repository) error {
			meals, err := repo.ListMeals(filter)
			if err != nil {
				return err
			}
			if len(meals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "WHEN\tTYPE\tNAME\tKCAL\tP\tC\tF\tID")
			for _, m := range meals {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%.1f\t%.1f\t%.1f\t%s\n",
					m.ConsumedAt.Format("2006-01-02 15:04"), m.Type, m.Name, m.Calories, m.ProteinG, m.CarbsG, m.FatG, m.ID)
			}
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo store.Repository) error {
			if err := repo.DeleteMeal(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %s\n", args[0])
			return nil
		})
	},
}

func init() {
	mealLogCmd.Flags().StringVar(&mealName, "name", "", "Meal name")
	mealLogCmd.Flags().StringVar(&mealType, "type", "snack", "Meal type (breakfast|lunch|dinner|snack)")
	mealLogCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories (kcal)")
	mealLogCmd.Flags().Float64Var(&mealProtein, "protein", 0, "Protein (g)")
	mealLogCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "Carbs (g)")
	mealLogCmd.Flags().Float64Var(&mealFat, "fat", 0, "Fat (g)")
	mealLogCmd.Flags().StringVar(&mealDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	mealLogCmd.Flags().StringVar(&mealTime, "time", "", "Time (HH:MM)")
	mealLogCmd.Flags().StringVar(&mealNotes, "notes", "", "Optional notes")
	_ = mealLogCmd.MarkFlagRequired("name")

	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Single day (YYYY-MM-DD)")
	mealListCmd.Flags().StringVar(&mealListFrom, "from", "", "Range start (YYYY-MM-DD)")
	mealListCmd.Flags().StringVar(&mealListTo, "to", "", "Range end (YYYY-MM-DD)")
	mealListCmd.Flags().StringVar(&mealListType, "type", "", "Filter by meal type")
	mealListCmd.Flags().IntVar(&mealListLimit, "limit", 50, "Maximum rows")

	mealCmd.AddCommand(mealLogCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealDeleteCmd)
	rootCmd.AddCommand(mealCmd)
}
