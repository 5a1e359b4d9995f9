package macroo

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d3ku010/macroo/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage profile targets",
}

var (
	profileName     string
	profileCalories int
	profileWater    int
	profileProtein  float64
	profileCarbs    float64
	profileFat      float64
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set profile name and daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo store.Repository) error {
			current, err := repo.Profile()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				current.Name = profileName
			}
			if cmd.Flags().Changed("calories") {
				current.CalorieTarget = profileCalories
			}
			if cmd.Flags().Changed("water") {
				current.WaterTargetML = profileWater
			}
			if cmd.Flags().Changed("protein") {
				current.ProteinTargetG = profileProtein
			}
			if cmd.Flags().Changed("carbs") {
				current.CarbsTargetG = profileCarbs
			}
			if cmd.Flags().Changed("fat") {
				current.FatTargetG = profileFat
			}
			if err := repo.SaveProfile(current); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(repo store.Repository) error {
			p, err := repo.Profile()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if p.Name != "" {
				fmt.Fprintf(out, "Name: %s\n", p.Name)
			}
			fmt.Fprintf(out, "Calorie target: %d kcal\n", p.CalorieTarget)
			fmt.Fprintf(out, "Water target: %d ml\n", p.WaterTargetML)
			if p.ProteinTargetG > 0 || p.CarbsTargetG > 0 || p.FatTargetG > 0 {
				fmt.Fprintf(out, "Macro targets: P=%.1fg C=%.1fg F=%.1fg\n", p.ProteinTargetG, p.CarbsTargetG, p.FatTargetG)
			}
			return nil
		})
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().IntVar(&profileCalories, "calories", 2000, "Daily calorie target (kcal)")
	profileSetCmd.Flags().IntVar(&profileWater, "water", 2000, "Daily water target (ml)")
	profileSetCmd.Flags().Float64Var(&profileProtein, "protein", 0, "Daily protein target (g)")
	profileSetCmd.Flags().Float64Var(&profileCarbs, "carbs", 0, "Daily carbs target (g)")
	profileSetCmd.Flags().Float64Var(&profileFat, "fat", 0, "Daily fat target (g)")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
