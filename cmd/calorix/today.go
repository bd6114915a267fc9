package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calorix/calorix/internal/stats"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, hydration and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := container.Snapshot()
		date := container.Today()
		totals := stats.ConsumedTotals(snap.FoodLog, date)

		fmt.Fprintf(cmd.OutOrStdout(), "Data: %s\n", date)
		fmt.Fprintf(cmd.OutOrStdout(), "Consumido: %d kcal | P %.1fg | C %.1fg | G %.1fg\n",
			totals.Calories, totals.Protein, totals.Carbs, totals.Fat)

		if snap.Goal != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Meta: %d kcal | P %dg | C %dg | G %dg\n",
				snap.Goal.DailyCalories, snap.Goal.Macros.Protein, snap.Goal.Macros.Carbs, snap.Goal.Macros.Fat)
			fmt.Fprintf(cmd.OutOrStdout(), "Restante: %d kcal\n", snap.Goal.DailyCalories-totals.Calories)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Meta: não definida (rode calorix onboard)")
		}

		if day := snap.DailyStats[date]; day != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Água: %d ml | Passos: %d | Queimadas: %d kcal\n",
				day.WaterIntake, day.Steps, day.CaloriesBurned)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pontos: %d | Nível %d\n", snap.User.Points, snap.User.Level)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
