package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calorix/calorix/internal/models"
	"github.com/calorix/calorix/internal/service"
	"github.com/calorix/calorix/internal/stats"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage meal entries",
}

var (
	foodName     string
	foodCalories int
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodMeal     string
	foodDate     string
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ok := container.AddFood(models.FoodItem{
			Name:     foodName,
			Calories: foodCalories,
			Protein:  foodProtein,
			Carbs:    foodCarbs,
			Fat:      foodFat,
			MealType: models.MealType(foodMeal),
			Date:     foodDate,
		})
		if !ok {
			return fmt.Errorf("entry rejected: a name and positive calories are required")
		}
		snap := container.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Registrado: %s (%d kcal)\n", foodName, foodCalories)
		fmt.Fprintf(cmd.OutOrStdout(), "Pontos: %d | Nível %d\n", snap.User.Points, snap.User.Level)
		return nil
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date := foodDate
		if date == "" {
			date = container.Today()
		}
		snap := container.Snapshot()
		totals := stats.ConsumedTotals(snap.FoodLog, date)
		for _, item := range snap.FoodLog {
			if item.Date != date {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s %5d kcal  P %.1fg C %.1fg G %.1fg\n",
				item.ID[:8], item.Name, item.Calories, item.Protein, item.Carbs, item.Fat)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Total: %d kcal | P %.1fg | C %.1fg | G %.1fg\n",
			totals.Calories, totals.Protein, totals.Carbs, totals.Fat)
		return nil
	},
}

var foodRemoveCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := resolveFoodID(args[0])
		if !container.RemoveFood(id) {
			return fmt.Errorf("no entry with id %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Removido.")
		return nil
	},
}

var foodPhotoCmd = &cobra.Command{
	Use:   "photo <path>",
	Short: "Identify a meal from a photo and log it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		image, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read photo: %w", err)
		}
		ai, err := service.NewNutriAI()
		if err != nil {
			return err
		}
		analysis, err := ai.AnalyzeFoodPhoto(cmd.Context(), image)
		if err != nil {
			return err
		}
		if analysis == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Não consegui identificar um alimento nesta foto.")
			return nil
		}
		container.AddFood(models.FoodItem{
			Name:           analysis.Name,
			Calories:       analysis.Calories,
			Protein:        analysis.Protein,
			Carbs:          analysis.Carbs,
			Fat:            analysis.Fat,
			Micronutrients: analysis.Micronutrients,
		})
		fmt.Fprintf(cmd.OutOrStdout(), "Registrado: %s (%d kcal)\n", analysis.Name, analysis.Calories)
		return nil
	},
}

var (
	microNutrient string
	microValue    float64
)

var foodMicroCmd = &cobra.Command{
	Use:   "micro",
	Short: "Set a micronutrient total for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		container.SetMicronutrient(models.Nutrient(microNutrient), microValue)
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %.1f mg\n", microNutrient, microValue)
		return nil
	},
}

// resolveFoodID accepts either a full id or the short prefix shown by list.
func resolveFoodID(arg string) string {
	snap := container.Snapshot()
	for _, item := range snap.FoodLog {
		if item.ID == arg || (len(arg) >= 8 && len(item.ID) >= len(arg) && item.ID[:len(arg)] == arg) {
			return item.ID
		}
	}
	return arg
}

func init() {
	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().IntVar(&foodCalories, "calories", 0, "Calories (kcal)")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein in grams")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs in grams")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat in grams")
	foodAddCmd.Flags().StringVar(&foodMeal, "meal", "", "Meal (cafe, almoco, jantar, lanche)")
	foodAddCmd.Flags().StringVar(&foodDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	foodListCmd.Flags().StringVar(&foodDate, "date", "", "Date (YYYY-MM-DD), defaults to today")
	foodMicroCmd.Flags().StringVar(&microNutrient, "nutrient", "", "Nutrient (vitaminC, iron, calcium, potassium, magnesium)")
	foodMicroCmd.Flags().Float64Var(&microValue, "value", 0, "Amount in mg")

	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodRemoveCmd, foodPhotoCmd, foodMicroCmd)
	rootCmd.AddCommand(foodCmd)
}
