package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calorix/calorix/internal/models"
)

var (
	onboardName         string
	onboardAge          int
	onboardGender       string
	onboardWeight       float64
	onboardHeight       float64
	onboardActivity     string
	onboardSports       bool
	onboardSportsType   string
	onboardGoal         string
	onboardTargetWeight float64
	onboardDeadline     int
	onboardNoStorage    bool
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Set up your profile and derive your daily goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if onboardName == "" || onboardAge <= 0 || onboardWeight <= 0 || onboardHeight <= 0 {
			return fmt.Errorf("name, age, weight and height are required")
		}

		goal := container.CompleteOnboarding(models.User{
			Name:              onboardName,
			Age:               onboardAge,
			Gender:            models.Gender(onboardGender),
			Weight:            onboardWeight,
			Height:            onboardHeight,
			UnitSystem:        models.UnitMetric,
			ActivityLevel:     models.ActivityLevel(onboardActivity),
			Sports:            onboardSports,
			SportsType:        onboardSportsType,
			GoalType:          models.GoalType(onboardGoal),
			TargetWeight:      onboardTargetWeight,
			Deadline:          onboardDeadline,
			AllowLocalStorage: !onboardNoStorage,
		})

		fmt.Fprintf(cmd.OutOrStdout(), "Bem-vinda ao Calorix, %s!\n", onboardName)
		fmt.Fprintf(cmd.OutOrStdout(), "Meta diária: %d kcal | %d ml de água\n", goal.DailyCalories, goal.DailyWater)
		fmt.Fprintf(cmd.OutOrStdout(), "Macros: P %dg | C %dg | G %dg\n", goal.Macros.Protein, goal.Macros.Carbs, goal.Macros.Fat)
		return nil
	},
}

func init() {
	onboardCmd.Flags().StringVar(&onboardName, "name", "", "Your name")
	onboardCmd.Flags().IntVar(&onboardAge, "age", 0, "Age in years")
	onboardCmd.Flags().StringVar(&onboardGender, "gender", "female", "Gender (female, male, prefer_not_to_say)")
	onboardCmd.Flags().Float64Var(&onboardWeight, "weight", 0, "Weight in kg")
	onboardCmd.Flags().Float64Var(&onboardHeight, "height", 0, "Height in cm")
	onboardCmd.Flags().StringVar(&onboardActivity, "activity", "sedentary", "Activity level (sedentary, light, moderate, active, very_active)")
	onboardCmd.Flags().BoolVar(&onboardSports, "sports", false, "Practices sports regularly")
	onboardCmd.Flags().StringVar(&onboardSportsType, "sports-type", "", "Which sport")
	onboardCmd.Flags().StringVar(&onboardGoal, "goal", "lose_weight", "Goal (lose_weight, gain_muscle, define, maintain, ...)")
	onboardCmd.Flags().Float64Var(&onboardTargetWeight, "target-weight", 0, "Target weight in kg")
	onboardCmd.Flags().IntVar(&onboardDeadline, "deadline", 0, "Deadline in days")
	onboardCmd.Flags().BoolVar(&onboardNoStorage, "no-storage", false, "Do not persist state to disk")
	rootCmd.AddCommand(onboardCmd)
}
