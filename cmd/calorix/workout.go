package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calorix/calorix/internal/service"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Follow your weekly workout plan",
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the weekly plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := container.Snapshot()
		for _, day := range snap.WorkoutPlan {
			mark := " "
			if day.Completed {
				mark = "x"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  %s (%s)\n", mark, day.ID, day.DayName, day.Focus)
			for _, ex := range day.Exercises {
				fmt.Fprintf(cmd.OutOrStdout(), "       %s  %dx%s\n", ex.Name, ex.Sets, ex.Reps)
			}
		}
		return nil
	},
}

var workoutDoneCmd = &cobra.Command{
	Use:   "done <day>",
	Short: "Toggle a day as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !container.ToggleWorkout(args[0]) {
			return fmt.Errorf("no workout day %q", args[0])
		}
		snap := container.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Pontos: %d | Nível %d\n", snap.User.Points, snap.User.Level)
		return nil
	},
}

var (
	workoutLevel     string
	workoutDuration  int
	workoutEquipment string
	workoutDay       string
)

var workoutGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a home workout and store it on a plan day",
	RunE: func(cmd *cobra.Command, args []string) error {
		ai, err := service.NewNutriAI()
		if err != nil {
			return err
		}
		plan, err := ai.GenerateHomeWorkout(cmd.Context(), workoutLevel, workoutDuration, workoutEquipment)
		if err != nil {
			return err
		}
		if workoutDay != "" {
			if !container.UpdateWorkoutDay(workoutDay, plan.Exercises) {
				return fmt.Errorf("no workout day %q", workoutDay)
			}
		}
		for _, ex := range plan.Exercises {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %dx%s\n", ex.Name, ex.Sets, ex.Reps)
		}
		return nil
	},
}

var workoutPhotoCmd = &cobra.Command{
	Use:   "photo <path>",
	Short: "Extract exercises from a workout photo",
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
		analysis, err := ai.AnalyzeWorkoutPhoto(cmd.Context(), image)
		if err != nil {
			return err
		}
		if analysis == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Não reconheci um treino nesta foto.")
			return nil
		}
		if workoutDay != "" {
			if !container.UpdateWorkoutDay(workoutDay, analysis.Exercises) {
				return fmt.Errorf("no workout day %q", workoutDay)
			}
		}
		for _, ex := range analysis.Exercises {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %dx%s\n", ex.Name, ex.Sets, ex.Reps)
		}
		return nil
	},
}

var (
	activitySteps    int
	activityCalories int
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Record steps and calories burned for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		container.RecordActivity(activitySteps, activityCalories)
		snap := container.Snapshot()
		if day := snap.DailyStats[container.Today()]; day != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Hoje: %d passos | %d kcal queimadas\n", day.Steps, day.CaloriesBurned)
		}
		return nil
	},
}

func init() {
	workoutGenerateCmd.Flags().StringVar(&workoutLevel, "level", "iniciante", "Level (iniciante, intermediario, avancado)")
	workoutGenerateCmd.Flags().IntVar(&workoutDuration, "duration", 30, "Duration in minutes")
	workoutGenerateCmd.Flags().StringVar(&workoutEquipment, "equipment", "nenhum", "Available equipment")
	workoutGenerateCmd.Flags().StringVar(&workoutDay, "day", "", "Plan day to store the workout on")
	workoutPhotoCmd.Flags().StringVar(&workoutDay, "day", "", "Plan day to store the workout on")
	activityCmd.Flags().IntVar(&activitySteps, "steps", 0, "Steps to add")
	activityCmd.Flags().IntVar(&activityCalories, "calories", 0, "Calories burned to add")

	workoutCmd.AddCommand(workoutListCmd, workoutDoneCmd, workoutGenerateCmd, workoutPhotoCmd)
	rootCmd.AddCommand(workoutCmd, activityCmd)
}
