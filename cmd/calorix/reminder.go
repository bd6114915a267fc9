package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/calorix/calorix/internal/models"
)

var reminderCmd = &cobra.Command{
	Use:   "reminder",
	Short: "Manage daily reminders",
}

var (
	reminderTitle string
	reminderTime  string
	reminderType  string
)

var reminderAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		if reminderTitle == "" || reminderTime == "" {
			return fmt.Errorf("--title and --time are required")
		}
		snap := container.Snapshot()
		reminders := append(snap.Reminders, models.Reminder{
			ID:     uuid.New().String(),
			Title:  reminderTitle,
			Time:   reminderTime,
			Active: true,
			Type:   models.ReminderType(reminderType),
		})
		container.SetReminders(reminders)
		fmt.Fprintf(cmd.OutOrStdout(), "Lembrete criado: %s às %s\n", reminderTitle, reminderTime)
		return nil
	},
}

var reminderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := container.Snapshot()
		if len(snap.Reminders) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Sem lembretes.")
			return nil
		}
		for _, r := range snap.Reminders {
			mark := " "
			if r.Active {
				mark = "x"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  %s (%s)\n", mark, r.Time, r.Title, r.Type)
		}
		return nil
	},
}

var reminderClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		container.SetReminders(nil)
		fmt.Fprintln(cmd.OutOrStdout(), "Lembretes removidos.")
		return nil
	},
}

func init() {
	reminderAddCmd.Flags().StringVar(&reminderTitle, "title", "", "Reminder title")
	reminderAddCmd.Flags().StringVar(&reminderTime, "time", "", "Time of day (HH:MM)")
	reminderAddCmd.Flags().StringVar(&reminderType, "type", "water", "Type (water, meal, workout)")
	reminderCmd.AddCommand(reminderAddCmd, reminderListCmd, reminderClearCmd)
	rootCmd.AddCommand(reminderCmd)
}
