package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water <ml>",
	Short: "Add water intake for today (negative values undo)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount %q (expected ml)", args[0])
		}
		container.AddWater(amount)

		snap := container.Snapshot()
		intake := 0
		if day := snap.DailyStats[container.Today()]; day != nil {
			intake = day.WaterIntake
		}
		if snap.Goal != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Água hoje: %d / %d ml\n", intake, snap.Goal.DailyWater)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Água hoje: %d ml\n", intake)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
}
