package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calorix/calorix/internal/models"
)

var fastingCmd = &cobra.Command{
	Use:   "fasting",
	Short: "Run fasting windows",
}

var (
	fastingMode  string
	fastingHours int
)

var fastingStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a fasting window",
	RunE: func(cmd *cobra.Command, args []string) error {
		container.StartFasting(models.FastingMode(fastingMode), fastingHours)
		snap := container.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Jejum iniciado (%s, meta %dh). Boa sorte!\n",
			snap.Fasting.Mode, snap.Fasting.TargetDuration)
		return nil
	},
}

var fastingStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current fast",
	RunE: func(cmd *cobra.Command, args []string) error {
		container.StopFasting()
		snap := container.Snapshot()
		if n := len(snap.Fasting.History); n > 0 {
			last := snap.Fasting.History[n-1]
			status := "incompleto"
			if last.Completed {
				status = "completo"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Jejum encerrado: %.1fh (%s)\n", last.Duration, status)
		}
		return nil
	},
}

var fastingStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current fasting window",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := container.Snapshot()
		f := snap.Fasting
		if !f.IsActive || f.StartTime == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Nenhum jejum ativo.")
			return nil
		}
		elapsed := time.Since(*f.StartTime).Hours()
		fmt.Fprintf(cmd.OutOrStdout(), "Jejum ativo (%s): %.1fh de %dh\n", f.Mode, elapsed, f.TargetDuration)
		return nil
	},
}

var fastingHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past fasting windows",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := container.Snapshot()
		if len(snap.Fasting.History) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Sem jejuns registrados.")
			return nil
		}
		for _, entry := range snap.Fasting.History {
			mark := " "
			if entry.Completed {
				mark = "x"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  %.1fh\n", mark, entry.Date, entry.Duration)
		}
		return nil
	},
}

func init() {
	fastingStartCmd.Flags().StringVar(&fastingMode, "mode", "rabbit", "Mode (rabbit, fox, lion, custom)")
	fastingStartCmd.Flags().IntVar(&fastingHours, "hours", 0, "Target duration in hours")
	fastingCmd.AddCommand(fastingStartCmd, fastingStopCmd, fastingStatusCmd, fastingHistoryCmd)
	rootCmd.AddCommand(fastingCmd)
}
