package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/calorix/calorix/internal/models"
	"github.com/calorix/calorix/internal/state"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull activity from connected health integrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !container.HasActiveIntegrations() {
			return fmt.Errorf("no active integrations (run calorix integration <name> first)")
		}
		steps, calories := container.SyncNow()
		fmt.Fprintf(cmd.OutOrStdout(), "Sincronizado: +%d passos, +%d kcal\n", steps, calories)
		return nil
	},
}

var syncWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep syncing on an interval until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		scheduler := state.NewScheduler(container, appConfig.SyncInterval)
		scheduler.Start()
		fmt.Fprintln(cmd.OutOrStdout(), "Sincronização periódica ativa. Ctrl+C para sair.")

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		scheduler.Stop()
		return nil
	},
}

var integrationCmd = &cobra.Command{
	Use:   "integration <name>",
	Short: "Connect or disconnect a health integration",
	Long:  "Toggles one of: googleFit, appleHealth, fitbit, samsungHealth, garmin, strava, xiaomi, appleWatch.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container.ToggleIntegration(models.IntegrationKey(args[0]))
		if container.HasActiveIntegrations() {
			fmt.Fprintln(cmd.OutOrStdout(), "Integração ativa.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma integração ativa.")
		}
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncWatchCmd)
	rootCmd.AddCommand(syncCmd, integrationCmd)
}
