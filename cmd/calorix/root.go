package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calorix/calorix/config"
	"github.com/calorix/calorix/internal/state"
)

var (
	container *state.Container
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "calorix",
	Short: "Calorix tracks nutrition, fasting and workouts from your terminal",
	Long:  "Calorix is a local-first health companion: log meals and water, follow your workout plan, run fasting windows, and earn points and badges along the way.",
}

// Execute wires the shared state container into the command tree and runs it.
func Execute(c *state.Container, cfg *config.Config) {
	container = c
	appConfig = cfg
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
