package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calorix/calorix/internal/models"
	"github.com/calorix/calorix/internal/service"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Talk to NutriAI, your nutrition assistant",
	RunE: func(cmd *cobra.Command, args []string) error {
		ai, err := service.NewNutriAI()
		if err != nil {
			return err
		}

		// Single-shot when a message is given on the command line
		if len(args) > 0 {
			reply, err := ai.Chat(cmd.Context(), strings.Join(args, " "), nil)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		}

		// Interactive session; history lives only for this session
		fmt.Fprintln(cmd.OutOrStdout(), "NutriAI pronta. Linha vazia para sair.")
		var history []models.ChatMessage
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(cmd.OutOrStdout(), "> ")
			if !scanner.Scan() {
				break
			}
			message := strings.TrimSpace(scanner.Text())
			if message == "" {
				break
			}
			reply, err := ai.Chat(cmd.Context(), message, history)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			history = append(history,
				models.ChatMessage{Role: models.ChatRoleUser, Text: message},
				models.ChatMessage{Role: models.ChatRoleModel, Text: reply},
			)
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
