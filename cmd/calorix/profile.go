package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show points, level and badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := container.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "%s — %d pontos, Nível %d\n", snap.User.Name, snap.User.Points, snap.User.Level)
		for _, badge := range snap.User.Badges {
			mark := " "
			if badge.Unlocked {
				mark = "x"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %-10s %s\n", mark, badge.Name, badge.Description)
		}
		return nil
	},
}

var notificationsReadID string

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Show notifications, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		if notificationsReadID != "" {
			if !container.MarkNotificationRead(resolveNotificationID(notificationsReadID)) {
				return fmt.Errorf("no notification %q", notificationsReadID)
			}
		}
		snap := container.Snapshot()
		for _, notif := range snap.Notifications {
			mark := "•"
			if notif.Read {
				mark = " "
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n", mark, notif.ID[:8], notif.Message)
		}
		return nil
	},
}

// resolveNotificationID accepts either a full id or the short prefix shown in
// the listing.
func resolveNotificationID(arg string) string {
	snap := container.Snapshot()
	for _, notif := range snap.Notifications {
		if notif.ID == arg || (len(arg) >= 8 && strings.HasPrefix(notif.ID, arg)) {
			return notif.ID
		}
	}
	return arg
}

func init() {
	notificationsCmd.Flags().StringVar(&notificationsReadID, "read", "", "Mark a notification as read")
	rootCmd.AddCommand(badgesCmd, notificationsCmd)
}
