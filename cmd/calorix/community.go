package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var postCategory string

var postCmd = &cobra.Command{
	Use:   "post <content>",
	Short: "Publish a post to the community feed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		post := container.CreatePost(strings.Join(args, " "), "", "", postCategory)
		if post == nil {
			return fmt.Errorf("post content must not be empty")
		}
		snap := container.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Publicado! Pontos: %d | Nível %d\n", snap.User.Points, snap.User.Level)
		return nil
	},
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show the community feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := container.Snapshot()
		for _, post := range snap.CommunityPosts {
			liked := " "
			if post.IsLiked {
				liked = "♥"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s [%s]\n", post.ID[:8], post.Avatar, post.Author, post.Category)
			fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", post.Content)
			fmt.Fprintf(cmd.OutOrStdout(), "    %s %d curtidas | %d comentários\n", liked, post.Likes, post.CommentsCount)
			for _, comment := range post.Comments {
				fmt.Fprintf(cmd.OutOrStdout(), "      %s %s: %s\n", comment.Avatar, comment.Author, comment.Content)
			}
		}
		return nil
	},
}

var likeCmd = &cobra.Command{
	Use:   "like <post>",
	Short: "Like or unlike a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !container.ToggleLike(resolvePostID(args[0])) {
			return fmt.Errorf("no post %q", args[0])
		}
		return nil
	},
}

var saveCmd = &cobra.Command{
	Use:   "save <post>",
	Short: "Save or unsave a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !container.ToggleSave(resolvePostID(args[0])) {
			return fmt.Errorf("no post %q", args[0])
		}
		return nil
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment <post> <text>",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		comment := container.AddComment(resolvePostID(args[0]), strings.Join(args[1:], " "))
		if comment == nil {
			return fmt.Errorf("no post %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Comentário publicado.")
		return nil
	},
}

var followCmd = &cobra.Command{
	Use:   "follow <user>",
	Short: "Follow or unfollow a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		container.ToggleFollow(args[0])
		snap := container.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Seguindo %d perfis.\n", len(snap.User.Following))
		return nil
	},
}

// resolvePostID accepts either a full id or the short prefix shown by feed.
func resolvePostID(arg string) string {
	snap := container.Snapshot()
	for _, post := range snap.CommunityPosts {
		if post.ID == arg || (len(arg) >= 8 && len(post.ID) >= len(arg) && strings.HasPrefix(post.ID, arg)) {
			return post.ID
		}
	}
	return arg
}

func init() {
	postCmd.Flags().StringVar(&postCategory, "category", "", "Category (motivation, recipes, tips, general)")
	rootCmd.AddCommand(postCmd, feedCmd, likeCmd, saveCmd, commentCmd, followCmd)
}
