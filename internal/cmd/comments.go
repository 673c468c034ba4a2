package cmd

import (
	"strings"

	"github.com/climbreels/cli/pkg/service"
	"github.com/spf13/cobra"
)

var commentsCmd = &cobra.Command{
	Use:     "comments",
	Aliases: []string{"comment"},
	Short:   "View and add comments on videos",
}

var commentsListCmd = &cobra.Command{
	Use:   "list <video-id>",
	Short: "List the comments on a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewCommentService().List(cmd.Context(), args[0])
		return err
	},
}

var commentsAddCmd = &cobra.Command{
	Use:   "add <video-id> <text>...",
	Short: "Comment on a video",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args[1:], " ")
		_, err := service.NewCommentService().Add(cmd.Context(), args[0], text)
		return err
	},
}

func init() {
	commentsCmd.AddCommand(commentsListCmd)
	commentsCmd.AddCommand(commentsAddCmd)
}
