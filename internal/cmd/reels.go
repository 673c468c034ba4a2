package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/climbreels/cli/pkg/api"
	"github.com/climbreels/cli/pkg/config"
	"github.com/climbreels/cli/pkg/logger"
	"github.com/climbreels/cli/pkg/reelsui"
	"github.com/climbreels/cli/pkg/service"
	"github.com/spf13/cobra"
)

var reelsPlayer string

var reelsCmd = &cobra.Command{
	Use:   "reels",
	Short: "Watch the reels feed",
	Long: `Open the full-screen reels viewer. The reel in view plays and the
rest pause. Use j/k to scroll, J/K to jump a reel, l to like, s to save,
c to comment and q to quit. Set player.command (or --player) to an
external video player such as "mpv --really-quiet" to watch the clips.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		userID, saved, err := service.ViewerSession(ctx)
		if err != nil {
			return err
		}

		player := config.GetString("player.command")
		if cmd.Flags().Changed("player") {
			player = reelsPlayer
		}

		model := reelsui.NewModel(api.NewGateway(), reelsui.Options{
			UserID:        userID,
			Saved:         saved,
			Threshold:     config.GetFloat("feed.visibility_threshold"),
			Exclusive:     config.GetBool("feed.exclusive_playback"),
			Concurrency:   config.GetInt("feed.comment_concurrency"),
			PlayerCommand: player,
			Context:       ctx,
		})
		defer model.Close()

		logger.Debug("Starting reels viewer", "user_id", userID, "player", player)
		_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		return err
	},
}

func init() {
	reelsCmd.Flags().StringVar(&reelsPlayer, "player", "", "External player command (overrides player.command)")
}
