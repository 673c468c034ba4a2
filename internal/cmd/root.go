package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/climbreels/cli/pkg/client"
	"github.com/climbreels/cli/pkg/config"
	clierrors "github.com/climbreels/cli/pkg/errors"
	"github.com/climbreels/cli/pkg/logger"
	"github.com/climbreels/cli/pkg/output"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	outputFmt  string
)

var rootCmd = &cobra.Command{
	Use:   "climbreels",
	Short: "ClimbReels CLI - climbing gym video reels",
	Long: `ClimbReels is a terminal client for the ClimbReels platform.
Browse gyms, watch and upload bouldering clips, like, save and comment
on reels, and manage your climber profile from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(configPath); err != nil {
			return fmt.Errorf("initializing config: %w", err)
		}

		logger.Init(verbose)

		if cmd.Flags().Changed("output") {
			if !output.ValidateOutputFormat(outputFmt) {
				return clierrors.ValidationError("output", "must be one of text, json, table")
			}
			config.SetString("output.format", outputFmt)
		}

		client.Init()
		return nil
	},
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Close()

	if err != nil {
		fmt.Fprint(os.Stderr, clierrors.FormatError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/climbreels/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "text", "Output format: text, json, table")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(gymsCmd)
	rootCmd.AddCommand(videosCmd)
	rootCmd.AddCommand(commentsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(reelsCmd)
	rootCmd.AddCommand(versionCmd)
}
