package cmd

import (
	"github.com/climbreels/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	gymsWithVideos bool
	gymsGrade      string
)

var gymsCmd = &cobra.Command{
	Use:   "gyms",
	Short: "Browse climbing gyms",
}

var gymsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List gyms",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewGymService().List(cmd.Context(), gymsWithVideos)
		return err
	},
}

var gymsVideosCmd = &cobra.Command{
	Use:   "videos <gym-id>",
	Short: "List a gym's videos",
	Long:  "List the videos posted at a gym, optionally filtered by grade (e.g. --grade V3)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewGymService().Videos(cmd.Context(), args[0], gymsGrade)
		return err
	},
}

func init() {
	gymsListCmd.Flags().BoolVar(&gymsWithVideos, "with-videos", false, "Only gyms that have videos")
	gymsVideosCmd.Flags().StringVar(&gymsGrade, "grade", "", "Difficulty filter, matched case-insensitively")
	_ = gymsVideosCmd.RegisterFlagCompletionFunc("grade", cobra.FixedCompletions(gradeChoices(), cobra.ShellCompDirectiveNoFileComp))

	gymsCmd.AddCommand(gymsListCmd)
	gymsCmd.AddCommand(gymsVideosCmd)
}
