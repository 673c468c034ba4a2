package cmd

import (
	"fmt"
	"strings"

	"github.com/climbreels/cli/pkg/reels"
	"github.com/climbreels/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	listOpts   service.ListOptions
	uploadOpts service.UploadOptions
	deleteYes  bool
)

func gradeChoices() []string {
	return reels.Grades
}

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Browse, upload and interact with videos",
}

var videosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List videos",
	Long:  "List all videos, or only those of a gym, a profile, or matching your preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewVideoService(nil).List(cmd.Context(), listOpts)
		return err
	},
}

var videosUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a climbing clip",
	Long: fmt.Sprintf("Upload a video (%s, up to %d MB) to a gym.",
		strings.Join(service.VideoFormats, ", "), service.MaxUploadMB),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := uploadOpts
		opts.Path = args[0]
		_, err := service.NewVideoService(nil).Upload(cmd.Context(), opts)
		return err
	},
}

var videosDeleteCmd = &cobra.Command{
	Use:   "delete <video-id>",
	Short: "Delete a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewVideoService(nil).Delete(cmd.Context(), args[0], deleteYes)
		return err
	},
}

var videosLikeCmd = &cobra.Command{
	Use:   "like <video-id>",
	Short: "Like or unlike a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewVideoService(nil).Like(cmd.Context(), args[0])
		return err
	},
}

var videosSaveCmd = &cobra.Command{
	Use:   "save <video-id>",
	Short: "Save or unsave a video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewVideoService(nil).Save(cmd.Context(), args[0])
		return err
	},
}

func init() {
	videosListCmd.Flags().StringVar(&listOpts.GymID, "gym", "", "Only videos from this gym")
	videosListCmd.Flags().StringVar(&listOpts.ProfileID, "profile", "", "Only videos by this profile")
	videosListCmd.Flags().BoolVar(&listOpts.ForMe, "for-me", false, "Videos matching your profile preferences")
	videosListCmd.MarkFlagsMutuallyExclusive("gym", "profile", "for-me")

	videosUploadCmd.Flags().StringVar(&uploadOpts.GymID, "gym", "", "Gym the climb is at")
	videosUploadCmd.Flags().StringVar(&uploadOpts.Grade, "grade", "", "Difficulty level, e.g. V3")
	videosUploadCmd.Flags().StringVar(&uploadOpts.Description, "description", "", "Caption")
	_ = videosUploadCmd.MarkFlagRequired("gym")
	_ = videosUploadCmd.RegisterFlagCompletionFunc("grade", cobra.FixedCompletions(gradeChoices(), cobra.ShellCompDirectiveNoFileComp))

	videosDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")

	videosCmd.AddCommand(videosListCmd)
	videosCmd.AddCommand(videosUploadCmd)
	videosCmd.AddCommand(videosDeleteCmd)
	videosCmd.AddCommand(videosLikeCmd)
	videosCmd.AddCommand(videosSaveCmd)
}
