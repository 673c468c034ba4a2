package cmd

import (
	"github.com/climbreels/cli/pkg/api"
	"github.com/climbreels/cli/pkg/service"
	"github.com/spf13/cobra"
)

var profileReq api.ProfileRequest

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Climber profile commands",
	Long:  "View, create and edit climber profiles",
}

var profileViewCmd = &cobra.Command{
	Use:   "view [user-id]",
	Short: "View a profile (yours when no id is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := ""
		if len(args) > 0 {
			userID = args[0]
		}
		_, err := service.NewProfileService().View(cmd.Context(), userID)
		return err
	},
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewProfileService().Create(cmd.Context(), profileReq)
		return err
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your profile",
	Long:  "Update your profile. Only the flags you pass are changed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewProfileService().Edit(cmd.Context(), profileReq)
		return err
	},
}

var profileSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search profiles by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewProfileService().Search(cmd.Context(), args[0])
		return err
	},
}

var profileAvatarCmd = &cobra.Command{
	Use:   "avatar <image>",
	Short: "Upload a profile picture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewProfileService().Avatar(cmd.Context(), args[0])
		return err
	},
}

func init() {
	for _, c := range []*cobra.Command{profileCreateCmd, profileEditCmd} {
		c.Flags().StringVar(&profileReq.Bio, "bio", "", "Short bio")
		c.Flags().StringVar(&profileReq.Location, "location", "", "Home area or city")
		c.Flags().StringVar(&profileReq.ClimbingLevel, "level", "", "Climbing level, e.g. V4")
		c.Flags().StringVar(&profileReq.ProfilePicture, "picture", "", "Profile picture URL")
		c.Flags().StringSliceVar(&profileReq.Preferences, "preferences", nil, "Preferred grades for the for-me feed, e.g. V3,V4")
	}

	profileCmd.AddCommand(profileViewCmd)
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileEditCmd)
	profileCmd.AddCommand(profileSearchCmd)
	profileCmd.AddCommand(profileAvatarCmd)
}
