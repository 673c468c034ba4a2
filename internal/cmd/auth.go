package cmd

import (
	"github.com/climbreels/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	authName     string
	authEmail    string
	authPassword string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Log in to ClimbReels and manage the stored session",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to ClimbReels",
	Long:  "Authenticate with email and password. Missing values are prompted for.",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewAuthService(nil).Login(cmd.Context(), authEmail, authPassword)
		return err
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new ClimbReels account",
	Long:  "Register a new account and an empty climber profile for it",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := service.NewAuthService(nil).Register(cmd.Context(), authName, authEmail, authPassword)
		return err
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of ClimbReels",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService(nil).Logout()
	},
}

var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Display the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewAuthService(nil).WhoAmI()
	},
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "Account email")
		c.Flags().StringVar(&authPassword, "password", "", "Account password (prompted when omitted)")
	}
	registerCmd.Flags().StringVar(&authName, "name", "", "Display name")

	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)
}
