package client

import (
	"github.com/MKhiriev/go-stats-sync/models"
	"github.com/spf13/cobra"
)

func (c *cli) newRegisterCmd() *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.report(<-c.app.Coordinator().Register(cmd.Context(), creds))
		},
	}

	credentialFlags(cmd, &creds)
	return cmd
}

func (c *cli) newLoginCmd() *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.report(<-c.app.Coordinator().Login(cmd.Context(), creds))
		},
	}

	credentialFlags(cmd, &creds)
	return cmd
}

func credentialFlags(cmd *cobra.Command, creds *models.Credentials) {
	cmd.Flags().StringVarP(&creds.Username, "user", "u", "", "Username (required)")
	cmd.Flags().StringVarP(&creds.Password, "pass", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")
}

func (c *cli) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(cmd.Context()); err != nil {
				return err
			}
			if err := c.app.Coordinator().Logout(cmd.Context()); err != nil {
				return err
			}

			c.out.PrintMessage("logged out")
			return nil
		},
	}
}

func (c *cli) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the cached profile of the logged-in player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(cmd.Context()); err != nil {
				return err
			}

			profile, _ := c.app.Coordinator().CurrentUser()
			c.out.PrintProfile(profile)
			return nil
		},
	}
}

func (c *cli) newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reload the profile from the account service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(cmd.Context()); err != nil {
				return err
			}
			return c.report(<-c.app.Coordinator().Refresh(cmd.Context()))
		},
	}
}
