package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mohsinali45213/folio/internal/config"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate against the content store",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		var password string

		var fields []huh.Field
		if email == "" {
			fields = append(fields, huh.NewInput().Title("Email").Value(&email))
		}
		fields = append(fields, huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password))
		if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
			return err
		}

		session, err := client.CreateEmailSession(email, password)
		if err != nil {
			return fmt.Errorf("logging in: %w", err)
		}

		cfg.Session = session.Secret
		if err := config.Save(dataDir, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println("Logged in")
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Session != "" {
			// Invalidate remotely; a dead session locally is enough either way.
			if err := client.DeleteSession("current"); err != nil {
				fmt.Printf("warning: could not invalidate remote session: %v\n", err)
			}
		}
		cfg.Session = ""
		if err := config.Save(dataDir, cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println("Logged out")
		return nil
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := client.Me()
		if err != nil {
			fmt.Println("Not logged in")
			return nil
		}
		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "account email")
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)
	rootCmd.AddCommand(authCmd)
}
