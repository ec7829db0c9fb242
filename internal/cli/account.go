package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management commands",
	}

	cmd.AddCommand(newAccountUpdateCmd())
	cmd.AddCommand(newAccountDeleteCmd())

	return cmd
}

// requireLogin returns the logged-in user's ID
func requireLogin() (string, error) {
	identity := authStore.User()
	if identity == nil {
		return "", fmt.Errorf("not logged in")
	}
	return identity.ID, nil
}

func newAccountUpdateCmd() *cobra.Command {
	var email, name, pass string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireLogin()
			if err != nil {
				return err
			}

			body := map[string]string{}
			if cmd.Flags().Changed("email") {
				body["email"] = email
			}
			if cmd.Flags().Changed("name") {
				body["name"] = name
			}
			if cmd.Flags().Changed("pass") {
				body["password"] = pass
			}
			if len(body) == 0 {
				return fmt.Errorf("nothing to update: pass --email, --name, or --pass")
			}

			var user User
			if err := client.Put("/api/v1/users/"+userID, body, &user); err != nil {
				return err
			}

			// Keep the saved session in step with an email change
			if cmd.Flags().Changed("email") {
				s := cfg.Session()
				s.Email = user.Email
				if err := cfg.SaveSession(s); err != nil {
					return fmt.Errorf("failed to save session: %w", err)
				}
			}

			NewOutput(cfg.Output).Print(user)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "New email address")
	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.Flags().StringVar(&pass, "pass", "", "New password")

	return cmd
}

func newAccountDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the logged-in account and all its players",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := requireLogin()
			if err != nil {
				return err
			}

			if !yes {
				return fmt.Errorf("this deletes the account and every player it created; re-run with --yes to confirm")
			}

			var result MessageResult
			if err := client.Delete("/api/v1/users/"+userID, &result); err != nil {
				return err
			}

			authStore.Logout()
			if err := cfg.ClearSession(); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(result.Message)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")

	return cmd
}
