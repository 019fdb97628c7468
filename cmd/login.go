package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"cinebook-cli/store"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session for later runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, err := promptEmail()
		if err != nil {
			return err
		}
		password, err := promptPassword()
		if err != nil {
			return err
		}

		client := newAPIClient()
		user, cookie, err := client.Login(context.Background(), email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		if cookie == "" {
			return errors.New("server did not return a session cookie")
		}
		if err := store.SaveSession(store.Session{Cookie: cookie, User: user}); err != nil {
			return fmt.Errorf("save session: %w", err)
		}

		fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newAPIClient()
		// Best effort server side; the local session is dropped regardless.
		_ = client.Logout(context.Background())
		if err := store.ClearSession(); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

func promptEmail() (string, error) {
	prompt := promptui.Prompt{
		Label: "Email",
		Validate: func(input string) error {
			if !strings.Contains(input, "@") {
				return errors.New("enter a valid email address")
			}
			return nil
		},
	}
	email, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(email), nil
}

func promptPassword() (string, error) {
	prompt := promptui.Prompt{
		Label: "Password",
		Mask:  '*',
		Validate: func(input string) error {
			if input == "" {
				return errors.New("password is required")
			}
			return nil
		},
	}
	return prompt.Run()
}
