package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cinebook-cli/config"
	"cinebook-cli/service"
	"cinebook-cli/store"
	"cinebook-cli/tui"
)

var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "cinebook",
	Short: "CineBook terminal client",
	Long:  `Browse movies, pick a show, choose your seats and book, all from the terminal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.Debug {
			f, err := tea.LogToFile("cinebook-debug.log", "cinebook")
			if err != nil {
				return err
			}
			defer f.Close()
		}
		_, err := tea.NewProgram(tui.New(cfg), tea.WithAltScreen()).Run()
		return err
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cinebook version",
	Run: func(cmd *cobra.Command, args []string) {
		if commit != "none" && commit != "" {
			fmt.Printf("cinebook %s (%s)\n", version, commit)
			return
		}
		fmt.Printf("cinebook %s\n", version)
	},
}

// newAPIClient builds the shared API client with the persisted session
// cookie attached, so subcommands issue credential-bearing requests.
func newAPIClient() *service.Client {
	cfg := config.Load()
	client := service.NewClient(cfg.APIBaseURL, nil)
	if session, err := store.LoadSession(); err == nil && session.Cookie != "" {
		client.SetSessionCookie(session.Cookie)
	}
	return client
}

func Execute() {
	rootCmd.AddCommand(versionCmd, loginCmd, logoutCmd, bookingsCmd, movieCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
