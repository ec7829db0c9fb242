package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/mysquad-go/internal/cli/store"
)

var (
	cfg       *Config
	client    *Client
	authStore *store.Auth
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "mysquad",
		Short: "CLI tool for the MySquad roster API",
		Long: `mysquad is a CLI tool for interacting with the MySquad player-roster API.

It supports account management (register, login, update, delete) and
full roster operations: listing with filtering and sorting, creating,
updating, and deleting players.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load the persisted session if no token was supplied
			if err := cfg.LoadSession(); err != nil {
				return err
			}

			// Create HTTP client and state stores
			client = NewClient(cfg.ServerURL, cfg.Token)
			authStore = store.NewAuth(client)
			if s := cfg.Session(); s.Token != "" {
				authStore.Restore(s.Token, store.Identity{ID: s.UserID, Email: s.Email})
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: MYSQUAD_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Token, "token", cfg.Token, "Bearer token (env: MYSQUAD_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&cfg.SessionFile, "session-file", cfg.SessionFile, "Session file path (env: MYSQUAD_SESSION_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
