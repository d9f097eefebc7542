package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/pokerlog/internal/config"
	"github.com/balkashynov/pokerlog/internal/db"
	"github.com/balkashynov/pokerlog/internal/sessions"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfg config.Config
	svc *sessions.Service
)

var rootCmd = &cobra.Command{
	Use:   "pokerlog",
	Short: "A CLI poker session tracker",
	Long: `pokerlog records your poker sessions (buy-in, cash-out, time, location)
and turns them into hourly rates and weekly, monthly and per-location summaries.`,
}

// initDB loads config, opens the database and builds the session service
func initDB() {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := db.Initialize(loaded.DBPath, loaded.DBDebug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Location was validated by config.Load
	loc, _ := loaded.Location()
	cfg = loaded
	svc = sessions.NewService(db.NewSessionStore(db.DB), sessions.WithLocation(loc))
}

// withDB wraps a command function to initialize the database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initDB()
		defer db.Close()
		fn(cmd, args)
	}
}

// commandContext returns the command's context, or Background when run outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pokerlog %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(endCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
