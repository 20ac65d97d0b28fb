// Package cli implements the command-line interface for Solace.
//
// Commands are thin adapters: they parse flags, call the core services
// through their driving ports, and format output. Services are injected
// once at startup via SetServices.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solace-labs/solace-cli/internal/core/ports/driving"
	"github.com/solace-labs/solace-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Nil until SetServices is called; commands guard
// against that so a partially wired binary fails with a clear message.
var (
	quoteService      driving.QuoteService
	journalService    driving.JournalService
	exerciseService   driving.ExerciseService
	progressService   driving.ProgressService
	searchService     driving.SearchService
	reminderScheduler driving.ReminderScheduler
	settingsService   driving.SettingsService
	backupService     driving.BackupService
)

// Services bundles everything the CLI needs.
type Services struct {
	Quotes    driving.QuoteService
	Journal   driving.JournalService
	Exercises driving.ExerciseService
	Progress  driving.ProgressService
	Search    driving.SearchService
	Reminders driving.ReminderScheduler
	Settings  driving.SettingsService
	Backup    driving.BackupService
}

// SetServices injects the core services into the CLI commands.
func SetServices(s Services) {
	quoteService = s.Quotes
	journalService = s.Journal
	exerciseService = s.Exercises
	progressService = s.Progress
	searchService = s.Search
	reminderScheduler = s.Reminders
	settingsService = s.Settings
	backupService = s.Backup
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "solace",
	Short: "A local-first companion for quotes, journaling, and calm",
	Long: `Solace keeps an inspirational quote library, a private journal, and
guided exercises on your own machine, with full-text search across all
of it. No accounts, no cloud. Data lives in ~/.solace.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
