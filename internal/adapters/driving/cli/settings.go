package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change application settings.

Settings are stored in ~/.solace/config.toml. Available keys:

  data.dir                            database directory
  search.limit                        default result limit
  search.quote_avg_doc_length         ranker tuning, quotes
  search.journal_avg_doc_length       ranker tuning, journal
  reminders.enabled                   scheduler master switch
  reminders.daily_quote.enabled       daily quote reminder
  reminders.daily_quote.interval      e.g. 24h, 90m
  reminders.journal_prompt.enabled    journal prompt reminder
  reminders.journal_prompt.interval   e.g. 24h, 90m`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runSettingsReset,
}

func init() {
	// Stop flag parsing at the first positional so values like "-1"
	// reach validation instead of being read as flags.
	settingsSetCmd.Flags().SetInterspersed(false)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(headerStyle.Render("Current Settings"))
	cmd.Println()

	cmd.Println("[Data]")
	dir := settings.DataDir
	if dir == "" {
		dir = "(default: ~/.solace/data)"
	}
	cmd.Printf("  data.dir: %s\n", dir)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  search.limit: %d\n", settings.SearchLimit)
	cmd.Printf("  search.quote_avg_doc_length: %g\n", settings.QuoteAvgDocLength)
	cmd.Printf("  search.journal_avg_doc_length: %g\n", settings.JournalAvgDocLength)
	cmd.Println()

	cmd.Println("[Reminders]")
	cmd.Printf("  reminders.enabled: %t\n", settings.Reminders.Enabled)
	for _, kind := range []domain.ReminderKind{domain.ReminderDailyQuote, domain.ReminderJournalPrompt} {
		cfg := settings.Reminders.KindConfig(kind)
		key := settingsKindKey(kind)
		cmd.Printf("  reminders.%s.enabled: %t\n", key, cfg.Enabled)
		cmd.Printf("  reminders.%s.interval: %s\n", key, cfg.Interval)
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	ctx := context.Background()
	settings, err := settingsService.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := applySetting(settings, args[0], args[1]); err != nil {
		return err
	}

	if err := settingsService.Update(ctx, *settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s to %s.\n", args[0], args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Reset(context.Background()); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}

// applySetting mutates one field of settings from its string form.
func applySetting(settings *domain.Settings, key, value string) error {
	switch key {
	case "data.dir":
		settings.DataDir = value
		return nil
	case "search.limit":
		return setInt(&settings.SearchLimit, key, value)
	case "search.quote_avg_doc_length":
		return setFloat(&settings.QuoteAvgDocLength, key, value)
	case "search.journal_avg_doc_length":
		return setFloat(&settings.JournalAvgDocLength, key, value)
	case "reminders.enabled":
		return setBool(&settings.Reminders.Enabled, key, value)
	}

	for _, kind := range []domain.ReminderKind{domain.ReminderDailyQuote, domain.ReminderJournalPrompt} {
		prefix := "reminders." + settingsKindKey(kind) + "."
		cfg := settings.Reminders.KindConfig(kind)

		switch key {
		case prefix + "enabled":
			if err := setBool(&cfg.Enabled, key, value); err != nil {
				return err
			}
		case prefix + "interval":
			interval, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration for %s: %q (use forms like 24h or 90m)", key, value)
			}
			cfg.Interval = interval
		default:
			continue
		}

		if settings.Reminders.Kinds == nil {
			settings.Reminders.Kinds = make(map[domain.ReminderKind]domain.ReminderKindConfig)
		}
		settings.Reminders.Kinds[kind] = cfg
		return nil
	}

	return fmt.Errorf("unknown setting %q (see 'solace settings --help')", key)
}

// settingsKindKey maps a reminder kind to its config key segment.
func settingsKindKey(kind domain.ReminderKind) string {
	switch kind {
	case domain.ReminderDailyQuote:
		return "daily_quote"
	case domain.ReminderJournalPrompt:
		return "journal_prompt"
	default:
		return string(kind)
	}
}

func setInt(dst *int, key, value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer for %s: %q", key, value)
	}
	*dst = v
	return nil
}

func setFloat(dst *float64, key, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid number for %s: %q", key, value)
	}
	*dst = v
	return nil
}

func setBool(dst *bool, key, value string) error {
	v, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for %s: %q (use true or false)", key, value)
	}
	*dst = v
	return nil
}
