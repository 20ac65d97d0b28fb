package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Manage reminders",
	Long: `Manage recurring reminders for daily quotes and journal prompts.
Reminders fire while the scheduler is running ('solace remind start'
or while the TUI is open).`,
}

var remindListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders and their schedule state",
	RunE:  runRemindList,
}

var remindEnableCmd = &cobra.Command{
	Use:   "enable [reminder-id]",
	Short: "Enable a reminder",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemindEnable,
}

var remindDisableCmd = &cobra.Command{
	Use:   "disable [reminder-id]",
	Short: "Disable a reminder",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemindDisable,
}

var remindRunCmd = &cobra.Command{
	Use:   "run [reminder-id]",
	Short: "Fire a reminder immediately",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemindRun,
}

var remindStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the reminder scheduler until interrupted",
	RunE:  runRemindStart,
}

func init() {
	remindCmd.AddCommand(remindListCmd)
	remindCmd.AddCommand(remindEnableCmd)
	remindCmd.AddCommand(remindDisableCmd)
	remindCmd.AddCommand(remindRunCmd)
	remindCmd.AddCommand(remindStartCmd)
	rootCmd.AddCommand(remindCmd)
}

func runRemindList(cmd *cobra.Command, _ []string) error {
	if reminderScheduler == nil {
		return errors.New("reminder scheduler not configured")
	}

	reminders, err := reminderScheduler.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list reminders: %w", err)
	}

	if len(reminders) == 0 {
		cmd.Println("No reminders configured.")
		return nil
	}

	cmd.Println(headerStyle.Render("Reminders:"))
	cmd.Println()
	for i := range reminders {
		printReminder(cmd, &reminders[i])
	}
	return nil
}

func printReminder(cmd *cobra.Command, r *domain.Reminder) {
	state := "enabled"
	if !r.Enabled {
		state = "disabled"
	}

	cmd.Printf("  %s (%s, every %s)\n", r.Name, state, r.Interval)
	cmd.Printf("      %s\n", mutedStyle.Render("id: "+r.ID))
	if !r.LastRun.IsZero() {
		cmd.Printf("      %s\n", mutedStyle.Render("last run: "+r.LastRun.Local().Format("2006-01-02 15:04")))
	}
	if r.Enabled && !r.NextRun.IsZero() {
		cmd.Printf("      %s\n", mutedStyle.Render("next run: "+r.NextRun.Local().Format("2006-01-02 15:04")))
	}
	if r.LastError != "" {
		cmd.Printf("      %s\n", mutedStyle.Render("last error: "+r.LastError))
	}
	cmd.Println()
}

func runRemindEnable(cmd *cobra.Command, args []string) error {
	if reminderScheduler == nil {
		return errors.New("reminder scheduler not configured")
	}

	if err := reminderScheduler.SetEnabled(context.Background(), args[0], true); err != nil {
		return fmt.Errorf("failed to enable reminder: %w", err)
	}
	cmd.Printf("Reminder %s enabled.\n", args[0])
	return nil
}

func runRemindDisable(cmd *cobra.Command, args []string) error {
	if reminderScheduler == nil {
		return errors.New("reminder scheduler not configured")
	}

	if err := reminderScheduler.SetEnabled(context.Background(), args[0], false); err != nil {
		return fmt.Errorf("failed to disable reminder: %w", err)
	}
	cmd.Printf("Reminder %s disabled.\n", args[0])
	return nil
}

func runRemindRun(cmd *cobra.Command, args []string) error {
	if reminderScheduler == nil {
		return errors.New("reminder scheduler not configured")
	}

	if err := reminderScheduler.RunNow(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to run reminder: %w", err)
	}
	cmd.Printf("Reminder %s fired.\n", args[0])
	return nil
}

func runRemindStart(cmd *cobra.Command, _ []string) error {
	if reminderScheduler == nil {
		return errors.New("reminder scheduler not configured")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd.Println("Reminder scheduler running. Press Ctrl+C to stop.")
	if err := reminderScheduler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("scheduler stopped: %w", err)
	}
	return nil
}
