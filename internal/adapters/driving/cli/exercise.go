package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Guided wellness exercises",
	Long:  `Browse the exercise catalogue and record completed sessions.`,
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available exercises",
	RunE:  runExerciseList,
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show [exercise-id]",
	Short: "Show an exercise's guided steps",
	Args:  cobra.ExactArgs(1),
	RunE:  runExerciseShow,
}

var exerciseCompleteCmd = &cobra.Command{
	Use:   "complete [exercise-id]",
	Short: "Record a completed exercise session",
	Args:  cobra.ExactArgs(1),
	RunE:  runExerciseComplete,
}

var exerciseNotes string

func init() {
	exerciseCompleteCmd.Flags().StringVarP(&exerciseNotes, "notes", "n", "", "optional notes about the session")

	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseShowCmd)
	exerciseCmd.AddCommand(exerciseCompleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}

func runExerciseList(cmd *cobra.Command, _ []string) error {
	if exerciseService == nil {
		return errors.New("exercise service not configured")
	}

	exercises, err := exerciseService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list exercises: %w", err)
	}

	cmd.Println(headerStyle.Render("Exercises:"))
	cmd.Println()
	for i := range exercises {
		e := &exercises[i]
		cmd.Printf("  %s (%d min)\n", e.Title, e.DurationMinutes)
		cmd.Printf("      %s\n", mutedStyle.Render(e.Description))
		cmd.Printf("      %s\n", mutedStyle.Render("id: "+e.ID))
		cmd.Println()
	}
	return nil
}

func runExerciseShow(cmd *cobra.Command, args []string) error {
	if exerciseService == nil {
		return errors.New("exercise service not configured")
	}

	exercise, err := exerciseService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get exercise: %w", err)
	}

	cmd.Println(headerStyle.Render(exercise.Title))
	cmd.Println(mutedStyle.Render(exercise.Description))
	cmd.Printf("%s\n\n", mutedStyle.Render(fmt.Sprintf("Suggested duration: %d minutes", exercise.DurationMinutes)))

	for i, step := range exercise.Steps {
		cmd.Printf("  %d. %s\n", i+1, step)
	}
	cmd.Println()
	cmd.Printf("When done, record it: solace exercise complete %s\n", exercise.ID)
	return nil
}

func runExerciseComplete(cmd *cobra.Command, args []string) error {
	if exerciseService == nil {
		return errors.New("exercise service not configured")
	}

	session, err := exerciseService.Complete(context.Background(), args[0], exerciseNotes)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}

	cmd.Printf("Session recorded at %s. Well done.\n", session.CompletedAt.Format("15:04"))
	return nil
}
