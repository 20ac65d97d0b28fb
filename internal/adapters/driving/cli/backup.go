package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as JSON",
	Long:  `Writes quotes, journal entries, and exercise sessions to a JSON file, or to stdout when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import data from a JSON export",
	Long:  `Reads a JSON export and stores its records, rebuilding search index entries as it goes. Reads stdin when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if backupService == nil {
		return errors.New("backup service not configured")
	}

	ctx := context.Background()

	if len(args) == 0 {
		return backupService.Export(ctx, cmd.OutOrStdout())
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := backupService.Export(ctx, f); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Exported to %s\n", args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if backupService == nil {
		return errors.New("backup service not configured")
	}

	ctx := context.Background()

	in := cmd.InOrStdin()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()
		in = f
	}

	backup, err := backupService.Import(ctx, in)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d quotes, %d entries, %d sessions.\n",
		len(backup.Quotes), len(backup.Entries), len(backup.Sessions))
	return nil
}
