package driving

import (
	"context"
	"io"

	"github.com/solace-labs/solace-cli/internal/core/domain"
)

// BackupService exports and imports the full dataset as JSON.
type BackupService interface {
	// Export writes a backup document for all stored data.
	Export(ctx context.Context, w io.Writer) error

	// Import reads a backup document and stores its records,
	// re-indexing as it goes. Returns the imported backup.
	Import(ctx context.Context, r io.Reader) (*domain.Backup, error)
}
