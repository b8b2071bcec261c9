package interfaces

import (
	"context"

	"github.com/ternarybob/inspecto/internal/models"
)

// ExtractionService turns a registered blueprint into a fully materialized
// document. Extraction is synchronous, read-only over the live model, and
// best-effort: malformed elements are skipped, never surfaced. The only
// error returned is ErrBlueprintNotFound.
type ExtractionService interface {
	Extract(ctx context.Context, name string) (*models.BlueprintDocument, error)
}
