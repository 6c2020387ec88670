package repository

import (
	"context"

	"github.com/scrubkh/invoice-api/internal/domain/entity"
)

// DraftRepository defines the interface for draft slot data access.
// Load returns nil when no draft has been saved.
type DraftRepository interface {
	Load(ctx context.Context) (*entity.Draft, error)
	Save(ctx context.Context, draft *entity.Draft) error
	Clear(ctx context.Context) error
}
