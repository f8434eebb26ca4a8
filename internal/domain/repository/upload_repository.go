package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/domain/entity"
)

// UploadBatchRepository defines the interface for bulk import tracking
type UploadBatchRepository interface {
	// Create persists a batch together with its recorded changes
	Create(ctx context.Context, batch *entity.UploadBatch) error
	GetByUploadID(ctx context.Context, uploadID string) (*entity.UploadBatch, error)
	GetByFileHash(ctx context.Context, hash string) (*entity.UploadBatch, error)
	// List returns batches newest-first
	List(ctx context.Context) ([]entity.UploadBatch, error)
	MarkRolledBack(ctx context.Context, id uuid.UUID) error
}
