package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/elitesports/pos-api/internal/domain/entity"
	domainRepo "github.com/elitesports/pos-api/internal/domain/repository"
)

type uploadBatchRepository struct {
	db *gorm.DB
}

// NewUploadBatchRepository creates a new upload batch repository
func NewUploadBatchRepository(db *gorm.DB) domainRepo.UploadBatchRepository {
	return &uploadBatchRepository{db: db}
}

// Create persists a batch together with its recorded changes
func (r *uploadBatchRepository) Create(ctx context.Context, batch *entity.UploadBatch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

func (r *uploadBatchRepository) GetByUploadID(ctx context.Context, uploadID string) (*entity.UploadBatch, error) {
	var batch entity.UploadBatch
	err := r.db.WithContext(ctx).
		Preload("Changes").
		First(&batch, "upload_id = ?", uploadID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &batch, err
}

func (r *uploadBatchRepository) GetByFileHash(ctx context.Context, hash string) (*entity.UploadBatch, error) {
	var batch entity.UploadBatch
	err := r.db.WithContext(ctx).First(&batch, "file_hash = ?", hash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &batch, err
}

func (r *uploadBatchRepository) List(ctx context.Context) ([]entity.UploadBatch, error) {
	var batches []entity.UploadBatch
	err := r.db.WithContext(ctx).
		Preload("Changes").
		Order("uploaded_at DESC").
		Find(&batches).Error
	return batches, err
}

func (r *uploadBatchRepository) MarkRolledBack(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.UploadBatch{}).
		Where("id = ?", id).
		Update("rolled_back", true).Error
}
