package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadBatch tracks one bulk product import so it can be reversed later.
// FileHash is the SHA-256 of the uploaded file and guards against the same
// sheet being imported twice.
type UploadBatch struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UploadID   string     `gorm:"size:100;uniqueIndex;not null" json:"upload_id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	FileName   string     `gorm:"size:255;not null" json:"file_name"`
	FileHash   string     `gorm:"size:64;uniqueIndex;not null" json:"file_hash"`
	RolledBack bool       `gorm:"default:false" json:"rolled_back"`
	UploadedAt time.Time  `gorm:"not null" json:"uploaded_at"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`

	// Relationships
	User    User           `gorm:"foreignKey:UserID" json:"-"`
	Changes []UploadChange `gorm:"foreignKey:BatchID" json:"changes,omitempty"`
}

// BeforeCreate generates a UUID before creating a new upload batch
func (b *UploadBatch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UploadBatch model
func (UploadBatch) TableName() string {
	return "upload_batches"
}

// Upload change actions
const (
	UploadActionCreate = "create" // Product was created by the batch
	UploadActionUpdate = "update" // An existing quantity was changed
)

// UploadChange records a single mutation applied by a batch. Create rows
// are undone by deleting the product; update rows restore OldQuantity.
type UploadChange struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BatchID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Action      string    `gorm:"size:20;not null" json:"action"`
	Size        string    `gorm:"size:50" json:"size,omitempty"`
	OldQuantity int       `gorm:"default:0" json:"old_quantity"`
	NewQuantity int       `gorm:"default:0" json:"new_quantity"`
	CreatedAt   time.Time `json:"-"`

	// Relationships
	Batch UploadBatch `gorm:"foreignKey:BatchID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new upload change
func (c *UploadChange) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UploadChange model
func (UploadChange) TableName() string {
	return "upload_changes"
}
