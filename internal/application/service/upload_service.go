package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/internal/domain/repository"
	"github.com/elitesports/pos-api/pkg/apperror"
	"github.com/elitesports/pos-api/pkg/utils"
)

// Expected spreadsheet columns, in order
const (
	colName = iota
	colCategory
	colWholesalePrice
	colRetailPrice
	colSize
	colQuantity
	colBrand
	colBarcode
)

// UploadService handles bulk product imports from spreadsheets. Every
// mutation a batch applies is recorded so the whole import can be rolled
// back later; re-uploading a byte-identical file is rejected.
type UploadService struct {
	productRepo repository.ProductRepository
	uploadRepo  repository.UploadBatchRepository
}

// NewUploadService creates a new upload service
func NewUploadService(productRepo repository.ProductRepository, uploadRepo repository.UploadBatchRepository) *UploadService {
	return &UploadService{
		productRepo: productRepo,
		uploadRepo:  uploadRepo,
	}
}

// ProcessUpload imports an xlsx sheet of products. Rows are matched to
// existing products by barcode first, then by exact name; matched rows
// update quantities, unmatched rows create products. A bad row fails the
// whole import with its row number.
func (s *UploadService) ProcessUpload(ctx context.Context, userID uuid.UUID, fileName string, data []byte) (*entity.UploadBatch, error) {
	sum := sha256.Sum256(data)
	fileHash := hex.EncodeToString(sum[:])

	existing, err := s.uploadRepo.GetByFileHash(ctx, fileHash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateUpload
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperror.NewBadRequestError("Could not read spreadsheet: " + err.Error())
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperror.NewBadRequestError("Could not read spreadsheet rows: " + err.Error())
	}
	if len(rows) < 2 {
		return nil, apperror.NewBadRequestError("Spreadsheet has no data rows")
	}

	batch := &entity.UploadBatch{
		UploadID:   utils.GenerateUploadID(),
		UserID:     userID,
		FileName:   fileName,
		FileHash:   fileHash,
		UploadedAt: time.Now(),
	}

	// Skip the header row
	for i, row := range rows[1:] {
		rowNum := i + 2
		if isEmptyRow(row) {
			continue
		}

		change, err := s.applyRow(ctx, row, rowNum)
		if err != nil {
			return nil, err
		}
		batch.Changes = append(batch.Changes, *change)
	}

	if len(batch.Changes) == 0 {
		return nil, apperror.NewBadRequestError("Spreadsheet has no data rows")
	}

	if err := s.uploadRepo.Create(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// applyRow upserts one spreadsheet row and returns the recorded change
func (s *UploadService) applyRow(ctx context.Context, row []string, rowNum int) (*entity.UploadChange, error) {
	name := cell(row, colName)
	if name == "" {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Row %d: product name is required", rowNum))
	}

	quantity, err := strconv.Atoi(cell(row, colQuantity))
	if err != nil || quantity < 0 {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Row %d: invalid quantity", rowNum))
	}

	size := cell(row, colSize)
	barcode := cell(row, colBarcode)

	product, err := s.matchProduct(ctx, barcode, name)
	if err != nil {
		return nil, err
	}

	if product != nil {
		return s.updateQuantities(ctx, product, size, quantity)
	}

	wholesale, err := strconv.ParseFloat(cell(row, colWholesalePrice), 64)
	if err != nil {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Row %d: invalid wholesale price", rowNum))
	}
	retail, err := strconv.ParseFloat(cell(row, colRetailPrice), 64)
	if err != nil {
		return nil, apperror.NewBadRequestError(fmt.Sprintf("Row %d: invalid retail price", rowNum))
	}

	product = &entity.Product{
		Name:     name,
		Category: cell(row, colCategory),
		Quantity: quantity,
	}
	product.SetWholesalePriceFromDecimal(wholesale)
	product.SetRetailPriceFromDecimal(retail)
	if brand := cell(row, colBrand); brand != "" {
		product.Brand = &brand
	}
	if barcode != "" {
		product.Barcode = &barcode
	}
	if size != "" {
		product.Sizes = []entity.ProductSize{{Size: size, Quantity: quantity}}
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return &entity.UploadChange{
		ProductID:   product.ID,
		Action:      entity.UploadActionCreate,
		Size:        size,
		NewQuantity: quantity,
	}, nil
}

// updateQuantities sets the new stock level for a matched product, at size
// granularity when the row names a size
func (s *UploadService) updateQuantities(ctx context.Context, product *entity.Product, size string, quantity int) (*entity.UploadChange, error) {
	oldQuantity := product.Quantity

	if size != "" {
		found := false
		for i := range product.Sizes {
			if product.Sizes[i].Size == size {
				oldQuantity = product.Sizes[i].Quantity
				product.Sizes[i].Quantity = quantity
				found = true
				break
			}
		}
		if !found {
			oldQuantity = 0
			product.Sizes = append(product.Sizes, entity.ProductSize{
				ProductID: product.ID,
				Size:      size,
				Quantity:  quantity,
			})
		}
		total := 0
		for i := range product.Sizes {
			total += product.Sizes[i].Quantity
		}
		product.Quantity = total
	} else {
		product.Quantity = quantity
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return &entity.UploadChange{
		ProductID:   product.ID,
		Action:      entity.UploadActionUpdate,
		Size:        size,
		OldQuantity: oldQuantity,
		NewQuantity: quantity,
	}, nil
}

// matchProduct resolves a row to an existing product by barcode, then name
func (s *UploadService) matchProduct(ctx context.Context, barcode, name string) (*entity.Product, error) {
	if barcode != "" {
		product, err := s.productRepo.GetByBarcode(ctx, barcode)
		if err != nil || product != nil {
			return product, err
		}
	}
	return s.productRepo.GetByName(ctx, name)
}

// ListBatches returns upload batches, newest first
func (s *UploadService) ListBatches(ctx context.Context) ([]entity.UploadBatch, error) {
	return s.uploadRepo.List(ctx)
}

// RollbackUpload reverses a batch: created products are deleted and
// updated quantities are restored to their recorded old values
func (s *UploadService) RollbackUpload(ctx context.Context, uploadID string) (*entity.UploadBatch, error) {
	batch, err := s.uploadRepo.GetByUploadID(ctx, uploadID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, apperror.NewNotFoundError("Upload batch")
	}
	if batch.RolledBack {
		return nil, apperror.NewConflictError("Upload has already been rolled back")
	}

	// Undo in reverse order so repeated rows restore the earliest state last
	for i := len(batch.Changes) - 1; i >= 0; i-- {
		change := batch.Changes[i]
		switch change.Action {
		case entity.UploadActionCreate:
			if err := s.productRepo.Delete(ctx, change.ProductID); err != nil {
				return nil, err
			}
		case entity.UploadActionUpdate:
			if err := s.restoreQuantity(ctx, change); err != nil {
				return nil, err
			}
		}
	}

	if err := s.uploadRepo.MarkRolledBack(ctx, batch.ID); err != nil {
		return nil, err
	}
	batch.RolledBack = true
	return batch, nil
}

// restoreQuantity puts one recorded quantity change back
func (s *UploadService) restoreQuantity(ctx context.Context, change entity.UploadChange) error {
	product, err := s.productRepo.GetByID(ctx, change.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		// Product was deleted after the upload; nothing left to restore
		return nil
	}

	if change.Size != "" {
		for i := range product.Sizes {
			if product.Sizes[i].Size == change.Size {
				product.Sizes[i].Quantity = change.OldQuantity
				break
			}
		}
		total := 0
		for i := range product.Sizes {
			total += product.Sizes[i].Quantity
		}
		product.Quantity = total
	} else {
		product.Quantity = change.OldQuantity
	}

	return s.productRepo.Update(ctx, product)
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
