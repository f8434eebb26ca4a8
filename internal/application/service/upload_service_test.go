package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/pkg/apperror"
)

func buildSheet(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []interface{}{"Name", "Category", "Wholesale Price", "Retail Price", "Size", "Quantity", "Brand", "Barcode"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestProcessUploadCreatesProducts(t *testing.T) {
	productRepo := newFakeProductRepo()
	svc := NewUploadService(productRepo, &fakeUploadRepo{})
	ctx := context.Background()

	data := buildSheet(t, [][]interface{}{
		{"Cricket Bat", "Bats", 800, 1200, "", 10, "Kookaburra", "CB-001"},
		{"Running Shoes", "Footwear", 500, 900, "9", 4, "", ""},
	})

	batch, err := svc.ProcessUpload(ctx, uuid.New(), "catalog.xlsx", data)

	require.NoError(t, err)
	require.Len(t, batch.Changes, 2)
	assert.Equal(t, entity.UploadActionCreate, batch.Changes[0].Action)

	bat, err := productRepo.GetByName(ctx, "Cricket Bat")
	require.NoError(t, err)
	require.NotNil(t, bat)
	assert.Equal(t, int64(80000), bat.WholesalePrice)
	assert.Equal(t, int64(120000), bat.RetailPrice)
	assert.Equal(t, 10, bat.Quantity)
	require.NotNil(t, bat.Barcode)
	assert.Equal(t, "CB-001", *bat.Barcode)

	shoes, err := productRepo.GetByName(ctx, "Running Shoes")
	require.NoError(t, err)
	require.NotNil(t, shoes)
	require.Len(t, shoes.Sizes, 1)
	assert.Equal(t, "9", shoes.Sizes[0].Size)
	assert.Equal(t, 4, shoes.Sizes[0].Quantity)
}

func TestProcessUploadUpdatesExisting(t *testing.T) {
	existing := newServiceTestProduct("Football", 40000, 65000, 15)
	productRepo := newFakeProductRepo(existing)
	svc := NewUploadService(productRepo, &fakeUploadRepo{})
	ctx := context.Background()

	data := buildSheet(t, [][]interface{}{
		{"Football", "Balls", 400, 650, "", 30, "", ""},
	})

	batch, err := svc.ProcessUpload(ctx, uuid.New(), "restock.xlsx", data)

	require.NoError(t, err)
	require.Len(t, batch.Changes, 1)
	change := batch.Changes[0]
	assert.Equal(t, entity.UploadActionUpdate, change.Action)
	assert.Equal(t, 15, change.OldQuantity)
	assert.Equal(t, 30, change.NewQuantity)

	updated, err := productRepo.GetByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Quantity)
}

func TestProcessUploadRejectsDuplicateFile(t *testing.T) {
	svc := NewUploadService(newFakeProductRepo(), &fakeUploadRepo{})
	ctx := context.Background()

	data := buildSheet(t, [][]interface{}{
		{"Cricket Bat", "Bats", 800, 1200, "", 10, "", ""},
	})

	_, err := svc.ProcessUpload(ctx, uuid.New(), "catalog.xlsx", data)
	require.NoError(t, err)

	_, err = svc.ProcessUpload(ctx, uuid.New(), "catalog-again.xlsx", data)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestProcessUploadBadRowFailsWithRowNumber(t *testing.T) {
	svc := NewUploadService(newFakeProductRepo(), &fakeUploadRepo{})

	data := buildSheet(t, [][]interface{}{
		{"Cricket Bat", "Bats", 800, 1200, "", "not-a-number", "", ""},
	})

	_, err := svc.ProcessUpload(context.Background(), uuid.New(), "bad.xlsx", data)

	require.Error(t, err)
	assert.Contains(t, apperror.GetAppError(err).Message, "Row 2")
}

func TestRollbackUpload(t *testing.T) {
	existing := newServiceTestProduct("Football", 40000, 65000, 15)
	productRepo := newFakeProductRepo(existing)
	svc := NewUploadService(productRepo, &fakeUploadRepo{})
	ctx := context.Background()

	data := buildSheet(t, [][]interface{}{
		{"Football", "Balls", 400, 650, "", 30, "", ""},
		{"Hockey Stick", "Sticks", 900, 1400, "", 6, "", ""},
	})

	batch, err := svc.ProcessUpload(ctx, uuid.New(), "restock.xlsx", data)
	require.NoError(t, err)

	rolled, err := svc.RollbackUpload(ctx, batch.UploadID)
	require.NoError(t, err)
	assert.True(t, rolled.RolledBack)

	// The update is restored and the created product is gone
	football, err := productRepo.GetByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, football.Quantity)

	stick, err := productRepo.GetByName(ctx, "Hockey Stick")
	require.NoError(t, err)
	assert.Nil(t, stick)

	// Rolling back twice is a conflict
	_, err = svc.RollbackUpload(ctx, batch.UploadID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestRollbackUnknownUpload(t *testing.T) {
	svc := NewUploadService(newFakeProductRepo(), &fakeUploadRepo{})

	_, err := svc.RollbackUpload(context.Background(), "UPL-MISSING")

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
