package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitesports/pos-api/internal/domain/repository"
	"github.com/elitesports/pos-api/pkg/apperror"
	"github.com/elitesports/pos-api/pkg/pagination"
)

func strPtr(s string) *string { return &s }

func TestCreateProduct(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:           "Cricket Bat",
		Category:       "Bats",
		WholesalePrice: 800,
		RetailPrice:    1200,
		Quantity:       10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(80000), product.WholesalePrice)
	assert.Equal(t, int64(120000), product.RetailPrice)
	assert.Equal(t, 10, product.Quantity)
}

func TestCreateProductSizesSumIntoQuantity(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	product, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:        "Running Shoes",
		Category:    "Footwear",
		RetailPrice: 900,
		Quantity:    99, // Ignored when sizes are given
		Sizes: []ProductSizeInput{
			{Size: "8", Quantity: 3},
			{Size: "9", Quantity: 5},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 8, product.Quantity)
	assert.Len(t, product.Sizes, 2)
}

func TestCreateProductNameConflict(t *testing.T) {
	existing := newServiceTestProduct("Cricket Bat", 80000, 120000, 10)
	svc := NewProductService(newFakeProductRepo(existing))

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:     "Cricket Bat",
		Category: "Bats",
	})

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateProductBarcodeConflict(t *testing.T) {
	existing := newServiceTestProduct("Cricket Bat", 80000, 120000, 10)
	existing.Barcode = strPtr("CB-001")
	svc := NewProductService(newFakeProductRepo(existing))

	_, err := svc.CreateProduct(context.Background(), &CreateProductInput{
		Name:     "Another Bat",
		Category: "Bats",
		Barcode:  strPtr("CB-001"),
	})

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateProductPatchesOnlyGivenFields(t *testing.T) {
	existing := newServiceTestProduct("Cricket Bat", 80000, 120000, 10)
	svc := NewProductService(newFakeProductRepo(existing))
	newPrice := 1500.0

	product, err := svc.UpdateProduct(context.Background(), existing.ID, &UpdateProductInput{
		RetailPrice: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(150000), product.RetailPrice)
	assert.Equal(t, "Cricket Bat", product.Name)
	assert.Equal(t, int64(80000), product.WholesalePrice)
	assert.Equal(t, 10, product.Quantity)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	_, err := svc.UpdateProduct(context.Background(), uuid.New(), &UpdateProductInput{})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListProductsFiltersAndPaginates(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(
		newServiceTestProduct("Cricket Bat", 80000, 120000, 10),
		newServiceTestProduct("Football", 40000, 65000, 0),
	))

	result, err := svc.ListProducts(context.Background(), &repository.ProductFilterParams{
		Pagination: pagination.DefaultPagination(),
		InStock:    true,
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Cricket Bat", result.Items[0].Name)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestDeleteProductNotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	err := svc.DeleteProduct(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
