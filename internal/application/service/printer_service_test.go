package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/pkg/printer"
)

func TestRenderReceipt(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), &fakeOrderRepo{}, "Elite Sports")

	phone := "9876543210"
	order := &entity.Order{
		ID:            uuid.New(),
		Number:        101,
		OrderDate:     time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		CustomerPhone: &phone,
		Total:         130000,
		Profit:        50000,
		Items: []entity.OrderItem{
			{Name: "Football", Qty: 2, Price: 130000},
		},
	}

	out := string(svc.renderReceipt(order))

	assert.Contains(t, out, "Elite Sports")
	assert.Contains(t, out, "#101")
	assert.Contains(t, out, "2026-08-30")
	assert.Contains(t, out, "9876543210")
	assert.Contains(t, out, "2x Football")
	assert.Contains(t, out, "Rs 1300.00")
	assert.Contains(t, out, "TOTAL")
}
