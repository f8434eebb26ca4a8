package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitesports/pos-api/internal/domain/repository"
)

func TestSalesSummaryEmptyHistory(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{})

	summary, err := svc.GetSalesSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalRevenue)
	assert.Equal(t, int64(0), summary.TotalProfit)
	assert.Equal(t, int64(0), summary.OrderCount)
	// No division by zero: an empty history reports a zero average
	assert.Equal(t, int64(0), summary.AverageOrder)
}

func TestSalesSummaryAverage(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{
		totals: repository.SalesTotals{
			Revenue:    66000,
			Profit:     23000,
			OrderCount: 3,
		},
	})

	summary, err := svc.GetSalesSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(66000), summary.TotalRevenue)
	assert.Equal(t, int64(22000), summary.AverageOrder)
}

func TestSalesSummaryJSONEmitsDecimals(t *testing.T) {
	summary := &SalesSummary{
		TotalRevenue: 66000,
		TotalProfit:  23000,
		OrderCount:   3,
		AverageOrder: 22000,
	}

	data, err := json.Marshal(summary)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 660.0, out["total_revenue"])
	assert.Equal(t, 230.0, out["total_profit"])
	assert.Equal(t, 220.0, out["average_order"])
	assert.Equal(t, 3.0, out["order_count"])
}

func TestTopItemsLimit(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{
		top: []repository.TopItem{
			{Name: "Cricket Bat", Quantity: 10, Revenue: 1200000},
			{Name: "Football", Quantity: 8, Revenue: 520000},
			{Name: "Basketball", Quantity: 5, Revenue: 475000},
		},
	})

	items, err := svc.GetTopItems(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Cricket Bat", items[0].Name)
}
