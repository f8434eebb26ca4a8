package service

import (
	"context"
	"encoding/json"

	"github.com/elitesports/pos-api/internal/domain/repository"
)

// ReportService derives reporting figures from the order history. Nothing
// is stored: every summary is recomputed from the orders table on demand.
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// SalesSummary is the headline reporting block. Monetary amounts are in
// cents and serialize as decimal strings like the rest of the API.
type SalesSummary struct {
	TotalRevenue int64 `json:"-"`
	TotalProfit  int64 `json:"-"`
	OrderCount   int64 `json:"order_count"`
	AverageOrder int64 `json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s SalesSummary) MarshalJSON() ([]byte, error) {
	type Alias SalesSummary
	return json.Marshal(&struct {
		Alias
		TotalRevenue float64 `json:"total_revenue"`
		TotalProfit  float64 `json:"total_profit"`
		AverageOrder float64 `json:"average_order"`
	}{
		Alias:        Alias(s),
		TotalRevenue: float64(s.TotalRevenue) / 100,
		TotalProfit:  float64(s.TotalProfit) / 100,
		AverageOrder: float64(s.AverageOrder) / 100,
	})
}

// GetSalesSummary computes revenue, profit, order count and average order
// value over the whole history. An empty history yields all zeros, the
// average included.
func (s *ReportService) GetSalesSummary(ctx context.Context) (*SalesSummary, error) {
	totals, err := s.reportRepo.SalesTotals(ctx)
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{
		TotalRevenue: totals.Revenue,
		TotalProfit:  totals.Profit,
		OrderCount:   totals.OrderCount,
	}
	if totals.OrderCount > 0 {
		summary.AverageOrder = totals.Revenue / totals.OrderCount
	}
	return summary, nil
}

// GetDailySales returns per-day revenue and profit for the last N days
func (s *ReportService) GetDailySales(ctx context.Context, days int) ([]repository.DailySalesPoint, error) {
	if days <= 0 {
		days = 7
	}
	return s.reportRepo.DailySales(ctx, days)
}

// GetTopItems returns the best selling items by quantity
func (s *ReportService) GetTopItems(ctx context.Context, limit int) ([]repository.TopItem, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.reportRepo.TopItems(ctx, limit)
}
