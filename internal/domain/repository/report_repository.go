package repository

import "context"

// SalesTotals holds the raw aggregates over the whole order history.
// Amounts are in cents; derived figures (average order value) are computed
// by the reporting service.
type SalesTotals struct {
	Revenue    int64
	Profit     int64
	OrderCount int64
}

// DailySalesPoint is revenue and profit for one calendar day, in cents
type DailySalesPoint struct {
	Date    string
	Revenue int64
	Profit  int64
}

// TopItem is a sold line aggregated by product name
type TopItem struct {
	Name     string
	Quantity int64
	Revenue  int64
}

// ReportRepository computes reporting aggregates. Nothing is cached:
// every call re-derives its result from the order history.
type ReportRepository interface {
	SalesTotals(ctx context.Context) (*SalesTotals, error)
	DailySales(ctx context.Context, days int) ([]DailySalesPoint, error)
	TopItems(ctx context.Context, limit int) ([]TopItem, error)
}
