package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/elitesports/pos-api/internal/domain/entity"
	domainRepo "github.com/elitesports/pos-api/internal/domain/repository"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// SalesTotals re-derives the whole-history aggregates on every call
func (r *reportRepository) SalesTotals(ctx context.Context) (*domainRepo.SalesTotals, error) {
	var totals struct {
		Revenue    int64
		Profit     int64
		OrderCount int64
	}

	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("COALESCE(SUM(total), 0) AS revenue, COALESCE(SUM(profit), 0) AS profit, COUNT(*) AS order_count").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	return &domainRepo.SalesTotals{
		Revenue:    totals.Revenue,
		Profit:     totals.Profit,
		OrderCount: totals.OrderCount,
	}, nil
}

func (r *reportRepository) DailySales(ctx context.Context, days int) ([]domainRepo.DailySalesPoint, error) {
	var rows []struct {
		Date    time.Time
		Revenue int64
		Profit  int64
	}

	since := time.Now().AddDate(0, 0, -days)

	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("order_date AS date, COALESCE(SUM(total), 0) AS revenue, COALESCE(SUM(profit), 0) AS profit").
		Where("order_date >= ?", since).
		Group("order_date").
		Order("order_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	points := make([]domainRepo.DailySalesPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, domainRepo.DailySalesPoint{
			Date:    row.Date.Format("2006-01-02"),
			Revenue: row.Revenue,
			Profit:  row.Profit,
		})
	}
	return points, nil
}

func (r *reportRepository) TopItems(ctx context.Context, limit int) ([]domainRepo.TopItem, error) {
	if limit <= 0 {
		limit = 5
	}

	var rows []struct {
		Name     string
		Quantity int64
		Revenue  int64
	}

	err := r.db.WithContext(ctx).Model(&entity.OrderItem{}).
		Select("name, COALESCE(SUM(qty), 0) AS quantity, COALESCE(SUM(price), 0) AS revenue").
		Group("name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]domainRepo.TopItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domainRepo.TopItem{
			Name:     row.Name,
			Quantity: row.Quantity,
			Revenue:  row.Revenue,
		})
	}
	return items, nil
}
