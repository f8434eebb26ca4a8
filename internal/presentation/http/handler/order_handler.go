package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elitesports/pos-api/internal/application/service"
	"github.com/elitesports/pos-api/internal/domain/repository"
	"github.com/elitesports/pos-api/internal/presentation/http/dto/response"
	"github.com/elitesports/pos-api/pkg/pagination"
)

// OrderHandler handles order history and reporting HTTP requests
type OrderHandler struct {
	saleService   *service.SaleService
	reportService *service.ReportService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(saleService *service.SaleService, reportService *service.ReportService) *OrderHandler {
	return &OrderHandler{
		saleService:   saleService,
		reportService: reportService,
	}
}

// List handles listing the sales history, most recent first
func (h *OrderHandler) List(c *gin.Context) {
	params := &repository.OrderFilterParams{
		Pagination:    &pagination.PaginationParams{},
		CustomerPhone: c.Query("customer_phone"),
	}
	if page := c.Query("page"); page != "" {
		params.Pagination.Page, _ = strconv.Atoi(page)
	}
	if perPage := c.Query("per_page"); perPage != "" {
		params.Pagination.PerPage, _ = strconv.Atoi(perPage)
	}
	params.Pagination.Validate()

	if start := c.Query("start_date"); start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &t
	}
	if end := c.Query("end_date"); end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		params.EndDate = &t
	}

	orders, total, err := h.saleService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", pagination.NewPaginatedResult(orders, pag))
}

// Get handles retrieving a single order by its number
func (h *OrderHandler) Get(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		response.BadRequest(c, "Invalid order number")
		return
	}

	order, err := h.saleService.GetOrder(c.Request.Context(), number)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// SalesSummary handles the headline reporting figures
func (h *OrderHandler) SalesSummary(c *gin.Context) {
	summary, err := h.reportService.GetSalesSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales summary retrieved successfully", summary)
}

// DailySales handles per-day revenue and profit for the last N days
func (h *OrderHandler) DailySales(c *gin.Context) {
	days := 7
	if d := c.Query("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil {
			response.BadRequest(c, "Invalid days")
			return
		}
		days = parsed
	}

	points, err := h.reportService.GetDailySales(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales retrieved successfully", points)
}

// TopItems handles the best selling items report
func (h *OrderHandler) TopItems(c *gin.Context) {
	limit := 5
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil {
			response.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	items, err := h.reportService.GetTopItems(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top items retrieved successfully", items)
}
