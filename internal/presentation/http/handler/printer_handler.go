package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elitesports/pos-api/internal/application/service"
	"github.com/elitesports/pos-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printing HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// PrintReceipt prints the receipt for an order number
func (h *PrinterHandler) PrintReceipt(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		response.BadRequest(c, "Invalid order number")
		return
	}

	if err := h.printerService.PrintReceipt(c.Request.Context(), number); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}

// Status reports whether the configured printer is reachable
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved", gin.H{
		"connected": h.printerService.IsPrinterConnected(),
	})
}
