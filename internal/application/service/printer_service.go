package service

import (
	"context"
	"fmt"

	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/internal/domain/repository"
	"github.com/elitesports/pos-api/pkg/apperror"
	"github.com/elitesports/pos-api/pkg/printer"
)

// ReceiptWidth is the character width of the thermal paper (58mm)
const ReceiptWidth = 32

// PrinterService renders orders as ESC/POS receipts and sends them to the
// configured thermal printer
type PrinterService struct {
	printer   printer.Printer
	orderRepo repository.OrderRepository
	storeName string
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, orderRepo repository.OrderRepository, storeName string) *PrinterService {
	return &PrinterService{
		printer:   p,
		orderRepo: orderRepo,
		storeName: storeName,
	}
}

// PrintReceipt renders and prints the receipt for an order number
func (s *PrinterService) PrintReceipt(ctx context.Context, number int) error {
	order, err := s.orderRepo.GetByNumber(ctx, number)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	return s.printer.Print(s.renderReceipt(order))
}

// IsPrinterConnected reports whether the configured printer is reachable
func (s *PrinterService) IsPrinterConnected() bool {
	return s.printer.IsConnected()
}

// renderReceipt builds the ESC/POS byte stream for one order
func (s *PrinterService) renderReceipt(order *entity.Order) []byte {
	doc := printer.NewDocument(ReceiptWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(s.storeName).
		SetFontSize(printer.FontNormal).
		SetBold(false).
		FeedLines(1)

	doc.SetAlign(printer.AlignLeft).
		KeyValue("Order", fmt.Sprintf("#%d", order.Number)).
		KeyValue("Date", order.OrderDate.Format("2006-01-02"))
	if order.CustomerPhone != nil && *order.CustomerPhone != "" {
		doc.KeyValue("Customer", *order.CustomerPhone)
	}

	doc.Separator('-')
	for _, item := range order.Items {
		doc.ItemLine(item.Qty, item.Name, formatCents(item.Price))
	}
	doc.Separator('-')

	doc.SetBold(true).
		KeyValue("TOTAL", formatCents(order.Total)).
		SetBold(false).
		FeedLines(1)

	doc.SetAlign(printer.AlignCenter).
		Text("Thank you for shopping!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

// formatCents renders a cent amount as a money string, e.g. "Rs 130.00"
func formatCents(cents int64) string {
	return fmt.Sprintf("Rs %.2f", float64(cents)/100)
}
