package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/nyamari/meatpos-api/internal/domain/entity"
	"github.com/nyamari/meatpos-api/internal/domain/repository"
	"github.com/nyamari/meatpos-api/pkg/apperror"
	"github.com/nyamari/meatpos-api/pkg/printer"
	"github.com/nyamari/meatpos-api/pkg/receipt"
)

// ReceiptService renders sale receipts and drives the thermal printer. The
// receipt is composed fresh from the stored invoice and current store
// settings on every call.
type ReceiptService struct {
	invoiceRepo  repository.InvoiceRepository
	settingsRepo repository.SettingsRepository
	printer      printer.Printer
	printerType  string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	invoiceRepo repository.InvoiceRepository,
	settingsRepo repository.SettingsRepository,
	p printer.Printer,
	printerType string,
) *ReceiptService {
	return &ReceiptService{
		invoiceRepo:  invoiceRepo,
		settingsRepo: settingsRepo,
		printer:      p,
		printerType:  printerType,
	}
}

// BuildReceipt composes the printable receipt for an invoice
func (s *ReceiptService) BuildReceipt(ctx context.Context, invoiceID uuid.UUID) (*entity.Receipt, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultStoreSettings()
	}

	customer := "Walk-in Customer"
	if invoice.CustomerName != nil && *invoice.CustomerName != "" {
		customer = *invoice.CustomerName
	}
	phone := "N/A"
	if invoice.CustomerPhone != nil && *invoice.CustomerPhone != "" {
		phone = *invoice.CustomerPhone
	}

	r := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: settings.StoreName,
			Tagline:   settings.ReceiptHeader,
			Address:   settings.Address,
			Phone:     settings.Phone,
		},
		InvoiceNumber: invoice.InvoiceNumber,
		Date:          invoice.CreatedAt.Format("2006-01-02 15:04:05"),
		Customer:      customer,
		Phone:         phone,
		PaymentMethod: invoice.PaymentMethod.Title(),
		Total:         invoice.TotalAmount,
		Footer:        settings.ReceiptFooter,
	}

	for _, item := range invoice.Items {
		r.Items = append(r.Items, entity.ReceiptItem{
			Name:       item.ProductName,
			WeightKg:   item.WeightKg,
			PricePerKg: item.PricePerKg,
			Total:      item.TotalPrice,
		})
	}

	return r, nil
}

// GetReceiptText returns the plain-text rendering of an invoice's receipt
func (s *ReceiptService) GetReceiptText(ctx context.Context, invoiceID uuid.UUID) (string, error) {
	r, err := s.BuildReceipt(ctx, invoiceID)
	if err != nil {
		return "", err
	}
	return receipt.RenderText(r), nil
}

// GetReceiptPDF returns the PDF rendering of an invoice's receipt
func (s *ReceiptService) GetReceiptPDF(ctx context.Context, invoiceID uuid.UUID) ([]byte, string, error) {
	r, err := s.BuildReceipt(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	data, err := receipt.RenderPDF(r)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("invoice_%s.pdf", r.InvoiceNumber), nil
}

// PrintReceipt sends an invoice's receipt to the thermal printer. The built
// receipt is returned either way so the handler can show it when no printer
// is configured.
func (s *ReceiptService) PrintReceipt(ctx context.Context, invoiceID uuid.UUID) (*entity.Receipt, error) {
	r, err := s.BuildReceipt(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	data := receipt.RenderESCPOS(r)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (invoice %s): %v", invoiceID, err)
		return r, fmt.Errorf("failed to print receipt: %w", err)
	}
	return r, nil
}

// PrinterStatus reports the configured printer and whether it is reachable
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status
func (s *ReceiptService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}
