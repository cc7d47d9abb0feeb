package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/nyamari/meatpos-api/internal/domain/repository"
	"github.com/nyamari/meatpos-api/pkg/apperror"
	"github.com/xuri/excelize/v2"
)

const defaultTopProductsLimit = 10

// ReportService answers sales questions by aggregating persisted invoices.
// Nothing is cached or pre-aggregated; every call recomputes from the rows.
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// SummaryReport is the sales summary for a range, including the revenue
// averaged across the days the range spans.
type SummaryReport struct {
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	InvoiceCount int64     `json:"invoice_count"`
	TotalRevenue float64   `json:"total_revenue"`
	AverageSale  float64   `json:"average_sale"`
	DailyAverage float64   `json:"daily_average"`
}

// Summary aggregates invoices over [from, to)
func (s *ReportService) Summary(ctx context.Context, from, to time.Time) (*SummaryReport, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	summary, err := s.reportRepo.Summary(ctx, from, to)
	if err != nil {
		return nil, err
	}

	days := to.Sub(from).Hours() / 24
	if days < 1 {
		days = 1
	}

	return &SummaryReport{
		From:         from,
		To:           to,
		InvoiceCount: summary.InvoiceCount,
		TotalRevenue: summary.TotalRevenue,
		AverageSale:  summary.AverageInvoice,
		DailyAverage: summary.TotalRevenue / days,
	}, nil
}

// DailySales returns one row per day in [from, to), including zero days
func (s *ReportService) DailySales(ctx context.Context, from, to time.Time) ([]repository.DailySalesRow, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.reportRepo.DailySales(ctx, from, to)
}

// TopProducts ranks products by total weight sold over [from, to)
func (s *ReportService) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]repository.TopProductRow, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = defaultTopProductsLimit
	}
	return s.reportRepo.TopProducts(ctx, from, to, limit)
}

// PaymentBreakdown groups invoices by payment method over [from, to)
func (s *ReportService) PaymentBreakdown(ctx context.Context, from, to time.Time) ([]repository.PaymentMethodRow, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.reportRepo.PaymentBreakdown(ctx, from, to)
}

// HourlySales groups invoices by hour of day over [from, to)
func (s *ReportService) HourlySales(ctx context.Context, from, to time.Time) ([]repository.HourlySalesRow, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.reportRepo.HourlySales(ctx, from, to)
}

// ExportXLSX builds a spreadsheet with the summary, daily sales, top
// products, payment breakdown, and the flat invoice list for [from, to)
func (s *ReportService) ExportXLSX(ctx context.Context, from, to time.Time) ([]byte, error) {
	summary, err := s.Summary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	daily, err := s.reportRepo.DailySales(ctx, from, to)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.reportRepo.TopProducts(ctx, from, to, defaultTopProductsLimit)
	if err != nil {
		return nil, err
	}
	payments, err := s.reportRepo.PaymentBreakdown(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sales, err := s.reportRepo.SalesList(ctx, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	f.SetSheetName("Sheet1", summarySheet)
	summaryRows := [][]interface{}{
		{"From", summary.From.Format("2006-01-02")},
		{"To", summary.To.Format("2006-01-02")},
		{"Invoices", summary.InvoiceCount},
		{"Total Revenue", summary.TotalRevenue},
		{"Average Sale", summary.AverageSale},
		{"Daily Average", summary.DailyAverage},
	}
	for i, row := range summaryRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const dailySheet = "Daily Sales"
	if _, err := f.NewSheet(dailySheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(dailySheet, "A1", &[]interface{}{"Date", "Invoices", "Revenue"}); err != nil {
		return nil, err
	}
	for i, row := range daily {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{row.Date.Format("2006-01-02"), row.InvoiceCount, row.Revenue}
		if err := f.SetSheetRow(dailySheet, cell, &values); err != nil {
			return nil, err
		}
	}

	const productsSheet = "Top Products"
	if _, err := f.NewSheet(productsSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(productsSheet, "A1", &[]interface{}{"Product", "Weight (kg)", "Times Sold", "Revenue"}); err != nil {
		return nil, err
	}
	for i, row := range topProducts {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{row.ProductName, row.TotalWeight, row.TimesSold, row.Revenue}
		if err := f.SetSheetRow(productsSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	const paymentsSheet = "Payment Methods"
	if _, err := f.NewSheet(paymentsSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(paymentsSheet, "A1", &[]interface{}{"Method", "Invoices", "Revenue"}); err != nil {
		return nil, err
	}
	for i, row := range payments {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{row.PaymentMethod, row.InvoiceCount, row.Revenue}
		if err := f.SetSheetRow(paymentsSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	const salesSheet = "Sales"
	if _, err := f.NewSheet(salesSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(salesSheet, "A1", &[]interface{}{"Invoice", "Date", "Customer", "Payment", "Total"}); err != nil {
		return nil, err
	}
	for i, row := range sales {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{row.InvoiceNumber, row.CreatedAt.Format("2006-01-02 15:04:05"), row.CustomerName, row.PaymentMethod, row.TotalAmount}
		if err := f.SetSheetRow(salesSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename suggests a download name for an export over [from, to)
func (s *ReportService) ExportFilename(from, to time.Time) string {
	return fmt.Sprintf("sales_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"))
}

func validateRange(from, to time.Time) error {
	if !to.After(from) {
		return apperror.NewBadRequestError("Invalid date range")
	}
	return nil
}
