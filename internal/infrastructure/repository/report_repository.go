package repository

import (
	"context"
	"time"

	"github.com/nyamari/meatpos-api/internal/domain/entity"
	domainRepo "github.com/nyamari/meatpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Summary(ctx context.Context, from, to time.Time) (*domainRepo.SalesSummary, error) {
	var row struct {
		InvoiceCount int64
		TotalRevenue float64
	}
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("COUNT(*) as invoice_count, COALESCE(SUM(total_amount), 0) as total_revenue").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	summary := &domainRepo.SalesSummary{
		InvoiceCount: row.InvoiceCount,
		TotalRevenue: row.TotalRevenue,
	}
	if row.InvoiceCount > 0 {
		summary.AverageInvoice = row.TotalRevenue / float64(row.InvoiceCount)
	}
	return summary, nil
}

// DailySales runs one range query per day in the window. Dozens of cheap
// indexed queries at single-shop scale, and it keeps the SQL portable across
// sqlite and postgres.
func (r *reportRepository) DailySales(ctx context.Context, from, to time.Time) ([]domainRepo.DailySalesRow, error) {
	var rows []domainRepo.DailySalesRow

	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)
		if next.After(to) {
			next = to
		}

		var row struct {
			InvoiceCount int64
			Revenue      float64
		}
		err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
			Select("COUNT(*) as invoice_count, COALESCE(SUM(total_amount), 0) as revenue").
			Where("created_at >= ? AND created_at < ?", day, next).
			Scan(&row).Error
		if err != nil {
			return nil, err
		}

		rows = append(rows, domainRepo.DailySalesRow{
			Date:         day,
			InvoiceCount: row.InvoiceCount,
			Revenue:      row.Revenue,
		})
	}

	return rows, nil
}

func (r *reportRepository) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]domainRepo.TopProductRow, error) {
	var rows []domainRepo.TopProductRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT ii.product_name as product_name,
		       COALESCE(SUM(ii.weight_kg), 0) as total_weight,
		       COUNT(ii.id) as times_sold,
		       COALESCE(SUM(ii.total_price), 0) as revenue
		FROM invoice_items ii
		JOIN invoices i ON i.id = ii.invoice_id
		WHERE i.created_at >= ? AND i.created_at < ?
		GROUP BY ii.product_name
		ORDER BY total_weight DESC
		LIMIT ?
	`, from, to, limit).Scan(&rows).Error

	return rows, err
}

func (r *reportRepository) PaymentBreakdown(ctx context.Context, from, to time.Time) ([]domainRepo.PaymentMethodRow, error) {
	var rows []domainRepo.PaymentMethodRow

	err := r.db.WithContext(ctx).Raw(`
		SELECT payment_method as payment_method,
		       COUNT(*) as invoice_count,
		       COALESCE(SUM(total_amount), 0) as revenue
		FROM invoices
		WHERE created_at >= ? AND created_at < ?
		GROUP BY payment_method
		ORDER BY revenue DESC
	`, from, to).Scan(&rows).Error

	return rows, err
}

// HourlySales buckets in Go rather than SQL: hour extraction syntax differs
// between sqlite (strftime) and postgres (EXTRACT), and the row counts at
// shop scale make the scan negligible.
func (r *reportRepository) HourlySales(ctx context.Context, from, to time.Time) ([]domainRepo.HourlySalesRow, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Select("created_at", "total_amount").
		Where("created_at >= ? AND created_at < ?", from, to).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	var buckets [24]domainRepo.HourlySalesRow
	for h := range buckets {
		buckets[h].Hour = h
	}
	for _, inv := range invoices {
		h := inv.CreatedAt.Hour()
		buckets[h].InvoiceCount++
		buckets[h].Revenue += inv.TotalAmount
	}

	rows := make([]domainRepo.HourlySalesRow, 0, 24)
	for _, b := range buckets {
		if b.InvoiceCount > 0 {
			rows = append(rows, b)
		}
	}
	return rows, nil
}

func (r *reportRepository) SalesList(ctx context.Context, from, to time.Time) ([]domainRepo.SalesListRow, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}

	rows := make([]domainRepo.SalesListRow, 0, len(invoices))
	for _, inv := range invoices {
		row := domainRepo.SalesListRow{
			InvoiceNumber: inv.InvoiceNumber,
			CreatedAt:     inv.CreatedAt,
			PaymentMethod: inv.PaymentMethod.Title(),
			TotalAmount:   inv.TotalAmount,
		}
		if inv.CustomerName != nil {
			row.CustomerName = *inv.CustomerName
		}
		rows = append(rows, row)
	}
	return rows, nil
}
