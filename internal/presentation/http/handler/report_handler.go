package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nyamari/meatpos-api/internal/application/service"
	"github.com/nyamari/meatpos-api/internal/presentation/http/dto/request"
	"github.com/nyamari/meatpos-api/internal/presentation/http/dto/response"
)

// ReportHandler handles sales reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseRange reads the from/to query dates. Dates are inclusive calendar
// days; the returned range is half-open, bounded by the day after "to".
// Both default to today.
func parseRange(c *gin.Context) (from, to time.Time, limit int, ok bool) {
	var req request.ReportRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return time.Time{}, time.Time{}, 0, false
	}

	today := time.Now().Truncate(24 * time.Hour)
	from, to = today, today

	if req.From != "" {
		parsed, err := time.Parse("2006-01-02", req.From)
		if err != nil {
			response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
			return time.Time{}, time.Time{}, 0, false
		}
		from = parsed
	}
	if req.To != "" {
		parsed, err := time.Parse("2006-01-02", req.To)
		if err != nil {
			response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
			return time.Time{}, time.Time{}, 0, false
		}
		to = parsed
	}

	return from, to.AddDate(0, 0, 1), req.Limit, true
}

// Summary handles the sales summary report
func (h *ReportHandler) Summary(c *gin.Context) {
	from, to, _, ok := parseRange(c)
	if !ok {
		return
	}

	summary, err := h.reportService.Summary(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales summary retrieved successfully", summary)
}

// DailySales handles the per-day sales report
func (h *ReportHandler) DailySales(c *gin.Context) {
	from, to, _, ok := parseRange(c)
	if !ok {
		return
	}

	rows, err := h.reportService.DailySales(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales retrieved successfully", rows)
}

// TopProducts handles the best-sellers report
func (h *ReportHandler) TopProducts(c *gin.Context) {
	from, to, limit, ok := parseRange(c)
	if !ok {
		return
	}

	rows, err := h.reportService.TopProducts(c.Request.Context(), from, to, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top products retrieved successfully", rows)
}

// PaymentBreakdown handles the payment method report
func (h *ReportHandler) PaymentBreakdown(c *gin.Context) {
	from, to, _, ok := parseRange(c)
	if !ok {
		return
	}

	rows, err := h.reportService.PaymentBreakdown(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment breakdown retrieved successfully", rows)
}

// HourlySales handles the hour-of-day sales report
func (h *ReportHandler) HourlySales(c *gin.Context) {
	from, to, _, ok := parseRange(c)
	if !ok {
		return
	}

	rows, err := h.reportService.HourlySales(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Hourly sales retrieved successfully", rows)
}

// Export handles the XLSX report download
func (h *ReportHandler) Export(c *gin.Context) {
	from, to, _, ok := parseRange(c)
	if !ok {
		return
	}

	data, err := h.reportService.ExportXLSX(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := h.reportService.ExportFilename(from, to)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
