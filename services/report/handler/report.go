package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/acmepay/transactions/services/report"
	"github.com/acmepay/transactions/services/report/usecase"
)

// ReportHandler handles HTTP requests for reporting queries.
type ReportHandler struct {
	reportUC report.ReportUseCase
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportUC report.ReportUseCase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// RegisterRoutes registers the reporting routes.
func (h *ReportHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/reports")
	g.GET("/payments/:user_id", h.PaymentsByUser)
	g.GET("/daily_totals/:user_id", h.DailyTotals)
}

// PaymentsByUser returns all payments sent or received by a user, optionally
// bounded by start_date/end_date (YYYY-MM-DD, both inclusive), as JSON or CSV.
func (h *ReportHandler) PaymentsByUser(c echo.Context) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	userID := c.Param("user_id")
	payments, err := h.reportUC.PaymentsByUser(c.Request().Context(), userID, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if c.QueryParam("format") == "csv" {
		return writeCSV(c, fmt.Sprintf("payments_%s.csv", userID), usecase.PaymentsCSV(payments))
	}
	return c.JSON(http.StatusOK, payments)
}

// DailyTotals returns per-day sent/received totals for a user, optionally
// bounded by start_date/end_date, as JSON or CSV.
func (h *ReportHandler) DailyTotals(c echo.Context) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	userID := c.Param("user_id")
	totals, err := h.reportUC.DailyTotals(c.Request().Context(), userID, start, end)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if c.QueryParam("format") == "csv" {
		return writeCSV(c, fmt.Sprintf("daily_totals_%s.csv", userID), usecase.DailyTotalsCSV(totals))
	}
	return c.JSON(http.StatusOK, totals)
}

func parseDateRange(c echo.Context) (*time.Time, *time.Time, error) {
	start, err := parseDate(c.QueryParam("start_date"))
	if err != nil {
		return nil, nil, err
	}
	end, err := parseDate(c.QueryParam("end_date"))
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("Invalid date format: %s", s)
	}
	return &t, nil
}

func writeCSV(c echo.Context, filename string, rows [][]string) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(rows); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	writer.Flush()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
