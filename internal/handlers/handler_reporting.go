package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
	"github.com/sintas-dev/sintas_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for statistics and report exports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers all reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/statistics", h.getStatistics)
		reports.GET("/letters/export", h.exportLetterReport)
	}
}

// getStatistics godoc
// @Summary Dashboard statistics
// @Description Returns letter volume totals, per-month and per-category breakdowns, and status distributions for a year.
// @Tags reports
// @Produce  json
// @Param   year query int false "Year, defaults to the current year"
// @Success 200 {object} dto.LetterStatisticsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/statistics [get]
func (h *reportingHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LetterStatisticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	stats, err := h.reportingService.GetLetterStatistics(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToLetterStatisticsResponse(stats))
}

// exportLetterReport godoc
// @Summary Export a letter report as CSV
// @Description Writes a CSV report of incoming and/or outgoing letters in the given period.
// @Tags reports
// @Produce  text/csv
// @Param   kind query string false "Restrict to one direction" Enums(INCOMING, OUTGOING)
// @Param   from query string false "Period start (YYYY-MM-DD)"
// @Param   to query string false "Period end, exclusive (YYYY-MM-DD)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/letters/export [get]
func (h *reportingHandler) exportLetterReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExportLetterReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var err error
	if req.From, err = parseDateQuery(c, "from"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if req.To, err = parseDateQuery(c, "to"); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	fileName, content, err := h.reportingService.ExportLetterReportCSV(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "letter report")
		return
	}

	logger.Info("Letter report exported", slog.String("file_name", fileName), slog.Int("bytes", len(content)))
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "text/csv", content)
}
