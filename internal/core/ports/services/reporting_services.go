package services

import (
	"context"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

// ReportingSvcFacade defines operations for dashboard statistics and report
// exports over the correspondence records.
type ReportingSvcFacade interface {
	// GetLetterStatistics assembles the dashboard statistics for a year.
	GetLetterStatistics(ctx context.Context, req dto.LetterStatisticsRequest) (*domain.LetterStatistics, error)

	// ExportLetterReportCSV writes a CSV report of letters in the period.
	// Returns the suggested file name and the file content.
	ExportLetterReportCSV(ctx context.Context, req dto.ExportLetterReportRequest) (string, []byte, error)
}
