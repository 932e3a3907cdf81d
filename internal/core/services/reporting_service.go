package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/dto"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
	incomingRepo  portsrepo.IncomingLetterReader
	outgoingRepo  portsrepo.OutgoingLetterReader
	clock         Clock
}

// NewReportingService creates a new reporting service
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, incomingRepo portsrepo.IncomingLetterReader, outgoingRepo portsrepo.OutgoingLetterReader, clock Clock) portssvc.ReportingSvcFacade {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &reportingService{reportingRepo: reportingRepo, incomingRepo: incomingRepo, outgoingRepo: outgoingRepo, clock: clock}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetLetterStatistics(ctx context.Context, req dto.LetterStatisticsRequest) (*domain.LetterStatistics, error) {
	year := req.Year
	if year == 0 {
		year = s.clock.Now().Year()
	}

	var from, to *time.Time
	if !req.From.IsZero() {
		f := req.From
		from = &f
	}
	if !req.To.IsZero() {
		t := req.To
		to = &t
	}

	totalIncoming, totalOutgoing, err := s.reportingRepo.CountLetters(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to count letters")
		return nil, fmt.Errorf("failed to count letters: %w", err)
	}
	totalRouting, err := s.reportingRepo.CountRoutingActions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count routing actions")
		return nil, fmt.Errorf("failed to count routing actions: %w", err)
	}
	totalArchived, err := s.reportingRepo.CountArchiveEntries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count archive entries")
		return nil, fmt.Errorf("failed to count archive entries: %w", err)
	}
	perMonth, err := s.reportingRepo.CountLettersPerMonth(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to count letters per month")
		return nil, fmt.Errorf("failed to count letters per month: %w", err)
	}
	perCategory, err := s.reportingRepo.CountLettersPerCategory(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to count letters per category")
		return nil, fmt.Errorf("failed to count letters per category: %w", err)
	}
	incomingStatus, err := s.reportingRepo.CountIncomingPerStatus(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count incoming letters per status")
		return nil, fmt.Errorf("failed to count incoming letters per status: %w", err)
	}
	outgoingStatus, err := s.reportingRepo.CountOutgoingPerStatus(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count outgoing letters per status")
		return nil, fmt.Errorf("failed to count outgoing letters per status: %w", err)
	}
	routingStatus, err := s.reportingRepo.CountRoutingPerStatus(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count routing actions per status")
		return nil, fmt.Errorf("failed to count routing actions per status: %w", err)
	}

	return &domain.LetterStatistics{
		Year:           year,
		TotalIncoming:  totalIncoming,
		TotalOutgoing:  totalOutgoing,
		TotalRouting:   totalRouting,
		TotalArchived:  totalArchived,
		PerMonth:       perMonth,
		PerCategory:    perCategory,
		IncomingStatus: incomingStatus,
		OutgoingStatus: outgoingStatus,
		RoutingStatus:  routingStatus,
	}, nil
}

// csvDateLayout is the date format used in exported reports.
const csvDateLayout = "2006-01-02"

func (s *reportingService) ExportLetterReportCSV(ctx context.Context, req dto.ExportLetterReportRequest) (string, []byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"direction", "letter_number", "letter_date", "counterparty", "subject", "sensitivity", "status"}
	if err := w.Write(header); err != nil {
		return "", nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	includeIncoming := req.Kind == "" || req.Kind == string(domain.ArchiveIncoming)
	includeOutgoing := req.Kind == "" || req.Kind == string(domain.ArchiveOutgoing)

	if includeIncoming {
		filter := portsrepo.IncomingLetterFilter{}
		if !req.From.IsZero() {
			from := req.From
			filter.From = &from
		}
		if !req.To.IsZero() {
			to := req.To
			filter.To = &to
		}
		letters, err := s.incomingRepo.FindIncomingLetters(ctx, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to load incoming letters for export")
			return "", nil, fmt.Errorf("failed to load incoming letters for export: %w", err)
		}
		for _, letter := range letters {
			row := []string{
				"INCOMING",
				letter.LetterNumber,
				letter.LetterDate.Format(csvDateLayout),
				letter.Sender,
				letter.Subject,
				string(letter.Sensitivity),
				string(letter.Status),
			}
			if err := w.Write(row); err != nil {
				return "", nil, fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	if includeOutgoing {
		filter := portsrepo.OutgoingLetterFilter{}
		if !req.From.IsZero() {
			from := req.From
			filter.From = &from
		}
		if !req.To.IsZero() {
			to := req.To
			filter.To = &to
		}
		letters, err := s.outgoingRepo.FindOutgoingLetters(ctx, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to load outgoing letters for export")
			return "", nil, fmt.Errorf("failed to load outgoing letters for export: %w", err)
		}
		for _, letter := range letters {
			row := []string{
				"OUTGOING",
				letter.LetterNumber,
				letter.LetterDate.Format(csvDateLayout),
				letter.Destination,
				letter.Subject,
				string(letter.Sensitivity),
				string(letter.Status),
			}
			if err := w.Write(row); err != nil {
				return "", nil, fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	filename := fmt.Sprintf("letter-report-%s.csv", s.clock.Now().Format(csvDateLayout))
	return filename, buf.Bytes(), nil
}
