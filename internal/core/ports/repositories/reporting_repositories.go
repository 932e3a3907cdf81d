package repositories

import (
	"context"
	"time"

	"github.com/sintas-dev/sintas_backend/internal/core/domain"
)

// ReportingRepositoryFacade exposes read-only aggregation queries for the
// dashboard and report exports. It never mutates state.
type ReportingRepositoryFacade interface {
	// CountLetters returns the incoming and outgoing letter totals, optionally
	// bounded by received date (incoming) / letter date (outgoing).
	CountLetters(ctx context.Context, from *time.Time, to *time.Time) (incoming int64, outgoing int64, err error)

	// CountRoutingActions returns the routing action total.
	CountRoutingActions(ctx context.Context) (int64, error)

	// CountArchiveEntries returns the archive entry total.
	CountArchiveEntries(ctx context.Context) (int64, error)

	// CountLettersPerMonth returns combined monthly letter volume for a year,
	// one row per month 1-12.
	CountLettersPerMonth(ctx context.Context, year int) ([]domain.MonthlyLetterCount, error)

	// CountLettersPerCategory returns combined letter volume per category name,
	// uncategorized letters grouped under an empty name.
	CountLettersPerCategory(ctx context.Context, from *time.Time, to *time.Time) ([]domain.CategoryLetterCount, error)

	// CountIncomingPerStatus groups incoming letters by status.
	CountIncomingPerStatus(ctx context.Context) ([]domain.StatusCount, error)

	// CountOutgoingPerStatus groups outgoing letters by status.
	CountOutgoingPerStatus(ctx context.Context) ([]domain.StatusCount, error)

	// CountRoutingPerStatus groups routing actions by status.
	CountRoutingPerStatus(ctx context.Context) ([]domain.StatusCount, error)
}
