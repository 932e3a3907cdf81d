package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sintas-dev/sintas_backend/internal/core/domain"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	db *pgxpool.Pool
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{db: db}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepositoryFacade
var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// dateBounds builds an optional range clause for the given column, appending
// the bound values to args.
func dateBounds(column string, from *time.Time, to *time.Time, args *[]interface{}) string {
	clause := ""
	if from != nil {
		*args = append(*args, *from)
		clause += fmt.Sprintf(" AND %s >= $%d", column, len(*args))
	}
	if to != nil {
		*args = append(*args, *to)
		clause += fmt.Sprintf(" AND %s < $%d", column, len(*args))
	}
	return clause
}

func (r *PgxReportingRepository) CountLetters(ctx context.Context, from *time.Time, to *time.Time) (int64, int64, error) {
	args := []interface{}{}
	incomingClause := dateBounds("received_date", from, to, &args)
	var incoming int64
	query := `SELECT COUNT(*) FROM incoming_letters WHERE TRUE` + incomingClause + `;`
	if err := r.db.QueryRow(ctx, query, args...).Scan(&incoming); err != nil {
		return 0, 0, fmt.Errorf("failed to count incoming letters: %w", err)
	}

	args = []interface{}{}
	outgoingClause := dateBounds("letter_date", from, to, &args)
	var outgoing int64
	query = `SELECT COUNT(*) FROM outgoing_letters WHERE TRUE` + outgoingClause + `;`
	if err := r.db.QueryRow(ctx, query, args...).Scan(&outgoing); err != nil {
		return 0, 0, fmt.Errorf("failed to count outgoing letters: %w", err)
	}

	return incoming, outgoing, nil
}

func (r *PgxReportingRepository) CountRoutingActions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM routing_actions;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count routing actions: %w", err)
	}
	return count, nil
}

func (r *PgxReportingRepository) CountArchiveEntries(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM archive_entries;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count archive entries: %w", err)
	}
	return count, nil
}

// CountLettersPerMonth always yields twelve rows; months with no letters
// report zero.
func (r *PgxReportingRepository) CountLettersPerMonth(ctx context.Context, year int) ([]domain.MonthlyLetterCount, error) {
	query := `
		SELECT m.month,
		       COALESCE(i.total, 0) AS incoming,
		       COALESCE(o.total, 0) AS outgoing
		FROM generate_series(1, 12) AS m(month)
		LEFT JOIN (
			SELECT EXTRACT(MONTH FROM received_date)::int AS month, COUNT(*) AS total
			FROM incoming_letters
			WHERE EXTRACT(YEAR FROM received_date)::int = $1
			GROUP BY 1
		) i ON i.month = m.month
		LEFT JOIN (
			SELECT EXTRACT(MONTH FROM letter_date)::int AS month, COUNT(*) AS total
			FROM outgoing_letters
			WHERE EXTRACT(YEAR FROM letter_date)::int = $1
			GROUP BY 1
		) o ON o.month = m.month
		ORDER BY m.month;
	`
	rows, err := r.db.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query letters per month: %w", err)
	}
	defer rows.Close()

	counts := []domain.MonthlyLetterCount{}
	for rows.Next() {
		var c domain.MonthlyLetterCount
		if err := rows.Scan(&c.Month, &c.Incoming, &c.Outgoing); err != nil {
			return nil, fmt.Errorf("failed to scan monthly count row: %w", err)
		}
		counts = append(counts, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating monthly count rows: %w", rows.Err())
	}
	return counts, nil
}

func (r *PgxReportingRepository) CountLettersPerCategory(ctx context.Context, from *time.Time, to *time.Time) ([]domain.CategoryLetterCount, error) {
	args := []interface{}{}
	incomingClause := dateBounds("l.received_date", from, to, &args)

	// Both subqueries share the same positional args, so the outgoing bounds
	// reuse the incoming placeholders.
	outgoingClause := ""
	if from != nil && to != nil {
		outgoingClause = " AND l.letter_date >= $1 AND l.letter_date < $2"
	} else if from != nil {
		outgoingClause = " AND l.letter_date >= $1"
	} else if to != nil {
		outgoingClause = " AND l.letter_date < $1"
	}

	query := `
		SELECT COALESCE(c.name, '') AS category_name, COUNT(*) AS total
		FROM (
			SELECT l.category_id FROM incoming_letters l WHERE TRUE` + incomingClause + `
			UNION ALL
			SELECT l.category_id FROM outgoing_letters l WHERE TRUE` + outgoingClause + `
		) letters
		LEFT JOIN categories c ON c.category_id = letters.category_id
		GROUP BY COALESCE(c.name, '')
		ORDER BY total DESC, category_name;
	`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query letters per category: %w", err)
	}
	defer rows.Close()

	counts := []domain.CategoryLetterCount{}
	for rows.Next() {
		var c domain.CategoryLetterCount
		if err := rows.Scan(&c.CategoryName, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category count row: %w", err)
		}
		counts = append(counts, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category count rows: %w", rows.Err())
	}
	return counts, nil
}

func (r *PgxReportingRepository) countPerStatus(ctx context.Context, table string) ([]domain.StatusCount, error) {
	query := `SELECT status, COUNT(*) FROM ` + table + ` GROUP BY status ORDER BY status;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s per status: %w", table, err)
	}
	defer rows.Close()

	counts := []domain.StatusCount{}
	for rows.Next() {
		var c domain.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		counts = append(counts, c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating status count rows: %w", rows.Err())
	}
	return counts, nil
}

func (r *PgxReportingRepository) CountIncomingPerStatus(ctx context.Context) ([]domain.StatusCount, error) {
	return r.countPerStatus(ctx, "incoming_letters")
}

func (r *PgxReportingRepository) CountOutgoingPerStatus(ctx context.Context) ([]domain.StatusCount, error) {
	return r.countPerStatus(ctx, "outgoing_letters")
}

func (r *PgxReportingRepository) CountRoutingPerStatus(ctx context.Context) ([]domain.StatusCount, error) {
	return r.countPerStatus(ctx, "routing_actions")
}
