package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	categoryRepo := newPgxCategoryRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	incomingRepo := newPgxIncomingLetterRepository(dbPool)
	outgoingRepo := newPgxOutgoingLetterRepository(dbPool)
	routingRepo := newPgxRoutingActionRepository(dbPool)
	archiveRepo := newPgxArchiveEntryRepository(dbPool)
	templateRepo := newPgxTemplateRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CategoryRepo:  categoryRepo,
		UserRepo:      userRepo,
		IncomingRepo:  incomingRepo,
		OutgoingRepo:  outgoingRepo,
		RoutingRepo:   routingRepo,
		ArchiveRepo:   archiveRepo,
		TemplateRepo:  templateRepo,
		ReportingRepo: reportingRepo,
	}
}
