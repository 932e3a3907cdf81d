package services

import (
	portsrepo "github.com/sintas-dev/sintas_backend/internal/core/ports/repositories"
	portssvc "github.com/sintas-dev/sintas_backend/internal/core/ports/services"
	"github.com/sintas-dev/sintas_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	clock := NewSystemClock()

	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Template = NewTemplateService(repos.TemplateRepo, repos.CategoryRepo)
	container.IncomingLetter = NewIncomingLetterService(repos.IncomingRepo, repos.CategoryRepo, clock)
	container.OutgoingLetter = NewOutgoingLetterService(repos.OutgoingRepo, repos.CategoryRepo, clock)
	container.RoutingAction = NewRoutingActionService(repos.RoutingRepo, repos.IncomingRepo, repos.UserRepo, clock)
	container.ArchiveEntry = NewArchiveEntryService(repos.ArchiveRepo, repos.IncomingRepo, repos.OutgoingRepo, clock)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.IncomingRepo, repos.OutgoingRepo, clock)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
