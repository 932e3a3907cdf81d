package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CategoryRepo  CategoryRepositoryFacade
	UserRepo      UserRepositoryFacade
	IncomingRepo  IncomingLetterRepositoryFacade
	OutgoingRepo  OutgoingLetterRepositoryFacade
	RoutingRepo   RoutingActionRepositoryFacade
	ArchiveRepo   ArchiveEntryRepositoryFacade
	TemplateRepo  TemplateRepositoryFacade
	ReportingRepo ReportingRepositoryFacade
}
