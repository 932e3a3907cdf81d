package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User           UserSvcFacade
	Category       CategorySvcFacade
	Template       TemplateSvcFacade
	IncomingLetter IncomingLetterSvcFacade
	OutgoingLetter OutgoingLetterSvcFacade
	RoutingAction  RoutingActionSvcFacade
	ArchiveEntry   ArchiveEntrySvcFacade
	Reporting      ReportingSvcFacade
	Token          TokenSvcFacade
	GoogleOAuth    GoogleOAuthHandlerSvcFacade
}
