package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Client             ClientSvcFacade
	Activity           ActivitySvcFacade
	Workforce          WorkforceSvcFacade
	Staff              StaffSvcFacade
	Reporting          ReportingService
	Practice           PracticeSvcFacade
	Resource           ResourceSvcFacade
	LocalInsights      LocalInsightsSvc
	Portal             PortalSvcFacade
	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
