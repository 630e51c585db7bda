package services

import (
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// revocation and narrator are optional.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, revocation portsrepo.TokenRevocationRepository, narrator portssvc.InsightNarrator) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo)
	container.Activity = NewActivityService(repos.ActivityRepo, repos.ClientRepo)
	container.Workforce = NewWorkforceService(repos.WorkforceRepo)
	container.Staff = NewStaffService(repos.StaffRepo)
	container.Practice = NewPracticeService(repos.PracticeRepo)
	container.Resource = NewResourceService(repos.ResourceRepo)
	container.LocalInsights = NewLocalInsightsService()
	container.Portal = NewPortalService(repos.ClientRepo, repos.PortalRepo)

	var reportingOptions []ReportingServiceOption
	if narrator != nil {
		reportingOptions = append(reportingOptions, WithInsightNarrator(narrator))
	}
	container.Reporting = NewReportingService(repos, reportingOptions...)

	container.TokenService = NewTokenService(cfg, revocation)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
