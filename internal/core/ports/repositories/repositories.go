package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
// The offline snapshot leaves the directory and portal repositories nil.
type RepositoryProvider struct {
	ClientRepo    ClientRepositoryFacade
	ActivityRepo  ActivityRepositoryFacade
	WorkforceRepo WorkforceRepositoryFacade
	StaffRepo     StaffRepositoryFacade
	PracticeRepo  PracticeRepositoryFacade
	ResourceRepo  ResourceRepositoryFacade
	PortalRepo    PortalRepositoryFacade
}
