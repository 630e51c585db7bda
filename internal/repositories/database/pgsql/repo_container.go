package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClientRepo:    newPgxClientRepository(dbPool),
		ActivityRepo:  newPgxActivityRepository(dbPool),
		WorkforceRepo: newPgxWorkforceRepository(dbPool),
		StaffRepo:     newPgxStaffRepository(dbPool),
		PracticeRepo:  newPgxPracticeRepository(dbPool),
		ResourceRepo:  newPgxResourceRepository(dbPool),
		PortalRepo:    newPgxPortalRepository(dbPool),
	}
}
