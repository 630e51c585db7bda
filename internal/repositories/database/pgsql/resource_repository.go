package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	"github.com/SscSPs/multinav_crm/internal/models"
)

type PgxResourceRepository struct {
	BaseRepository
}

func newPgxResourceRepository(pool *pgxpool.Pool) *PgxResourceRepository {
	return &PgxResourceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ResourceRepositoryFacade = (*PgxResourceRepository)(nil)

const resourceSelectQuery = `
SELECT
	resource_id, name, resource_type, category, date_added, file_url, file_name,
	file_size, file_type, storage_path
FROM program_resources
`

func (r *PgxResourceRepository) ListResources(ctx context.Context) ([]domain.ProgramResource, error) {
	rows, err := r.Pool.Query(ctx, resourceSelectQuery+` ORDER BY date_added DESC, resource_id`)
	if err != nil {
		return nil, storageError("query resources", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ProgramResource])
	if err != nil {
		return nil, storageError("collect resource rows", err)
	}
	resources := make([]domain.ProgramResource, len(ms))
	for i, m := range ms {
		resources[i] = m.ToDomain()
	}
	return resources, nil
}

func (r *PgxResourceRepository) FindResourceByID(ctx context.Context, resourceID string) (*domain.ProgramResource, error) {
	rows, err := r.Pool.Query(ctx, resourceSelectQuery+` WHERE resource_id = $1`, resourceID)
	if err != nil {
		return nil, storageError("query resource", err)
	}
	m, err := collectOne[models.ProgramResource](rows, "collect resource row")
	if err != nil {
		return nil, err
	}
	resource := m.ToDomain()
	return &resource, nil
}

func (r *PgxResourceRepository) SaveResource(ctx context.Context, resource domain.ProgramResource) error {
	m := models.FromDomainProgramResource(resource)
	query := `
		INSERT INTO program_resources (
			resource_id, name, resource_type, category, date_added, file_url, file_name,
			file_size, file_type, storage_path
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ResourceID, m.Name, m.ResourceType, m.Category, m.DateAdded, m.FileURL, m.FileName,
		m.FileSize, m.FileType, m.StoragePath,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return storageError("insert resource", err)
	}
	return nil
}

// UpdateResource rewrites the descriptive fields; the file location and
// date added are fixed at upload.
func (r *PgxResourceRepository) UpdateResource(ctx context.Context, resource domain.ProgramResource) error {
	m := models.FromDomainProgramResource(resource)
	query := `
		UPDATE program_resources SET name = $2, resource_type = $3, category = $4
		WHERE resource_id = $1;
	`
	return r.execAffectingOne(ctx, "update resource", query, m.ResourceID, m.Name, m.ResourceType, m.Category)
}

func (r *PgxResourceRepository) DeleteResource(ctx context.Context, resourceID string) error {
	return r.execAffectingOne(ctx, "delete resource", `DELETE FROM program_resources WHERE resource_id = $1`, resourceID)
}
