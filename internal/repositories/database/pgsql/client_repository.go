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

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) *PgxClientRepository {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientSelectQuery = `
SELECT
	client_id, full_name, sex, date_of_birth, age, ethnicity, country_of_birth,
	languages, referral_source, referral_date, address, postcode, region,
	password_hash, created_at
FROM clients
`

func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.Pool.Query(ctx, clientSelectQuery+` ORDER BY created_at, client_id`)
	if err != nil {
		return nil, storageError("query clients", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Client])
	if err != nil {
		return nil, storageError("collect client rows", err)
	}
	clients := make([]domain.Client, len(ms))
	for i, m := range ms {
		clients[i] = m.ToDomain()
	}
	return clients, nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	rows, err := r.Pool.Query(ctx, clientSelectQuery+` WHERE client_id = $1`, clientID)
	if err != nil {
		return nil, storageError("query client", err)
	}
	m, err := collectOne[models.Client](rows, "collect client row")
	if err != nil {
		return nil, err
	}
	client := m.ToDomain()
	return &client, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := models.FromDomainClient(client)
	query := `
		INSERT INTO clients (
			client_id, full_name, sex, date_of_birth, age, ethnicity, country_of_birth,
			languages, referral_source, referral_date, address, postcode, region,
			password_hash, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID, m.FullName, m.Sex, m.DateOfBirth, m.Age, m.Ethnicity, m.CountryOfBirth,
		m.Languages, m.ReferralSource, m.ReferralDate, m.Address, m.Postcode, m.Region,
		m.PasswordHash, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return storageError("insert client", err)
	}
	return nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := models.FromDomainClient(client)
	query := `
		UPDATE clients SET
			full_name = $2, sex = $3, date_of_birth = $4, age = $5, ethnicity = $6,
			country_of_birth = $7, languages = $8, referral_source = $9, referral_date = $10,
			address = $11, postcode = $12, region = $13, password_hash = $14
		WHERE client_id = $1;
	`
	return r.execAffectingOne(ctx, "update client", query,
		m.ClientID, m.FullName, m.Sex, m.DateOfBirth, m.Age, m.Ethnicity,
		m.CountryOfBirth, m.Languages, m.ReferralSource, m.ReferralDate,
		m.Address, m.Postcode, m.Region, m.PasswordHash,
	)
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	return r.execAffectingOne(ctx, "delete client", `DELETE FROM clients WHERE client_id = $1`, clientID)
}
