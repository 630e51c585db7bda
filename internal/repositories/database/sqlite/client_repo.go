package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	"github.com/SscSPs/multinav_crm/internal/models"
)

// ClientRepository implements the client ports over SQLite.
type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

var _ portsrepo.ClientRepositoryFacade = (*ClientRepository)(nil)

const clientColumns = `client_id, full_name, sex, date_of_birth, age, ethnicity, country_of_birth,
	languages, referral_source, referral_date, address, postcode, region, password_hash, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (models.Client, error) {
	var m models.Client
	err := row.Scan(&m.ClientID, &m.FullName, &m.Sex, &m.DateOfBirth, &m.Age, &m.Ethnicity,
		&m.CountryOfBirth, (*stringList)(&m.Languages), &m.ReferralSource, &m.ReferralDate,
		&m.Address, &m.Postcode, &m.Region, &m.PasswordHash, &m.CreatedAt)
	return m, err
}

func (r *ClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY created_at, client_id`)
	if err != nil {
		return nil, storageError("query clients", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, storageError("scan client", err)
		}
		clients = append(clients, m.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate clients", err)
	}
	return clients, nil
}

func (r *ClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	m, err := scanClient(r.db.QueryRowContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE client_id = ?`, clientID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, storageError("get client", err)
	}
	client := m.ToDomain()
	return &client, nil
}

func (r *ClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := models.FromDomainClient(client)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (`+clientColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ClientID, m.FullName, m.Sex, m.DateOfBirth, m.Age, m.Ethnicity, m.CountryOfBirth,
		stringList(m.Languages), m.ReferralSource, m.ReferralDate, m.Address, m.Postcode, m.Region,
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

func (r *ClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := models.FromDomainClient(client)
	return execAffectingOne(ctx, r.db, "update client", `
		UPDATE clients SET
			full_name = ?, sex = ?, date_of_birth = ?, age = ?, ethnicity = ?, country_of_birth = ?,
			languages = ?, referral_source = ?, referral_date = ?, address = ?, postcode = ?,
			region = ?, password_hash = ?
		WHERE client_id = ?`,
		m.FullName, m.Sex, m.DateOfBirth, m.Age, m.Ethnicity, m.CountryOfBirth,
		stringList(m.Languages), m.ReferralSource, m.ReferralDate, m.Address, m.Postcode,
		m.Region, m.PasswordHash, m.ClientID,
	)
}

func (r *ClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	return execAffectingOne(ctx, r.db, "delete client", `DELETE FROM clients WHERE client_id = ?`, clientID)
}
