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

type PgxPortalRepository struct {
	BaseRepository
}

func newPgxPortalRepository(pool *pgxpool.Pool) *PgxPortalRepository {
	return &PgxPortalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PortalRepositoryFacade = (*PgxPortalRepository)(nil)

func (r *PgxPortalRepository) ListExperiences(ctx context.Context, clientID string) ([]domain.ExperienceEntry, error) {
	query := `
		SELECT experience_id, client_id, experience_date, content, is_read, attachments
		FROM patient_experiences
		WHERE client_id = $1
		ORDER BY experience_date DESC, experience_id;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, storageError("query experiences", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ExperienceEntry])
	if err != nil {
		return nil, storageError("collect experience rows", err)
	}
	entries := make([]domain.ExperienceEntry, len(ms))
	for i, m := range ms {
		entries[i] = m.ToDomain()
	}
	return entries, nil
}

func (r *PgxPortalRepository) SaveExperience(ctx context.Context, entry domain.ExperienceEntry) error {
	m := models.FromDomainExperienceEntry(entry)
	query := `
		INSERT INTO patient_experiences (experience_id, client_id, experience_date, content, is_read, attachments)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.ExperienceID, m.ClientID, m.ExperienceDate, m.Content, m.IsRead, m.Attachments)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return storageError("insert experience", err)
	}
	return nil
}

func (r *PgxPortalRepository) MarkExperienceRead(ctx context.Context, clientID, experienceID string) error {
	return r.execAffectingOne(ctx, "mark experience read",
		`UPDATE patient_experiences SET is_read = TRUE WHERE client_id = $1 AND experience_id = $2`,
		clientID, experienceID)
}

func (r *PgxPortalRepository) ListMessages(ctx context.Context, clientID string) ([]domain.PortalMessage, error) {
	query := `
		SELECT message_id, client_id, sent_at, sender, body, language, is_read
		FROM patient_messages
		WHERE client_id = $1
		ORDER BY sent_at, message_id;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, storageError("query messages", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PortalMessage])
	if err != nil {
		return nil, storageError("collect message rows", err)
	}
	messages := make([]domain.PortalMessage, len(ms))
	for i, m := range ms {
		messages[i] = m.ToDomain()
	}
	return messages, nil
}

func (r *PgxPortalRepository) SaveMessage(ctx context.Context, message domain.PortalMessage) error {
	m := models.FromDomainPortalMessage(message)
	query := `
		INSERT INTO patient_messages (message_id, client_id, sent_at, sender, body, language, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.MessageID, m.ClientID, m.SentAt, m.Sender, m.Body, m.Language, m.IsRead)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return storageError("insert message", err)
	}
	return nil
}

func (r *PgxPortalRepository) MarkMessageRead(ctx context.Context, clientID, messageID string) error {
	return r.execAffectingOne(ctx, "mark message read",
		`UPDATE patient_messages SET is_read = TRUE WHERE client_id = $1 AND message_id = $2`,
		clientID, messageID)
}

func (r *PgxPortalRepository) ListPortalActivity(ctx context.Context) ([]domain.PortalActivity, error) {
	query := `
		WITH e AS (
			SELECT client_id,
				COUNT(*) AS experiences,
				COUNT(*) FILTER (WHERE NOT is_read) AS unread_experiences,
				MAX(experience_date) AS last_at
			FROM patient_experiences
			GROUP BY client_id
		), m AS (
			SELECT client_id,
				COUNT(*) AS messages,
				COUNT(*) FILTER (WHERE NOT is_read) AS unread_messages,
				MAX(sent_at) AS last_at
			FROM patient_messages
			WHERE sender = 'patient'
			GROUP BY client_id
		)
		SELECT
			COALESCE(e.client_id, m.client_id) AS client_id,
			COALESCE(e.experiences, 0)::int AS experiences,
			COALESCE(e.unread_experiences, 0)::int AS unread_experiences,
			COALESCE(m.messages, 0)::int AS messages,
			COALESCE(m.unread_messages, 0)::int AS unread_messages,
			GREATEST(e.last_at, m.last_at) AS last_submitted_at
		FROM e FULL OUTER JOIN m ON e.client_id = m.client_id
		ORDER BY last_submitted_at DESC NULLS LAST, client_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, storageError("query portal activity", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PortalActivity])
	if err != nil {
		return nil, storageError("collect portal activity rows", err)
	}
	activity := make([]domain.PortalActivity, len(ms))
	for i, m := range ms {
		activity[i] = m.ToDomain()
	}
	return activity, nil
}
