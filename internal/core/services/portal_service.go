package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/SscSPs/multinav_crm/internal/utils"
)

// ID prefixes for portal submissions.
const (
	ExperienceIDPrefix = "E"
	MessageIDPrefix    = "M"
)

type portalService struct {
	BaseService
	clientRepo portsrepo.ClientReader
	portalRepo portsrepo.PortalRepositoryFacade
}

// NewPortalService creates the client portal service.
func NewPortalService(clientRepo portsrepo.ClientReader, portalRepo portsrepo.PortalRepositoryFacade, options ...ServiceOption) portssvc.PortalSvcFacade {
	return &portalService{BaseService: newBase(options), clientRepo: clientRepo, portalRepo: portalRepo}
}

var _ portssvc.PortalSvcFacade = (*portalService)(nil)

// --- Client side ---

func (s *portalService) AuthenticateClient(ctx context.Context, clientID, password string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, strings.TrimSpace(clientID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			utils.CheckPasswordHash(password, "")
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up client for portal sign-in")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, client.PasswordHash) {
		s.LogInfo(ctx, "Portal sign-in rejected",
			slog.String("client_id", client.ID),
			slog.Bool("portal_enabled", client.PasswordHash != ""))
		return nil, apperrors.ErrUnauthorized
	}
	s.LogInfo(ctx, "Client signed in to portal", slog.String("client_id", client.ID))
	return client, nil
}

func (s *portalService) Profile(ctx context.Context, actor *domain.Actor) (*domain.Client, error) {
	clientID, err := portalClientID(actor)
	if err != nil {
		return nil, err
	}
	return s.ownRecord(ctx, clientID)
}

func (s *portalService) ListOwnExperiences(ctx context.Context, actor *domain.Actor) ([]domain.ExperienceEntry, error) {
	clientID, err := portalClientID(actor)
	if err != nil {
		return nil, err
	}
	return s.listExperiences(ctx, clientID)
}

func (s *portalService) SubmitExperience(ctx context.Context, actor *domain.Actor, req dto.CreateExperienceRequest) (*domain.ExperienceEntry, error) {
	clientID, err := portalClientID(actor)
	if err != nil {
		return nil, err
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", apperrors.ErrValidation)
	}
	attachments, err := toAttachments(req.Attachments)
	if err != nil {
		return nil, err
	}
	id, err := utils.GenerateRecordID(ExperienceIDPrefix)
	if err != nil {
		return nil, err
	}

	entry := domain.ExperienceEntry{
		ID:          id,
		ClientID:    clientID,
		Date:        s.Now(),
		Content:     content,
		Attachments: attachments,
	}
	if err := s.portalRepo.SaveExperience(ctx, entry); err != nil {
		s.logUnexpected(ctx, err, "Failed to save experience", slog.String("client_id", clientID))
		return nil, err
	}
	s.LogInfo(ctx, "Experience submitted",
		slog.String("client_id", clientID),
		slog.String("experience_id", entry.ID),
		slog.Int("attachments", len(attachments)))
	return &entry, nil
}

func (s *portalService) ListOwnMessages(ctx context.Context, actor *domain.Actor) ([]domain.PortalMessage, error) {
	clientID, err := portalClientID(actor)
	if err != nil {
		return nil, err
	}
	return s.listMessages(ctx, clientID)
}

func (s *portalService) SendClientMessage(ctx context.Context, actor *domain.Actor, req dto.SendMessageRequest) (*domain.PortalMessage, error) {
	clientID, err := portalClientID(actor)
	if err != nil {
		return nil, err
	}
	client, err := s.ownRecord(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.send(ctx, client, domain.SenderClient, req, client.PreferredLanguage())
}

// --- Staff side ---

func (s *portalService) PortalInbox(ctx context.Context, actor *domain.Actor) ([]domain.PortalInboxEntry, error) {
	if err := s.Authorize(ctx, actor, domain.CapClientRecords); err != nil {
		return nil, err
	}
	activity, err := s.portalRepo.ListPortalActivity(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list portal activity")
		return nil, fmt.Errorf("failed to list portal activity: %w", err)
	}
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients for portal inbox")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	index := domain.IndexClients(clients)

	inbox := make([]domain.PortalInboxEntry, len(activity))
	for i, a := range activity {
		inbox[i] = domain.PortalInboxEntry{ClientName: index.NameOf(a.ClientID), PortalActivity: a}
	}
	return inbox, nil
}

func (s *portalService) ListClientExperiences(ctx context.Context, actor *domain.Actor, clientID string) ([]domain.ExperienceEntry, error) {
	if err := s.Authorize(ctx, actor, domain.CapClientRecords); err != nil {
		return nil, err
	}
	if _, err := s.findClient(ctx, clientID); err != nil {
		return nil, err
	}
	return s.listExperiences(ctx, clientID)
}

func (s *portalService) MarkExperienceRead(ctx context.Context, actor *domain.Actor, clientID, experienceID string) error {
	if err := s.Authorize(ctx, actor, domain.CapClientRecords); err != nil {
		return err
	}
	if err := s.portalRepo.MarkExperienceRead(ctx, clientID, experienceID); err != nil {
		s.logUnexpected(ctx, err, "Failed to mark experience read",
			slog.String("client_id", clientID), slog.String("experience_id", experienceID))
		return err
	}
	return nil
}

func (s *portalService) ListClientMessages(ctx context.Context, actor *domain.Actor, clientID string) ([]domain.PortalMessage, error) {
	if err := s.Authorize(ctx, actor, domain.CapClientRecords); err != nil {
		return nil, err
	}
	if _, err := s.findClient(ctx, clientID); err != nil {
		return nil, err
	}
	return s.listMessages(ctx, clientID)
}

func (s *portalService) ReplyToClient(ctx context.Context, actor *domain.Actor, clientID string, req dto.SendMessageRequest) (*domain.PortalMessage, error) {
	if err := s.Authorize(ctx, actor, domain.CapClientRecords); err != nil {
		return nil, err
	}
	client, err := s.findClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.send(ctx, client, domain.SenderNavigator, req, domain.DefaultPortalLanguage)
}

func (s *portalService) MarkMessageRead(ctx context.Context, actor *domain.Actor, clientID, messageID string) error {
	if err := s.Authorize(ctx, actor, domain.CapClientRecords); err != nil {
		return err
	}
	if err := s.portalRepo.MarkMessageRead(ctx, clientID, messageID); err != nil {
		s.logUnexpected(ctx, err, "Failed to mark message read",
			slog.String("client_id", clientID), slog.String("message_id", messageID))
		return err
	}
	return nil
}

// --- helpers ---

// portalClientID returns the client a portal session acts for.
func portalClientID(actor *domain.Actor) (string, error) {
	if actor == nil || actor.Role != domain.RoleClient || actor.ID == "" {
		return "", fmt.Errorf("%w: %s sessions cannot use the client portal", apperrors.ErrForbidden, roleOf(actor))
	}
	return actor.ID, nil
}

func (s *portalService) findClient(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

// ownRecord loads the signed-in client's record. A session whose record has
// since been deleted is no longer valid.
func (s *portalService) ownRecord(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.findClient(ctx, clientID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: client record no longer exists", apperrors.ErrUnauthorized)
	}
	return client, err
}

func (s *portalService) listExperiences(ctx context.Context, clientID string) ([]domain.ExperienceEntry, error) {
	entries, err := s.portalRepo.ListExperiences(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list experiences", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	return entries, nil
}

func (s *portalService) listMessages(ctx context.Context, clientID string) ([]domain.PortalMessage, error) {
	messages, err := s.portalRepo.ListMessages(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list messages", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func (s *portalService) send(ctx context.Context, client *domain.Client, sender domain.MessageSender, req dto.SendMessageRequest, defaultLanguage string) (*domain.PortalMessage, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: message text is required", apperrors.ErrValidation)
	}
	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = defaultLanguage
	}
	id, err := utils.GenerateRecordID(MessageIDPrefix)
	if err != nil {
		return nil, err
	}

	message := domain.PortalMessage{
		ID:        id,
		ClientID:  client.ID,
		Timestamp: s.Now(),
		Sender:    sender,
		Text:      text,
		Language:  language,
	}
	if err := s.portalRepo.SaveMessage(ctx, message); err != nil {
		s.logUnexpected(ctx, err, "Failed to save message", slog.String("client_id", client.ID))
		return nil, err
	}
	s.LogInfo(ctx, "Portal message sent",
		slog.String("client_id", client.ID),
		slog.String("sender", string(sender)))
	return &message, nil
}

func toAttachments(reqs []dto.AttachmentRequest) ([]domain.Attachment, error) {
	if len(reqs) > domain.MaxAttachments {
		return nil, fmt.Errorf("%w: at most %d attachments are allowed", apperrors.ErrValidation, domain.MaxAttachments)
	}
	out := make([]domain.Attachment, len(reqs))
	for i, r := range reqs {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: attachment %d has no name", apperrors.ErrValidation, i+1)
		}
		if !domain.IsDataURL(r.Data) {
			return nil, fmt.Errorf("%w: attachment %q is not a base64 data URL", apperrors.ErrValidation, name)
		}
		if len(r.Data) > domain.MaxAttachmentLength {
			return nil, fmt.Errorf("%w: attachment %q is too large", apperrors.ErrValidation, name)
		}
		out[i] = domain.Attachment{Name: name, Type: r.Type, Data: r.Data}
	}
	return out, nil
}
