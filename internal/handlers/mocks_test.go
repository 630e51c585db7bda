package handlers_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"

	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) ListClients(ctx context.Context, actor *domain.Actor) ([]domain.Client, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) GetClient(ctx context.Context, actor *domain.Actor, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, actor, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) CreateClient(ctx context.Context, actor *domain.Actor, req dto.CreateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) UpdateClient(ctx context.Context, actor *domain.Actor, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, actor, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientService) DeleteClient(ctx context.Context, actor *domain.Actor, clientID string) error {
	return m.Called(ctx, actor, clientID).Error(0)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock ActivityService ---
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) ListActivities(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria, limit int, nextToken string) ([]domain.ActivityView, string, error) {
	args := m.Called(ctx, actor, criteria, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.ActivityView), args.String(1), args.Error(2)
}
func (m *MockActivityService) GetActivity(ctx context.Context, actor *domain.Actor, activityID string) (*domain.ActivityView, error) {
	args := m.Called(ctx, actor, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityView), args.Error(1)
}
func (m *MockActivityService) CreateActivity(ctx context.Context, actor *domain.Actor, req dto.CreateActivityRequest) (*domain.ActivityView, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityView), args.Error(1)
}
func (m *MockActivityService) UpdateActivity(ctx context.Context, actor *domain.Actor, activityID string, req dto.UpdateActivityRequest) (*domain.ActivityView, error) {
	args := m.Called(ctx, actor, activityID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityView), args.Error(1)
}
func (m *MockActivityService) DeleteActivity(ctx context.Context, actor *domain.Actor, activityID string) error {
	return m.Called(ctx, actor, activityID).Error(0)
}

var _ portssvc.ActivitySvcFacade = (*MockActivityService)(nil)

// --- Mock WorkforceService ---
type MockWorkforceService struct {
	mock.Mock
}

func (m *MockWorkforceService) GetWorkforce(ctx context.Context, actor *domain.Actor) (domain.WorkforceData, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(domain.WorkforceData), args.Error(1)
}
func (m *MockWorkforceService) CreateWorkforceEntry(ctx context.Context, actor *domain.Actor, req dto.CreateWorkforceEntryRequest) (*domain.WorkforceEntry, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkforceEntry), args.Error(1)
}
func (m *MockWorkforceService) UpdateWorkforceEntry(ctx context.Context, actor *domain.Actor, entryID string, req dto.UpdateWorkforceEntryRequest) (*domain.WorkforceEntry, error) {
	args := m.Called(ctx, actor, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkforceEntry), args.Error(1)
}
func (m *MockWorkforceService) DeleteWorkforceEntry(ctx context.Context, actor *domain.Actor, entryID string) error {
	return m.Called(ctx, actor, entryID).Error(0)
}
func (m *MockWorkforceService) ReplaceWorkforce(ctx context.Context, actor *domain.Actor, data domain.WorkforceData) (domain.WorkforceData, error) {
	args := m.Called(ctx, actor, data)
	return args.Get(0).(domain.WorkforceData), args.Error(1)
}

var _ portssvc.WorkforceSvcFacade = (*MockWorkforceService)(nil)

// --- Mock StaffService ---
type MockStaffService struct {
	mock.Mock
}

func (m *MockStaffService) ListStaff(ctx context.Context, actor *domain.Actor) ([]domain.StaffAccount, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffAccount), args.Error(1)
}
func (m *MockStaffService) GetStaff(ctx context.Context, actor *domain.Actor, staffID string) (*domain.StaffAccount, error) {
	args := m.Called(ctx, actor, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffAccount), args.Error(1)
}
func (m *MockStaffService) CreateStaff(ctx context.Context, actor *domain.Actor, req dto.CreateStaffRequest) (*domain.StaffAccount, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffAccount), args.Error(1)
}
func (m *MockStaffService) UpdateStaff(ctx context.Context, actor *domain.Actor, staffID string, req dto.UpdateStaffRequest) (*domain.StaffAccount, error) {
	args := m.Called(ctx, actor, staffID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffAccount), args.Error(1)
}
func (m *MockStaffService) DeleteStaff(ctx context.Context, actor *domain.Actor, staffID string) error {
	return m.Called(ctx, actor, staffID).Error(0)
}
func (m *MockStaffService) AuthenticateStaff(ctx context.Context, email, password string) (*domain.StaffAccount, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffAccount), args.Error(1)
}
func (m *MockStaffService) AuthenticateGoogle(ctx context.Context, identity domain.GoogleIdentity) (*domain.StaffAccount, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffAccount), args.Error(1)
}

var _ portssvc.StaffSvcFacade = (*MockStaffService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Capabilities(ctx context.Context, actor *domain.Actor) domain.CapabilitySet {
	return m.Called(ctx, actor).Get(0).(domain.CapabilitySet)
}
func (m *MockReportingService) Overview(ctx context.Context, actor *domain.Actor) (*domain.OverviewReport, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OverviewReport), args.Error(1)
}
func (m *MockReportingService) ProgramReport(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) (*domain.ProgramReport, error) {
	args := m.Called(ctx, actor, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgramReport), args.Error(1)
}
func (m *MockReportingService) ProgramInsights(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) ([]domain.Insight, error) {
	args := m.Called(ctx, actor, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Insight), args.Error(1)
}
func (m *MockReportingService) UnifiedReport(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) (*domain.UnifiedReport, error) {
	args := m.Called(ctx, actor, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UnifiedReport), args.Error(1)
}
func (m *MockReportingService) WorkforceReport(ctx context.Context, actor *domain.Actor) (*domain.WorkforceSummary, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkforceSummary), args.Error(1)
}
func (m *MockReportingService) StaffPerformance(ctx context.Context, actor *domain.Actor, criteria analytics.Criteria) (*domain.StaffPerformanceReport, error) {
	args := m.Called(ctx, actor, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffPerformanceReport), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, staff *domain.StaffAccount) (string, time.Time, error) {
	args := m.Called(ctx, staff)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) GeneratePortalToken(ctx context.Context, client *domain.Client) (string, time.Time, error) {
	args := m.Called(ctx, client)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) ValidateAccessToken(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockTokenService) RevokeSession(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return m.Called(ctx, state).String(0)
}
func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
func (m *MockGoogleOAuthService) VerifyIdentity(ctx context.Context, token *oauth2.Token) (*domain.GoogleIdentity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleIdentity), args.Error(1)
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Mock PracticeService ---
type MockPracticeService struct {
	mock.Mock
}

func (m *MockPracticeService) ListPractices(ctx context.Context, actor *domain.Actor) ([]domain.GpPractice, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GpPractice), args.Error(1)
}
func (m *MockPracticeService) GetPractice(ctx context.Context, actor *domain.Actor, practiceID string) (*domain.GpPractice, error) {
	args := m.Called(ctx, actor, practiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GpPractice), args.Error(1)
}
func (m *MockPracticeService) CreatePractice(ctx context.Context, actor *domain.Actor, req dto.CreatePracticeRequest) (*domain.GpPractice, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GpPractice), args.Error(1)
}
func (m *MockPracticeService) UpdatePractice(ctx context.Context, actor *domain.Actor, practiceID string, req dto.UpdatePracticeRequest) (*domain.GpPractice, error) {
	args := m.Called(ctx, actor, practiceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GpPractice), args.Error(1)
}
func (m *MockPracticeService) DeletePractice(ctx context.Context, actor *domain.Actor, practiceID string) error {
	return m.Called(ctx, actor, practiceID).Error(0)
}

var _ portssvc.PracticeSvcFacade = (*MockPracticeService)(nil)

// --- Mock ResourceService ---
type MockResourceService struct {
	mock.Mock
}

func (m *MockResourceService) ListResources(ctx context.Context, actor *domain.Actor, category string) ([]domain.ProgramResource, error) {
	args := m.Called(ctx, actor, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProgramResource), args.Error(1)
}
func (m *MockResourceService) GetResource(ctx context.Context, actor *domain.Actor, resourceID string) (*domain.ProgramResource, error) {
	args := m.Called(ctx, actor, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgramResource), args.Error(1)
}
func (m *MockResourceService) CreateResource(ctx context.Context, actor *domain.Actor, req dto.CreateResourceRequest) (*domain.ProgramResource, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgramResource), args.Error(1)
}
func (m *MockResourceService) UpdateResource(ctx context.Context, actor *domain.Actor, resourceID string, req dto.UpdateResourceRequest) (*domain.ProgramResource, error) {
	args := m.Called(ctx, actor, resourceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgramResource), args.Error(1)
}
func (m *MockResourceService) DeleteResource(ctx context.Context, actor *domain.Actor, resourceID string) (*domain.ProgramResource, error) {
	args := m.Called(ctx, actor, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgramResource), args.Error(1)
}

var _ portssvc.ResourceSvcFacade = (*MockResourceService)(nil)

// --- Mock LocalInsightsService ---
type MockLocalInsightsService struct {
	mock.Mock
}

func (m *MockLocalInsightsService) LocalAreas(ctx context.Context, actor *domain.Actor) ([]domain.LocalArea, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LocalArea), args.Error(1)
}

var _ portssvc.LocalInsightsSvc = (*MockLocalInsightsService)(nil)

// --- Mock PortalService ---
type MockPortalService struct {
	mock.Mock
}

func (m *MockPortalService) AuthenticateClient(ctx context.Context, clientID, password string) (*domain.Client, error) {
	args := m.Called(ctx, clientID, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockPortalService) Profile(ctx context.Context, actor *domain.Actor) (*domain.Client, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockPortalService) ListOwnExperiences(ctx context.Context, actor *domain.Actor) ([]domain.ExperienceEntry, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExperienceEntry), args.Error(1)
}
func (m *MockPortalService) SubmitExperience(ctx context.Context, actor *domain.Actor, req dto.CreateExperienceRequest) (*domain.ExperienceEntry, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExperienceEntry), args.Error(1)
}
func (m *MockPortalService) ListOwnMessages(ctx context.Context, actor *domain.Actor) ([]domain.PortalMessage, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortalMessage), args.Error(1)
}
func (m *MockPortalService) SendClientMessage(ctx context.Context, actor *domain.Actor, req dto.SendMessageRequest) (*domain.PortalMessage, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortalMessage), args.Error(1)
}
func (m *MockPortalService) PortalInbox(ctx context.Context, actor *domain.Actor) ([]domain.PortalInboxEntry, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortalInboxEntry), args.Error(1)
}
func (m *MockPortalService) ListClientExperiences(ctx context.Context, actor *domain.Actor, clientID string) ([]domain.ExperienceEntry, error) {
	args := m.Called(ctx, actor, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExperienceEntry), args.Error(1)
}
func (m *MockPortalService) MarkExperienceRead(ctx context.Context, actor *domain.Actor, clientID, experienceID string) error {
	return m.Called(ctx, actor, clientID, experienceID).Error(0)
}
func (m *MockPortalService) ListClientMessages(ctx context.Context, actor *domain.Actor, clientID string) ([]domain.PortalMessage, error) {
	args := m.Called(ctx, actor, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortalMessage), args.Error(1)
}
func (m *MockPortalService) ReplyToClient(ctx context.Context, actor *domain.Actor, clientID string, req dto.SendMessageRequest) (*domain.PortalMessage, error) {
	args := m.Called(ctx, actor, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortalMessage), args.Error(1)
}
func (m *MockPortalService) MarkMessageRead(ctx context.Context, actor *domain.Actor, clientID, messageID string) error {
	return m.Called(ctx, actor, clientID, messageID).Error(0)
}

var _ portssvc.PortalSvcFacade = (*MockPortalService)(nil)
