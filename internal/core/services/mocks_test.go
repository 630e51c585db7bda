package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portsrepo "github.com/SscSPs/multinav_crm/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	return m.Called(ctx, clientID).Error(0)
}

// --- Mock ActivityRepository ---
type MockActivityRepository struct {
	mock.Mock
}

var _ portsrepo.ActivityRepositoryFacade = (*MockActivityRepository)(nil)

func (m *MockActivityRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindActivityByID(ctx context.Context, activityID string) (*domain.Activity, error) {
	args := m.Called(ctx, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

func (m *MockActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepository) UpdateActivity(ctx context.Context, activity domain.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepository) DeleteActivity(ctx context.Context, activityID string) error {
	return m.Called(ctx, activityID).Error(0)
}

// --- Mock WorkforceRepository ---
type MockWorkforceRepository struct {
	mock.Mock
}

var _ portsrepo.WorkforceRepositoryFacade = (*MockWorkforceRepository)(nil)

func (m *MockWorkforceRepository) ListWorkforce(ctx context.Context) ([]domain.WorkforceEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkforceEntry), args.Error(1)
}

func (m *MockWorkforceRepository) FindWorkforceEntryByID(ctx context.Context, entryID string) (*domain.WorkforceEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkforceEntry), args.Error(1)
}

func (m *MockWorkforceRepository) SaveWorkforceEntry(ctx context.Context, entry domain.WorkforceEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockWorkforceRepository) UpdateWorkforceEntry(ctx context.Context, entry domain.WorkforceEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockWorkforceRepository) DeleteWorkforceEntry(ctx context.Context, entryID string) error {
	return m.Called(ctx, entryID).Error(0)
}

func (m *MockWorkforceRepository) ReplaceWorkforce(ctx context.Context, entries []domain.WorkforceEntry) error {
	return m.Called(ctx, entries).Error(0)
}

// --- Mock StaffRepository ---
type MockStaffRepository struct {
	mock.Mock
}

var _ portsrepo.StaffRepositoryFacade = (*MockStaffRepository)(nil)

func (m *MockStaffRepository) ListStaff(ctx context.Context) ([]domain.StaffAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffAccount), args.Error(1)
}

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffAccount, error) {
	args := m.Called(ctx, staffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffAccount), args.Error(1)
}

func (m *MockStaffRepository) FindStaffByEmail(ctx context.Context, email string) (*domain.StaffAccount, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffAccount), args.Error(1)
}

func (m *MockStaffRepository) SaveStaff(ctx context.Context, staff domain.StaffAccount) error {
	return m.Called(ctx, staff).Error(0)
}

func (m *MockStaffRepository) UpdateStaff(ctx context.Context, staff domain.StaffAccount) error {
	return m.Called(ctx, staff).Error(0)
}

func (m *MockStaffRepository) UpdateLastLogin(ctx context.Context, staffID string, at time.Time) error {
	return m.Called(ctx, staffID, at).Error(0)
}

func (m *MockStaffRepository) DeleteStaff(ctx context.Context, staffID string) error {
	return m.Called(ctx, staffID).Error(0)
}

// --- Mock TokenRevocationRepository ---
type MockRevocationRepository struct {
	mock.Mock
}

var _ portsrepo.TokenRevocationRepository = (*MockRevocationRepository)(nil)

func (m *MockRevocationRepository) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return m.Called(ctx, tokenID, expiresAt).Error(0)
}

func (m *MockRevocationRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// --- Mock InsightNarrator ---
type MockNarrator struct {
	mock.Mock
}

var _ portssvc.InsightNarrator = (*MockNarrator)(nil)

func (m *MockNarrator) Narrate(ctx context.Context, req domain.InsightRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Mock PracticeRepository ---
type MockPracticeRepository struct {
	mock.Mock
}

var _ portsrepo.PracticeRepositoryFacade = (*MockPracticeRepository)(nil)

func (m *MockPracticeRepository) ListPractices(ctx context.Context) ([]domain.GpPractice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GpPractice), args.Error(1)
}
func (m *MockPracticeRepository) FindPracticeByID(ctx context.Context, practiceID string) (*domain.GpPractice, error) {
	args := m.Called(ctx, practiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GpPractice), args.Error(1)
}
func (m *MockPracticeRepository) SavePractice(ctx context.Context, practice domain.GpPractice) error {
	return m.Called(ctx, practice).Error(0)
}
func (m *MockPracticeRepository) UpdatePractice(ctx context.Context, practice domain.GpPractice) error {
	return m.Called(ctx, practice).Error(0)
}
func (m *MockPracticeRepository) DeletePractice(ctx context.Context, practiceID string) error {
	return m.Called(ctx, practiceID).Error(0)
}

// --- Mock ResourceRepository ---
type MockResourceRepository struct {
	mock.Mock
}

var _ portsrepo.ResourceRepositoryFacade = (*MockResourceRepository)(nil)

func (m *MockResourceRepository) ListResources(ctx context.Context) ([]domain.ProgramResource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProgramResource), args.Error(1)
}
func (m *MockResourceRepository) FindResourceByID(ctx context.Context, resourceID string) (*domain.ProgramResource, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgramResource), args.Error(1)
}
func (m *MockResourceRepository) SaveResource(ctx context.Context, resource domain.ProgramResource) error {
	return m.Called(ctx, resource).Error(0)
}
func (m *MockResourceRepository) UpdateResource(ctx context.Context, resource domain.ProgramResource) error {
	return m.Called(ctx, resource).Error(0)
}
func (m *MockResourceRepository) DeleteResource(ctx context.Context, resourceID string) error {
	return m.Called(ctx, resourceID).Error(0)
}

// --- Mock PortalRepository ---
type MockPortalRepository struct {
	mock.Mock
}

var _ portsrepo.PortalRepositoryFacade = (*MockPortalRepository)(nil)

func (m *MockPortalRepository) ListExperiences(ctx context.Context, clientID string) ([]domain.ExperienceEntry, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExperienceEntry), args.Error(1)
}
func (m *MockPortalRepository) SaveExperience(ctx context.Context, entry domain.ExperienceEntry) error {
	return m.Called(ctx, entry).Error(0)
}
func (m *MockPortalRepository) MarkExperienceRead(ctx context.Context, clientID, experienceID string) error {
	return m.Called(ctx, clientID, experienceID).Error(0)
}
func (m *MockPortalRepository) ListMessages(ctx context.Context, clientID string) ([]domain.PortalMessage, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortalMessage), args.Error(1)
}
func (m *MockPortalRepository) SaveMessage(ctx context.Context, message domain.PortalMessage) error {
	return m.Called(ctx, message).Error(0)
}
func (m *MockPortalRepository) MarkMessageRead(ctx context.Context, clientID, messageID string) error {
	return m.Called(ctx, clientID, messageID).Error(0)
}
func (m *MockPortalRepository) ListPortalActivity(ctx context.Context) ([]domain.PortalActivity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PortalActivity), args.Error(1)
}

// --- Fixtures ---

var fixedNow = time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

var (
	adminActor       = &domain.Actor{ID: "S2", Email: "admin@multinav.org", FullName: "Ada Admin", Role: domain.RoleAdmin}
	coordinatorActor = &domain.Actor{ID: "S3", Email: "coord@multinav.org", FullName: "Cora Coordinator", Role: domain.RoleCoordinator}
	navigatorActor   = &domain.Actor{ID: "S1", Email: "nav@multinav.org", FullName: "Nia Navigator", Role: domain.RoleNavigator}
)

func authoredBy(actor *domain.Actor) domain.Authorship {
	return domain.Authorship{CreatedBy: actor.Email, CreatedByName: actor.FullName, CreatedByRole: actor.Role}
}
