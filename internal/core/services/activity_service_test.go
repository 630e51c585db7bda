package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/analytics"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/core/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ActivityServiceTestSuite struct {
	suite.Suite
	activityRepo *MockActivityRepository
	clientRepo   *MockClientRepository
	service      portssvc.ActivitySvcFacade
	ctx          context.Context
}

func (suite *ActivityServiceTestSuite) SetupTest() {
	suite.activityRepo = new(MockActivityRepository)
	suite.clientRepo = new(MockClientRepository)
	suite.service = services.NewActivityService(suite.activityRepo, suite.clientRepo, services.WithClock(fixedClock))
	suite.ctx = context.Background()
}

func TestActivityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityServiceTestSuite))
}

func (suite *ActivityServiceTestSuite) activityLog() []domain.Activity {
	other := &domain.Actor{Email: "other@multinav.org", FullName: "Omar Other", Role: domain.RoleNavigator}
	return []domain.Activity{
		{ID: "A1", ClientID: "C1", Date: day("2024-06-10"), Authorship: authoredBy(navigatorActor)},
		{ID: "A2", ClientID: "C1", Date: day("2024-06-09"), Authorship: authoredBy(other)},
		{ID: "A3", ClientID: "C9", Date: day("2024-06-08")}, // legacy, dangling client
		{ID: "A4", ClientID: "C1", Date: day("2024-06-10"), Authorship: domain.Authorship{CreatedBy: "NAV@multinav.org"}},
	}
}

func (suite *ActivityServiceTestSuite) TestListActivities_NavigatorScopeAndPaging() {
	suite.activityRepo.On("ListActivities", mock.Anything).Return(suite.activityLog(), nil)
	suite.clientRepo.On("ListClients", mock.Anything).Return([]domain.Client{{ID: "C1", FullName: "Amina"}}, nil)

	page, next, err := suite.service.ListActivities(suite.ctx, navigatorActor, analytics.Criteria{}, 2, "")

	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	suite.Equal("A1", page[0].ID)
	suite.Equal("A4", page[1].ID, "same day ties are ordered by ID")
	suite.Equal("Amina", page[0].ClientName)
	suite.True(page[0].CanEdit)
	suite.NotEmpty(next)

	page, next, err = suite.service.ListActivities(suite.ctx, navigatorActor, analytics.Criteria{}, 2, next)

	suite.Require().NoError(err)
	suite.Require().Len(page, 1)
	suite.Equal("A3", page[0].ID)
	suite.Equal(domain.UnknownClientName, page[0].ClientName)
	suite.Empty(next)
}

func (suite *ActivityServiceTestSuite) TestListActivities_CoordinatorSeesAll() {
	suite.activityRepo.On("ListActivities", mock.Anything).Return(suite.activityLog(), nil)
	suite.clientRepo.On("ListClients", mock.Anything).Return([]domain.Client{}, nil)

	page, next, err := suite.service.ListActivities(suite.ctx, coordinatorActor, analytics.Criteria{}, 0, "")

	suite.Require().NoError(err)
	suite.Len(page, 4)
	suite.Empty(next)
}

func (suite *ActivityServiceTestSuite) TestListActivities_InvalidCriteria() {
	_, _, err := suite.service.ListActivities(suite.ctx, adminActor,
		analytics.Criteria{Start: dayPtr("2024-06-30"), End: dayPtr("2024-06-01")}, 10, "")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.activityRepo.AssertNotCalled(suite.T(), "ListActivities", mock.Anything)
}

func (suite *ActivityServiceTestSuite) TestListActivities_BadToken() {
	suite.activityRepo.On("ListActivities", mock.Anything).Return([]domain.Activity{}, nil)
	suite.clientRepo.On("ListClients", mock.Anything).Return([]domain.Client{}, nil)

	_, _, err := suite.service.ListActivities(suite.ctx, adminActor, analytics.Criteria{}, 10, "%%%")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ActivityServiceTestSuite) TestCreateActivity_StampsAuthorship() {
	suite.clientRepo.On("FindClientByID", mock.Anything, "C1").Return(&domain.Client{ID: "C1", FullName: "Amina"}, nil)
	suite.activityRepo.On("SaveActivity", suite.ctx, mock.MatchedBy(func(a domain.Activity) bool {
		return strings.HasPrefix(a.ID, services.ActivityIDPrefix) &&
			a.CreatedBy == navigatorActor.Email &&
			a.CreatedByName == navigatorActor.FullName &&
			a.CreatedByRole == domain.RoleNavigator &&
			a.CreatedAt != nil && a.CreatedAt.Equal(fixedNow) &&
			a.DischargeDate != nil && a.DischargeDate.Equal(day("2024-06-10"))
	})).Return(nil).Once()

	view, err := suite.service.CreateActivity(suite.ctx, navigatorActor, dto.CreateActivityRequest{
		ClientID:             "C1",
		Date:                 "2024-06-10",
		Location:             "Canning",
		NavigationAssistance: []string{"Medicare Enrollment"},
		IsDischarge:          true,
	})

	suite.Require().NoError(err)
	suite.Equal("Amina", view.ClientName)
	suite.True(view.CanEdit)
	suite.activityRepo.AssertExpectations(suite.T())
}

func (suite *ActivityServiceTestSuite) TestCreateActivity_UnknownClient() {
	suite.clientRepo.On("FindClientByID", mock.Anything, "C404").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CreateActivity(suite.ctx, navigatorActor, dto.CreateActivityRequest{ClientID: "C404", Date: "2024-06-10"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.activityRepo.AssertNotCalled(suite.T(), "SaveActivity", mock.Anything, mock.Anything)
}

func (suite *ActivityServiceTestSuite) TestUpdateActivity_PreservesAuthorship() {
	stamped := fixedNow.AddDate(0, -1, 0)
	original := domain.Activity{ID: "A1", ClientID: "C1", Date: day("2024-06-01"), Authorship: authoredBy(navigatorActor)}
	original.Authorship.CreatedAt = &stamped

	suite.activityRepo.On("FindActivityByID", suite.ctx, "A1").Return(&original, nil).Once()
	suite.clientRepo.On("FindClientByID", mock.Anything, "C1").Return(&domain.Client{ID: "C1", FullName: "Amina"}, nil)
	suite.activityRepo.On("UpdateActivity", suite.ctx, mock.MatchedBy(func(a domain.Activity) bool {
		return a.CreatedBy == navigatorActor.Email && a.CreatedAt.Equal(stamped) && a.FollowUpActions == "call back"
	})).Return(nil).Once()

	view, err := suite.service.UpdateActivity(suite.ctx, adminActor, "A1", dto.UpdateActivityRequest{
		ClientID: "C1", Date: "2024-06-02", FollowUpActions: "call back",
	})

	suite.Require().NoError(err)
	suite.Equal(navigatorActor.Email, view.CreatedBy)
	suite.activityRepo.AssertExpectations(suite.T())
}

func (suite *ActivityServiceTestSuite) TestNavigatorCannotReachOthersActivity() {
	other := domain.Activity{ID: "A2", ClientID: "C1", Authorship: domain.Authorship{CreatedBy: "other@multinav.org", CreatedByName: "Omar"}}
	suite.activityRepo.On("FindActivityByID", suite.ctx, "A2").Return(&other, nil)

	_, err := suite.service.GetActivity(suite.ctx, navigatorActor, "A2")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	err = suite.service.DeleteActivity(suite.ctx, navigatorActor, "A2")
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.activityRepo.AssertNotCalled(suite.T(), "DeleteActivity", mock.Anything, mock.Anything)
}

func (suite *ActivityServiceTestSuite) TestDeleteActivity_Legacy() {
	suite.activityRepo.On("FindActivityByID", suite.ctx, "A3").Return(&domain.Activity{ID: "A3"}, nil)
	suite.activityRepo.On("DeleteActivity", suite.ctx, "A3").Return(nil).Once()

	suite.NoError(suite.service.DeleteActivity(suite.ctx, navigatorActor, "A3"))
	suite.activityRepo.AssertExpectations(suite.T())
}
