package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	portssvc "github.com/SscSPs/multinav_crm/internal/core/ports/services"
	"github.com/SscSPs/multinav_crm/internal/core/services"
	"github.com/SscSPs/multinav_crm/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
	ctx      context.Context
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockRepo, services.WithClock(fixedClock))
	suite.ctx = context.Background()
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}

func (suite *ClientServiceTestSuite) TestListClients_DerivesAges() {
	stale := 99
	suite.mockRepo.On("ListClients", suite.ctx).Return([]domain.Client{
		{ID: "C1", FullName: "Amina", DateOfBirth: dayPtr("1990-07-02"), Age: &stale},
	}, nil).Once()

	clients, err := suite.service.ListClients(suite.ctx, navigatorActor)

	suite.Require().NoError(err)
	suite.Require().Len(clients, 1)
	suite.Require().NotNil(clients[0].Age)
	suite.Equal(33, *clients[0].Age, "birthday is tomorrow relative to the clock")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestListClients_UnknownRoleForbidden() {
	stranger := &domain.Actor{ID: "X", Role: domain.Role("volunteer")}

	_, err := suite.service.ListClients(suite.ctx, stranger)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListClients", mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	req := dto.CreateClientRequest{
		FullName:     "  Bao Tran ",
		Sex:          domain.SexFemale,
		DateOfBirth:  "1980-01-15",
		ReferralDate: "2024-06-03",
		Region:       "South",
		Languages:    []string{"Vietnamese"},
		Password:     "portal-pass",
	}
	suite.mockRepo.On("SaveClient", suite.ctx, mock.MatchedBy(func(c domain.Client) bool {
		return strings.HasPrefix(c.ID, services.ClientIDPrefix) &&
			c.FullName == "Bao Tran" &&
			c.Region == domain.RegionSouth &&
			c.PasswordHash != "" && c.PasswordHash != "portal-pass" &&
			c.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(suite.ctx, navigatorActor, req)

	suite.Require().NoError(err)
	suite.Len(client.ID, 7)
	suite.Require().NotNil(client.Age)
	suite.Equal(44, *client.Age)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_StoredAgeOnlyWithoutDOB() {
	age := 40
	suite.mockRepo.On("SaveClient", suite.ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.DateOfBirth == nil && c.Age != nil && *c.Age == 40
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(suite.ctx, nil, dto.CreateClientRequest{
		FullName: "Legacy", Sex: domain.SexMale, Age: &age, ReferralDate: "2024-01-01", Region: "North",
	})

	suite.Require().NoError(err)
	suite.Equal(40, *client.Age)
}

func (suite *ClientServiceTestSuite) TestCreateClient_FutureDOBRejected() {
	_, err := suite.service.CreateClient(suite.ctx, adminActor, dto.CreateClientRequest{
		FullName: "Future", Sex: domain.SexMale, DateOfBirth: "2030-01-01", ReferralDate: "2024-01-01", Region: "North",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_DOBReplacesStoredAge() {
	age := 51
	suite.mockRepo.On("FindClientByID", suite.ctx, "C1").
		Return(&domain.Client{ID: "C1", FullName: "Old", Age: &age}, nil).Once()
	suite.mockRepo.On("UpdateClient", suite.ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.Age == nil && c.DateOfBirth != nil && c.FullName == "Old"
	})).Return(nil).Once()

	dob := "1970-03-01"
	client, err := suite.service.UpdateClient(suite.ctx, coordinatorActor, "C1", dto.UpdateClientRequest{DateOfBirth: &dob})

	suite.Require().NoError(err)
	suite.Equal(54, *client.Age)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_NotFound() {
	suite.mockRepo.On("FindClientByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateClient(suite.ctx, adminActor, "missing", dto.UpdateClientRequest{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestDeleteClient() {
	suite.mockRepo.On("DeleteClient", suite.ctx, "C1").Return(nil).Once()

	suite.NoError(suite.service.DeleteClient(suite.ctx, adminActor, "C1"))
	suite.mockRepo.AssertExpectations(suite.T())
}
