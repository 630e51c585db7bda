package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/dto"
)

// --- Portal: client side ---

func (suite *HandlerTestSuite) TestPortalLogin_Success() {
	client := &domain.Client{ID: "C1A2B3C", FullName: "Priya Client", Languages: []string{"Tamil", "English"}}
	expiresAt := time.Date(2024, 7, 1, 17, 0, 0, 0, time.UTC)
	suite.mockPortal.On("AuthenticateClient", mock.Anything, "C1A2B3C", "s3cret").Return(client, nil).Once()
	suite.mockTokens.On("GeneratePortalToken", mock.Anything, client).Return("portal-token", expiresAt, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/portal/login", "", dto.PortalLoginRequest{ClientID: "C1A2B3C", Password: "s3cret"})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.PortalLoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("portal-token", resp.Token)
	suite.True(expiresAt.Equal(resp.ExpiresAt))
	suite.Equal("Tamil", resp.Client.PreferredLanguage)
}

func (suite *HandlerTestSuite) TestPortalLogin_InvalidCredentials() {
	suite.mockPortal.On("AuthenticateClient", mock.Anything, "C1A2B3C", "wrong").
		Return(nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)).Once()

	w := suite.do(http.MethodPost, "/api/v1/portal/login", "", dto.PortalLoginRequest{ClientID: "C1A2B3C", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid client ID or password", suite.errorBody(w))
}

func (suite *HandlerTestSuite) TestPortalLogin_MissingPassword() {
	w := suite.do(http.MethodPost, "/api/v1/portal/login", "", map[string]string{"clientId": "C1A2B3C"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "Password is required")
}

func (suite *HandlerTestSuite) TestPortalProfile() {
	suite.mockPortal.On("Profile", mock.Anything, isActor(clientActor.ID)).
		Return(&domain.Client{ID: clientActor.ID, FullName: clientActor.FullName}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/portal/me", clientToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.PortalProfile
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.DefaultPortalLanguage, resp.PreferredLanguage)
	suite.Equal([]string{}, resp.Languages)
}

func (suite *HandlerTestSuite) TestSubmitExperience() {
	req := dto.CreateExperienceRequest{
		Content:     "The specialist explained the scan results through an interpreter.",
		Attachments: []dto.AttachmentRequest{{Name: "letter.png", Type: "image/png", Data: "data:image/png;base64,iVBORw0KGgo="}},
	}
	suite.mockPortal.On("SubmitExperience", mock.Anything, isActor(clientActor.ID), req).
		Return(&domain.ExperienceEntry{ID: "E1", ClientID: clientActor.ID, Content: req.Content}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/portal/experiences", clientToken, req)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp domain.ExperienceEntry
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("E1", resp.ID)
}

func (suite *HandlerTestSuite) TestSubmitExperience_TooManyAttachments() {
	attachments := make([]dto.AttachmentRequest, domain.MaxAttachments+1)
	for i := range attachments {
		attachments[i] = dto.AttachmentRequest{Name: fmt.Sprintf("f%d.txt", i), Data: "data:text/plain;base64,aGk="}
	}

	w := suite.do(http.MethodPost, "/api/v1/portal/experiences", clientToken, dto.CreateExperienceRequest{Content: "x", Attachments: attachments})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestSendPortalMessage_StaffForbidden() {
	req := dto.SendMessageRequest{Text: "hello"}
	suite.mockPortal.On("SendClientMessage", mock.Anything, isActor("s-nav"), req).
		Return(nil, fmt.Errorf("%w: portal is for clients", apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodPost, "/api/v1/portal/messages", navigatorToken, req)
	suite.Equal(http.StatusForbidden, w.Code)
}

// --- Portal: staff side ---

func (suite *HandlerTestSuite) TestPortalInbox() {
	last := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	suite.mockPortal.On("PortalInbox", mock.Anything, isActor("s-nav")).Return([]domain.PortalInboxEntry{{
		ClientName:     "Priya Client",
		PortalActivity: domain.PortalActivity{ClientID: "C1A2B3C", Messages: 2, UnreadMessages: 1, LastSubmittedAt: &last},
	}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/portal/inbox", navigatorToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("Priya Client", resp[0]["clientName"])
	suite.Equal("C1A2B3C", resp[0]["clientId"])
	suite.EqualValues(1, resp[0]["unreadMessages"])
}

func (suite *HandlerTestSuite) TestReplyToClient() {
	req := dto.SendMessageRequest{Text: "Your appointment is on Tuesday."}
	suite.mockPortal.On("ReplyToClient", mock.Anything, isActor("s-nav"), "C1A2B3C", req).
		Return(&domain.PortalMessage{ID: "M1", ClientID: "C1A2B3C", Sender: domain.SenderNavigator, Text: req.Text, Language: "English"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/clients/C1A2B3C/messages", navigatorToken, req)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp domain.PortalMessage
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.SenderNavigator, resp.Sender)
}

func (suite *HandlerTestSuite) TestListClientExperiences() {
	suite.mockPortal.On("ListClientExperiences", mock.Anything, isActor("s-nav"), "C1A2B3C").
		Return([]domain.ExperienceEntry{{ID: "E1"}, {ID: "E2", IsRead: true}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/clients/C1A2B3C/experiences", navigatorToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []domain.ExperienceEntry
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
}

func (suite *HandlerTestSuite) TestMarkExperienceRead() {
	suite.mockPortal.On("MarkExperienceRead", mock.Anything, isActor("s-nav"), "C1A2B3C", "E1").Return(nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/clients/C1A2B3C/experiences/E1/read", navigatorToken, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestMarkMessageRead_NotFound() {
	suite.mockPortal.On("MarkMessageRead", mock.Anything, isActor("s-nav"), "C1A2B3C", "M404").
		Return(fmt.Errorf("%w: message M404", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPut, "/api/v1/clients/C1A2B3C/messages/M404/read", navigatorToken, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}
