package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/multinav_crm/internal/apperrors"
	"github.com/SscSPs/multinav_crm/internal/core/domain"
	"github.com/SscSPs/multinav_crm/internal/dto"
)

// --- Practices ---

func (suite *HandlerTestSuite) TestListPractices() {
	suite.mockPractices.On("ListPractices", mock.Anything, isActor("s-nav")).
		Return([]domain.GpPractice{{ID: "G1", Name: "Banksia Medical"}, {ID: "G2", Name: "Karri Family Practice"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/practices", navigatorToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []domain.GpPractice
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("Banksia Medical", resp[0].Name)
}

func (suite *HandlerTestSuite) TestCreatePractice() {
	req := dto.CreatePracticeRequest{Name: "Banksia Medical", Phone: "08 9000 0000", Website: "https://banksia.example.org"}
	suite.mockPractices.On("CreatePractice", mock.Anything, isActor("s-nav"), req).
		Return(&domain.GpPractice{ID: "G1", Name: req.Name, Phone: req.Phone, Website: req.Website}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/practices", navigatorToken, req)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp domain.GpPractice
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("G1", resp.ID)
}

func (suite *HandlerTestSuite) TestCreatePractice_BadWebsite() {
	w := suite.do(http.MethodPost, "/api/v1/practices", navigatorToken, map[string]string{"name": "Banksia", "website": "not a url"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "Website")
}

func (suite *HandlerTestSuite) TestUpdatePractice_NotFound() {
	name := "Renamed"
	suite.mockPractices.On("UpdatePractice", mock.Anything, isActor("s-nav"), "G9", dto.UpdatePracticeRequest{Name: &name}).
		Return(nil, fmt.Errorf("%w: practice G9", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPut, "/api/v1/practices/G9", navigatorToken, map[string]string{"name": name})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeletePractice() {
	suite.mockPractices.On("DeletePractice", mock.Anything, isActor("s-admin"), "G1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/practices/G1", adminToken, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestPractices_ForbiddenForPortalClient() {
	suite.mockPractices.On("ListPractices", mock.Anything, isActor(clientActor.ID)).
		Return(nil, fmt.Errorf("%w: client requires practice-directory", apperrors.ErrForbidden)).Once()

	w := suite.do(http.MethodGet, "/api/v1/practices", clientToken, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("You do not have permission to perform this action", suite.errorBody(w))
}

// --- Resources ---

func (suite *HandlerTestSuite) TestListResources_ByCategory() {
	category := domain.ResourceCategories[1]
	suite.mockResources.On("ListResources", mock.Anything, isActor("s-nav"), category).
		Return([]domain.ProgramResource{{ID: "R1", Name: "Privacy policy", Category: category}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/resources?category="+url.QueryEscape(category), navigatorToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []domain.ProgramResource
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(category, resp[0].Category)
}

func (suite *HandlerTestSuite) TestCreateResource() {
	size := int64(2048)
	req := dto.CreateResourceRequest{
		Category: domain.ResourceCategories[0], FileName: "action-plan.pdf", FileType: "application/pdf",
		FileSize: &size, FileURL: "https://files.example.org/action-plan.pdf",
	}
	suite.mockResources.On("CreateResource", mock.Anything, isActor("s-nav"), mock.MatchedBy(func(r dto.CreateResourceRequest) bool {
		return r.FileName == req.FileName && r.FileSize != nil && *r.FileSize == size
	})).Return(&domain.ProgramResource{ID: "R1", Name: "action-plan", Type: "PDF", Category: req.Category, DateAdded: time.Now()}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/resources", navigatorToken, req)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp domain.ProgramResource
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("PDF", resp.Type)
}

func (suite *HandlerTestSuite) TestCreateResource_MissingFileName() {
	w := suite.do(http.MethodPost, "/api/v1/resources", navigatorToken, map[string]string{"category": domain.ResourceCategories[0]})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "FileName is required")
}

func (suite *HandlerTestSuite) TestDeleteResource_ReturnsRecord() {
	suite.mockResources.On("DeleteResource", mock.Anything, isActor("s-admin"), "R1").
		Return(&domain.ProgramResource{ID: "R1", StoragePath: "resources/action-plan.pdf"}, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/resources/R1", adminToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp domain.ProgramResource
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("resources/action-plan.pdf", resp.StoragePath)
}

// --- Local insights ---

func (suite *HandlerTestSuite) TestLocalInsights() {
	suite.mockInsights.On("LocalAreas", mock.Anything, isActor("s-nav")).Return(domain.LocalAreas, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/local-insights", navigatorToken, nil)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []domain.LocalArea
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, len(domain.LocalAreas))
}
