package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "meetup-groups-backend/internal/errors"
	"meetup-groups-backend/internal/mocks"
	"meetup-groups-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GroupHandlerTestSuite tests the GroupHandler
type GroupHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockGroupServiceInterface
	handler     *GroupHandler
}

// SetupSuite sets up the test suite
func (suite *GroupHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *GroupHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGroupServiceInterface(suite.ctrl)
	suite.handler = NewGroupHandler(suite.mockService)

	suite.router = gin.New()

	groups := suite.router.Group("/groups")
	{
		groups.POST("", suite.handler.CreateGroup)
		groups.GET("", suite.handler.ListGroups)
		groups.GET("/:id", suite.handler.GetGroup)
		groups.PUT("/:id", suite.handler.UpdateGroup)
		groups.DELETE("/:id", suite.handler.DeleteGroup)
	}
}

// TearDownTest cleans up after each test
func (suite *GroupHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGroup tests creating a new group
func (suite *GroupHandlerTestSuite) TestCreateGroup() {
	request := service.CreateGroupRequest{
		OwnerID:     1,
		Title:       "Go Meetup",
		Description: "Monthly Go talks",
	}
	expectedResponse := &service.GroupResponse{
		GroupID: 10,
		OwnerID: 1,
		Title:   "Go Meetup",
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/groups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.GroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(10), response.GroupID)
	assert.Equal(suite.T(), "Go Meetup", response.Title)
}

// TestCreateGroupOwnerNotFound tests creating a group with a missing owner
func (suite *GroupHandlerTestSuite) TestCreateGroupOwnerNotFound() {
	request := service.CreateGroupRequest{
		OwnerID: 99,
		Title:   "Orphan Group",
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrUserNotFound)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/groups", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetGroup tests retrieving a group
func (suite *GroupHandlerTestSuite) TestGetGroup() {
	expectedResponse := &service.GroupResponse{GroupID: 10, Title: "Go Meetup"}

	suite.mockService.EXPECT().
		GetByID(int64(10)).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/groups/10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.GroupResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(10), response.GroupID)
}

// TestGetGroupNotFound tests retrieving a missing group
func (suite *GroupHandlerTestSuite) TestGetGroupNotFound() {
	suite.mockService.EXPECT().
		GetByID(int64(10)).
		Return(nil, apperrors.ErrGroupNotFound)

	req := httptest.NewRequest(http.MethodGet, "/groups/10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetGroupInvalidID tests a non-numeric group ID
func (suite *GroupHandlerTestSuite) TestGetGroupInvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/groups/abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListGroups tests listing all groups
func (suite *GroupHandlerTestSuite) TestListGroups() {
	expectedResponse := &service.GroupListResponse{
		Groups: []service.GroupResponse{{GroupID: 1}, {GroupID: 2}},
		Total:  2,
	}

	suite.mockService.EXPECT().
		GetAll().
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/groups", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.GroupListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, response.Total)
}

// TestUpdateGroup tests updating a group
func (suite *GroupHandlerTestSuite) TestUpdateGroup() {
	newTitle := "Renamed"
	request := service.UpdateGroupRequest{Title: &newTitle}
	expectedResponse := &service.GroupResponse{GroupID: 10, Title: "Renamed"}

	suite.mockService.EXPECT().
		Update(int64(10), gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPut, "/groups/10", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestUpdateGroupNotFound tests updating a missing group
func (suite *GroupHandlerTestSuite) TestUpdateGroupNotFound() {
	newTitle := "Renamed"
	request := service.UpdateGroupRequest{Title: &newTitle}

	suite.mockService.EXPECT().
		Update(int64(10), gomock.Any()).
		Return(nil, apperrors.ErrGroupNotFound)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPut, "/groups/10", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDeleteGroup tests deleting a group
func (suite *GroupHandlerTestSuite) TestDeleteGroup() {
	suite.mockService.EXPECT().
		Delete(int64(10)).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/groups/10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestDeleteGroupNotFound tests deleting a missing group
func (suite *GroupHandlerTestSuite) TestDeleteGroupNotFound() {
	suite.mockService.EXPECT().
		Delete(int64(10)).
		Return(apperrors.ErrGroupNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/groups/10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGroupHandlerTestSuite runs the test suite
func TestGroupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GroupHandlerTestSuite))
}
