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

// MeetingDateHandlerTestSuite tests the MeetingDateHandler
type MeetingDateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockMeetingDateServiceInterface
	handler     *MeetingDateHandler
}

// SetupSuite sets up the test suite
func (suite *MeetingDateHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *MeetingDateHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMeetingDateServiceInterface(suite.ctrl)
	suite.handler = NewMeetingDateHandler(suite.mockService)

	suite.router = gin.New()

	dates := suite.router.Group("/dates")
	{
		dates.POST("", suite.handler.CreateMeetingDate)
		dates.GET("", suite.handler.ListMeetingDates)
		dates.GET("/:id", suite.handler.GetMeetingDate)
		dates.PUT("/:id", suite.handler.UpdateMeetingDate)
		dates.DELETE("/:id", suite.handler.DeleteMeetingDate)
	}
	suite.router.GET("/groups/:id/dates", suite.handler.GetGroupMeetingDates)
}

// TearDownTest cleans up after each test
func (suite *MeetingDateHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMeetingDate tests scheduling a new meeting date
func (suite *MeetingDateHandlerTestSuite) TestCreateMeetingDate() {
	request := service.CreateMeetingDateRequest{
		GroupID: 2,
		Date:    "2024-03-01 18:30:00",
		Place:   "Community Hall",
	}
	expectedResponse := &service.MeetingDateResponse{
		ID:      5,
		GroupID: 2,
		Place:   "Community Hall",
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/dates", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.MeetingDateResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5), response.ID)
	assert.Equal(suite.T(), "Community Hall", response.Place)
}

// TestCreateMeetingDateGroupNotFound tests scheduling for a missing group
func (suite *MeetingDateHandlerTestSuite) TestCreateMeetingDateGroupNotFound() {
	request := service.CreateMeetingDateRequest{
		GroupID: 99,
		Date:    "2024-03-01",
		Place:   "Community Hall",
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrGroupNotFound)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/dates", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCreateMeetingDateBadDate tests scheduling with an unparseable date
func (suite *MeetingDateHandlerTestSuite) TestCreateMeetingDateBadDate() {
	request := service.CreateMeetingDateRequest{
		GroupID: 2,
		Date:    "next friday",
		Place:   "Community Hall",
	}

	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("date", "invalid date format"))

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/dates", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetMeetingDate tests retrieving a meeting date
func (suite *MeetingDateHandlerTestSuite) TestGetMeetingDate() {
	expectedResponse := &service.MeetingDateResponse{ID: 5, GroupID: 2}

	suite.mockService.EXPECT().
		GetByID(int64(5)).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/dates/5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.MeetingDateResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5), response.ID)
}

// TestGetMeetingDateNotFound tests retrieving a missing meeting date
func (suite *MeetingDateHandlerTestSuite) TestGetMeetingDateNotFound() {
	suite.mockService.EXPECT().
		GetByID(int64(5)).
		Return(nil, apperrors.ErrMeetingDateNotFound)

	req := httptest.NewRequest(http.MethodGet, "/dates/5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetMeetingDateInvalidID tests a non-numeric date ID
func (suite *MeetingDateHandlerTestSuite) TestGetMeetingDateInvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/dates/abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListMeetingDates tests listing all meeting dates
func (suite *MeetingDateHandlerTestSuite) TestListMeetingDates() {
	expectedResponse := &service.MeetingDateListResponse{
		Dates: []service.MeetingDateResponse{{ID: 1}, {ID: 2}},
		Total: 2,
	}

	suite.mockService.EXPECT().
		GetAll().
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/dates", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.MeetingDateListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, response.Total)
}

// TestGetGroupMeetingDates tests listing the meeting dates of a group
func (suite *MeetingDateHandlerTestSuite) TestGetGroupMeetingDates() {
	expectedResponse := &service.MeetingDateListResponse{
		Dates: []service.MeetingDateResponse{{ID: 1, GroupID: 2}},
		Total: 1,
	}

	suite.mockService.EXPECT().
		GetByGroup(int64(2)).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/groups/2/dates", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestGetGroupMeetingDatesGroupNotFound tests listing dates of a missing group
func (suite *MeetingDateHandlerTestSuite) TestGetGroupMeetingDatesGroupNotFound() {
	suite.mockService.EXPECT().
		GetByGroup(int64(99)).
		Return(nil, apperrors.ErrGroupNotFound)

	req := httptest.NewRequest(http.MethodGet, "/groups/99/dates", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUpdateMeetingDate tests updating a meeting date
func (suite *MeetingDateHandlerTestSuite) TestUpdateMeetingDate() {
	newPlace := "Rooftop"
	request := service.UpdateMeetingDateRequest{Place: &newPlace}
	expectedResponse := &service.MeetingDateResponse{ID: 5, Place: "Rooftop"}

	suite.mockService.EXPECT().
		Update(int64(5), gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPut, "/dates/5", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestUpdateMeetingDateNotFound tests updating a missing meeting date
func (suite *MeetingDateHandlerTestSuite) TestUpdateMeetingDateNotFound() {
	newPlace := "Rooftop"
	request := service.UpdateMeetingDateRequest{Place: &newPlace}

	suite.mockService.EXPECT().
		Update(int64(5), gomock.Any()).
		Return(nil, apperrors.ErrMeetingDateNotFound)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPut, "/dates/5", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestDeleteMeetingDate tests deleting a meeting date
func (suite *MeetingDateHandlerTestSuite) TestDeleteMeetingDate() {
	suite.mockService.EXPECT().
		Delete(int64(5)).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/dates/5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestDeleteMeetingDateNotFound tests deleting a missing meeting date
func (suite *MeetingDateHandlerTestSuite) TestDeleteMeetingDateNotFound() {
	suite.mockService.EXPECT().
		Delete(int64(5)).
		Return(apperrors.ErrMeetingDateNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/dates/5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestMeetingDateHandlerTestSuite runs the test suite
func TestMeetingDateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingDateHandlerTestSuite))
}
