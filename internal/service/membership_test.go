package service_test

import (
	"testing"
	"time"

	"meetup-groups-backend/internal/database/models"
	apperrors "meetup-groups-backend/internal/errors"
	"meetup-groups-backend/internal/mocks"
	"meetup-groups-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockGroupRepo      *mocks.MockGroupRepositoryInterface
	membershipService  *service.MembershipService
	validator          *validator.Validate
}

func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockGroupRepo = mocks.NewMockGroupRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.membershipService = service.NewMembershipService(
		suite.mockMembershipRepo, suite.mockUserRepo, suite.mockGroupRepo, suite.validator)
}

func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MembershipServiceTestSuite) TestCreate_Success() {
	req := &service.CreateMembershipRequest{
		UserID:       1,
		GroupID:      2,
		StartingDate: "2024-01-15",
	}

	suite.mockUserRepo.EXPECT().GetByID(int64(1)).Return(&models.User{ID: 1}, nil)
	suite.mockGroupRepo.EXPECT().GetByID(int64(2)).Return(&models.Group{ID: 2}, nil)
	suite.mockMembershipRepo.EXPECT().GetByKey(int64(1), int64(2)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockMembershipRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.Membership) error {
		assert.Equal(suite.T(), int64(1), m.UserID)
		assert.Equal(suite.T(), int64(2), m.GroupID)
		assert.Equal(suite.T(), time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), m.StartingDate)
		return nil
	})

	resp, err := suite.membershipService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.UserID)
	assert.Equal(suite.T(), int64(2), resp.GroupID)
}

func (suite *MembershipServiceTestSuite) TestCreate_BadDate() {
	req := &service.CreateMembershipRequest{
		UserID:       1,
		GroupID:      2,
		StartingDate: "not-a-date",
	}

	resp, err := suite.membershipService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *MembershipServiceTestSuite) TestCreate_UserNotFound() {
	req := &service.CreateMembershipRequest{
		UserID:       99,
		GroupID:      2,
		StartingDate: "2024-01-15",
	}

	suite.mockUserRepo.EXPECT().GetByID(int64(99)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.membershipService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *MembershipServiceTestSuite) TestCreate_GroupNotFound() {
	req := &service.CreateMembershipRequest{
		UserID:       1,
		GroupID:      99,
		StartingDate: "2024-01-15",
	}

	suite.mockUserRepo.EXPECT().GetByID(int64(1)).Return(&models.User{ID: 1}, nil)
	suite.mockGroupRepo.EXPECT().GetByID(int64(99)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.membershipService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupNotFound)
}

func (suite *MembershipServiceTestSuite) TestCreate_AlreadyEnrolled() {
	req := &service.CreateMembershipRequest{
		UserID:       1,
		GroupID:      2,
		StartingDate: "2024-01-15",
	}

	suite.mockUserRepo.EXPECT().GetByID(int64(1)).Return(&models.User{ID: 1}, nil)
	suite.mockGroupRepo.EXPECT().GetByID(int64(2)).Return(&models.Group{ID: 2}, nil)
	suite.mockMembershipRepo.EXPECT().GetByKey(int64(1), int64(2)).
		Return(&models.Membership{UserID: 1, GroupID: 2}, nil)

	resp, err := suite.membershipService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
}

func (suite *MembershipServiceTestSuite) TestGetByKey_Success() {
	membership := &models.Membership{UserID: 1, GroupID: 2}
	suite.mockMembershipRepo.EXPECT().GetByKey(int64(1), int64(2)).Return(membership, nil)

	resp, err := suite.membershipService.GetByKey(1, 2)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), resp.UserID)
}

func (suite *MembershipServiceTestSuite) TestGetByKey_NotFound() {
	suite.mockMembershipRepo.EXPECT().GetByKey(int64(1), int64(2)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.membershipService.GetByKey(1, 2)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

func (suite *MembershipServiceTestSuite) TestGetAll_Success() {
	memberships := []models.Membership{
		{UserID: 1, GroupID: 2},
		{UserID: 3, GroupID: 2},
	}
	suite.mockMembershipRepo.EXPECT().GetAll().Return(memberships, nil)

	resp, err := suite.membershipService.GetAll()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Total)
	assert.Len(suite.T(), resp.Memberships, 2)
}

func (suite *MembershipServiceTestSuite) TestGetByGroup_Success() {
	suite.mockGroupRepo.EXPECT().GetByID(int64(2)).Return(&models.Group{ID: 2}, nil)
	suite.mockMembershipRepo.EXPECT().GetByGroupID(int64(2)).Return([]models.Membership{
		{UserID: 1, GroupID: 2},
	}, nil)

	resp, err := suite.membershipService.GetByGroup(2)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)
}

func (suite *MembershipServiceTestSuite) TestGetByGroup_GroupNotFound() {
	suite.mockGroupRepo.EXPECT().GetByID(int64(99)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.membershipService.GetByGroup(99)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGroupNotFound)
}

func (suite *MembershipServiceTestSuite) TestUpdate_Success() {
	newDate := "2025-06-01"
	req := &service.UpdateMembershipRequest{StartingDate: &newDate}
	parsed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	suite.mockMembershipRepo.EXPECT().GetByKey(int64(1), int64(2)).
		Return(&models.Membership{UserID: 1, GroupID: 2}, nil)
	suite.mockMembershipRepo.EXPECT().Update(int64(1), int64(2),
		map[string]interface{}{"starting_date": parsed}).Return(nil)
	suite.mockMembershipRepo.EXPECT().GetByKey(int64(1), int64(2)).
		Return(&models.Membership{UserID: 1, GroupID: 2, StartingDate: parsed}, nil)

	resp, err := suite.membershipService.Update(1, 2, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), parsed, resp.StartingDate)
}

func (suite *MembershipServiceTestSuite) TestUpdate_NotFound() {
	newDate := "2025-06-01"
	req := &service.UpdateMembershipRequest{StartingDate: &newDate}

	suite.mockMembershipRepo.EXPECT().GetByKey(int64(1), int64(2)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.membershipService.Update(1, 2, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

func (suite *MembershipServiceTestSuite) TestDelete_Success() {
	suite.mockMembershipRepo.EXPECT().GetByKey(int64(1), int64(2)).
		Return(&models.Membership{UserID: 1, GroupID: 2}, nil)
	suite.mockMembershipRepo.EXPECT().Delete(int64(1), int64(2)).Return(nil)

	err := suite.membershipService.Delete(1, 2)

	assert.NoError(suite.T(), err)
}

func (suite *MembershipServiceTestSuite) TestDelete_NotFound() {
	suite.mockMembershipRepo.EXPECT().GetByKey(int64(1), int64(2)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.membershipService.Delete(1, 2)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipNotFound)
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
