package repository

import (
	"testing"
	"time"

	"meetup-groups-backend/internal/database/models"
	"meetup-groups-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to create a persisted user and group
func (suite *MembershipRepositoryTestSuite) createUserAndGroup() (*models.User, *models.Group) {
	user := suite.factories.User.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(user))

	group := suite.factories.Group.Create(user.ID)
	suite.NoError(NewGroupRepository(suite.baseTestSuite.DB).Create(group))

	return user, group
}

// TestCreate tests enrolling a user in a group
func (suite *MembershipRepositoryTestSuite) TestCreate() {
	user, group := suite.createUserAndGroup()

	membership := suite.factories.Membership.Create(user.ID, group.ID)
	err := suite.repo.Create(membership)

	suite.NoError(err)
	suite.NotZero(membership.CreatedAt)
}

// TestCreateDuplicatePair tests the composite primary key
func (suite *MembershipRepositoryTestSuite) TestCreateDuplicatePair() {
	user, group := suite.createUserAndGroup()

	first := suite.factories.Membership.Create(user.ID, group.ID)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Membership.Create(user.ID, group.ID)
	err := suite.repo.Create(second)

	suite.Error(err)
}

// TestGetByKey tests retrieving a membership by its pair
func (suite *MembershipRepositoryTestSuite) TestGetByKey() {
	user, group := suite.createUserAndGroup()

	membership := suite.factories.Membership.Create(user.ID, group.ID)
	suite.NoError(suite.repo.Create(membership))

	retrieved, err := suite.repo.GetByKey(user.ID, group.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(user.ID, retrieved.UserID)
	suite.Equal(group.ID, retrieved.GroupID)
	suite.Equal(membership.StartingDate.UTC(), retrieved.StartingDate.UTC())
}

// TestGetByKeyNotFound tests retrieving a non-existent membership
func (suite *MembershipRepositoryTestSuite) TestGetByKeyNotFound() {
	membership, err := suite.repo.GetByKey(999999, 999999)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(membership)
}

// TestGetAll tests listing all memberships
func (suite *MembershipRepositoryTestSuite) TestGetAll() {
	user, group := suite.createUserAndGroup()
	other := suite.factories.User.Create()
	suite.NoError(NewUserRepository(suite.baseTestSuite.DB).Create(other))

	suite.NoError(suite.repo.Create(suite.factories.Membership.Create(user.ID, group.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Membership.Create(other.ID, group.ID)))

	memberships, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(memberships, 2)
}

// TestGetByGroupID tests listing memberships of a group
func (suite *MembershipRepositoryTestSuite) TestGetByGroupID() {
	user, group := suite.createUserAndGroup()
	_, otherGroup := suite.createUserAndGroup()

	suite.NoError(suite.repo.Create(suite.factories.Membership.Create(user.ID, group.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Membership.Create(user.ID, otherGroup.ID)))

	memberships, err := suite.repo.GetByGroupID(group.ID)

	suite.NoError(err)
	suite.Len(memberships, 1)
	suite.Equal(group.ID, memberships[0].GroupID)
}

// TestUpdate tests updating the starting date
func (suite *MembershipRepositoryTestSuite) TestUpdate() {
	user, group := suite.createUserAndGroup()

	membership := suite.factories.Membership.Create(user.ID, group.ID)
	suite.NoError(suite.repo.Create(membership))

	newDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	err := suite.repo.Update(user.ID, group.ID, map[string]interface{}{
		"starting_date": newDate,
	})
	suite.NoError(err)

	retrieved, err := suite.repo.GetByKey(user.ID, group.ID)
	suite.NoError(err)
	suite.Equal(newDate, retrieved.StartingDate.UTC())
}

// TestDelete tests removing a membership
func (suite *MembershipRepositoryTestSuite) TestDelete() {
	user, group := suite.createUserAndGroup()

	membership := suite.factories.Membership.Create(user.ID, group.ID)
	suite.NoError(suite.repo.Create(membership))

	err := suite.repo.Delete(user.ID, group.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByKey(user.ID, group.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
