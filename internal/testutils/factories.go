package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"meetup-groups-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
)

var emailSeq int64

// nextEmail returns a unique test email so factories never trip the
// unique index on users.email
func nextEmail() string {
	n := atomic.AddInt64(&emailSeq, 1)
	return fmt.Sprintf("user%d@test.com", n)
}

// TestPassword is the plaintext behind every factory-created password hash
const TestPassword = "secret123"

// testPasswordHash is computed once; bcrypt at MinCost keeps test setup fast
var testPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Email:        nextEmail(),
		FirstName:    "John",
		PasswordHash: testPasswordHash,
		IsAdmin:      false,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Admin creates a test user with the admin flag set
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.IsAdmin = true
	return user
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group owned by the given user
func (f *GroupFactory) Create(ownerID int64) *models.Group {
	maxUsers := 10
	return &models.Group{
		OwnerID:     ownerID,
		Title:       "Test Group",
		Description: "A test group",
		MaxUsers:    &maxUsers,
	}
}

// WithTitle sets a custom title for the group
func (f *GroupFactory) WithTitle(ownerID int64, title string) *models.Group {
	group := f.Create(ownerID)
	group.Title = title
	return group
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test Membership for the given user and group
func (f *MembershipFactory) Create(userID, groupID int64) *models.Membership {
	return &models.Membership{
		UserID:       userID,
		GroupID:      groupID,
		StartingDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

// MeetingDateFactory provides methods to create test MeetingDate data
type MeetingDateFactory struct{}

// NewMeetingDateFactory creates a new MeetingDateFactory
func NewMeetingDateFactory() *MeetingDateFactory {
	return &MeetingDateFactory{}
}

// Create creates a test MeetingDate for the given group
func (f *MeetingDateFactory) Create(groupID int64) *models.MeetingDate {
	maxUsers := 20
	return &models.MeetingDate{
		GroupID:  groupID,
		Date:     time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC),
		Place:    "Community Hall",
		MaxUsers: &maxUsers,
	}
}

// WithPlace sets a custom place for the meeting date
func (f *MeetingDateFactory) WithPlace(groupID int64, place string) *models.MeetingDate {
	date := f.Create(groupID)
	date.Place = place
	return date
}

// FactorySet provides access to all factories
type FactorySet struct {
	User        *UserFactory
	Group       *GroupFactory
	Membership  *MembershipFactory
	MeetingDate *MeetingDateFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        NewUserFactory(),
		Group:       NewGroupFactory(),
		Membership:  NewMembershipFactory(),
		MeetingDate: NewMeetingDateFactory(),
	}
}
