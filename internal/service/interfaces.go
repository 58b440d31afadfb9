package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// Actor identifies the authenticated caller of an operation
type Actor struct {
	UserID  int64
	IsAdmin bool
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	CreateAdmin(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id int64) (*UserResponse, error)
	GetAll() (*UserListResponse, error)
	Update(id int64, req *UpdateUserRequest, actor Actor) (*UserResponse, error)
	Delete(id int64) error
}

// GroupServiceInterface defines the interface for group service
type GroupServiceInterface interface {
	Create(req *CreateGroupRequest) (*GroupResponse, error)
	GetByID(id int64) (*GroupResponse, error)
	GetAll() (*GroupListResponse, error)
	Update(id int64, req *UpdateGroupRequest) (*GroupResponse, error)
	Delete(id int64) error
}

// MembershipServiceInterface defines the interface for membership service
type MembershipServiceInterface interface {
	Create(req *CreateMembershipRequest) (*MembershipResponse, error)
	GetByKey(userID, groupID int64) (*MembershipResponse, error)
	GetAll() (*MembershipListResponse, error)
	GetByGroup(groupID int64) (*MembershipListResponse, error)
	Update(userID, groupID int64, req *UpdateMembershipRequest) (*MembershipResponse, error)
	Delete(userID, groupID int64) error
}

// MeetingDateServiceInterface defines the interface for meeting date service
type MeetingDateServiceInterface interface {
	Create(req *CreateMeetingDateRequest) (*MeetingDateResponse, error)
	GetByID(id int64) (*MeetingDateResponse, error)
	GetAll() (*MeetingDateListResponse, error)
	GetByGroup(groupID int64) (*MeetingDateListResponse, error)
	Update(id int64, req *UpdateMeetingDateRequest) (*MeetingDateResponse, error)
	Delete(id int64) error
}
