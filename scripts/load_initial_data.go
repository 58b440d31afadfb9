package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"meetup-groups-backend/internal/auth"
	"meetup-groups-backend/internal/config"
	"meetup-groups-backend/internal/database"
	"meetup-groups-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed file schema
type UserData struct {
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	Password  string `yaml:"password"`
	IsAdmin   bool   `yaml:"is_admin"`
}

type GroupData struct {
	OwnerEmail  string `yaml:"owner_email"`
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	MaxUsers    *int   `yaml:"max_users,omitempty"`
}

type MembershipData struct {
	UserEmail    string `yaml:"user_email"`
	GroupTitle   string `yaml:"group_title"`
	StartingDate string `yaml:"starting_date"`
}

type MeetingDateData struct {
	GroupTitle string `yaml:"group_title"`
	Date       string `yaml:"date"`
	Place      string `yaml:"place"`
	MaxUsers   *int   `yaml:"max_users,omitempty"`
}

type SeedFile struct {
	Users       []UserData        `yaml:"users"`
	Groups      []GroupData       `yaml:"groups"`
	Memberships []MembershipData  `yaml:"memberships"`
	Dates       []MeetingDateData `yaml:"dates"`
}

func main() {
	log.Println("Loading initial data from YAML seed file...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seedPath := "scripts/data/seed.yaml"
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}

	if err := loadSeedFile(db, seedPath); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	passwords := auth.NewPasswordService()

	// Users first so groups can resolve their owners
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range seed.Users {
		user, created, err := createUser(db, passwords, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(seed.Users))

	groupMap := make(map[string]*models.Group)
	groupCreated := 0
	for _, groupData := range seed.Groups {
		group, created, err := createGroup(db, groupData, userMap)
		if err != nil {
			return fmt.Errorf("failed to create group %s: %w", groupData.Title, err)
		}
		groupMap[groupData.Title] = group
		if created {
			groupCreated++
		}
	}
	log.Printf("Groups: %d created, %d total", groupCreated, len(seed.Groups))

	membershipCreated := 0
	for _, membershipData := range seed.Memberships {
		created, err := createMembership(db, membershipData, userMap, groupMap)
		if err != nil {
			return fmt.Errorf("failed to create membership %s/%s: %w",
				membershipData.UserEmail, membershipData.GroupTitle, err)
		}
		if created {
			membershipCreated++
		}
	}
	log.Printf("Memberships: %d created, %d total", membershipCreated, len(seed.Memberships))

	dateCreated := 0
	for _, dateData := range seed.Dates {
		created, err := createMeetingDate(db, dateData, groupMap)
		if err != nil {
			return fmt.Errorf("failed to create date for %s: %w", dateData.GroupTitle, err)
		}
		if created {
			dateCreated++
		}
	}
	log.Printf("Dates: %d created, %d total", dateCreated, len(seed.Dates))

	return nil
}

func createUser(db *gorm.DB, passwords *auth.PasswordService, data UserData) (*models.User, bool, error) {
	var existing models.User
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hash, err := passwords.Hash(data.Password)
	if err != nil {
		return nil, false, err
	}

	user := &models.User{
		Email:        data.Email,
		FirstName:    data.FirstName,
		PasswordHash: hash,
		IsAdmin:      data.IsAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func createGroup(db *gorm.DB, data GroupData, userMap map[string]*models.User) (*models.Group, bool, error) {
	owner, ok := userMap[data.OwnerEmail]
	if !ok {
		return nil, false, fmt.Errorf("unknown owner email %q", data.OwnerEmail)
	}

	var existing models.Group
	err := db.Where("title = ? AND owner_id = ?", data.Title, owner.ID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	group := &models.Group{
		OwnerID:     owner.ID,
		Title:       data.Title,
		Description: data.Description,
		MaxUsers:    data.MaxUsers,
	}
	if err := db.Create(group).Error; err != nil {
		return nil, false, err
	}
	return group, true, nil
}

func createMembership(db *gorm.DB, data MembershipData, userMap map[string]*models.User, groupMap map[string]*models.Group) (bool, error) {
	user, ok := userMap[data.UserEmail]
	if !ok {
		return false, fmt.Errorf("unknown user email %q", data.UserEmail)
	}
	group, ok := groupMap[data.GroupTitle]
	if !ok {
		return false, fmt.Errorf("unknown group title %q", data.GroupTitle)
	}

	var existing models.Membership
	err := db.Where("user_id = ? AND group_id = ?", user.ID, group.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	startingDate, err := parseSeedDate(data.StartingDate)
	if err != nil {
		return false, err
	}

	membership := &models.Membership{
		UserID:       user.ID,
		GroupID:      group.ID,
		StartingDate: startingDate,
	}
	if err := db.Create(membership).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createMeetingDate(db *gorm.DB, data MeetingDateData, groupMap map[string]*models.Group) (bool, error) {
	group, ok := groupMap[data.GroupTitle]
	if !ok {
		return false, fmt.Errorf("unknown group title %q", data.GroupTitle)
	}

	date, err := parseSeedDate(data.Date)
	if err != nil {
		return false, err
	}

	var existing models.MeetingDate
	err = db.Where("group_id = ? AND date = ?", group.ID, date).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	meetingDate := &models.MeetingDate{
		GroupID:  group.ID,
		Date:     date,
		Place:    data.Place,
		MaxUsers: data.MaxUsers,
	}
	if err := db.Create(meetingDate).Error; err != nil {
		return false, err
	}
	return true, nil
}

func parseSeedDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}
