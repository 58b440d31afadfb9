package routes

import (
	"net/http"

	"meetup-groups-backend/internal/api/handlers"
	"meetup-groups-backend/internal/api/middleware"
	"meetup-groups-backend/internal/auth"
	"meetup-groups-backend/internal/config"
	"meetup-groups-backend/internal/repository"
	"meetup-groups-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
//
// Each route names its guards explicitly. Guards run in middleware order
// before the handler, so an admin route always verifies the token before
// checking the admin claim.
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	meetingDateRepo := repository.NewMeetingDateRepository(db)

	// Initialize auth services
	authService := auth.NewAuthService(cfg, userRepo)
	authMiddleware := auth.NewAuthMiddleware(authService)
	requireAuth := authMiddleware.RequireAuth()
	adminOnly := authMiddleware.AdminOnly()

	// Initialize services
	passwords := auth.NewPasswordService()
	userService := service.NewUserService(userRepo, passwords, validator)
	groupService := service.NewGroupService(groupRepo, userRepo, validator)
	membershipService := service.NewMembershipService(membershipRepo, userRepo, groupRepo, validator)
	meetingDateService := service.NewMeetingDateService(meetingDateRepo, groupRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := auth.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	groupHandler := handlers.NewGroupHandler(groupService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	meetingDateHandler := handlers.NewMeetingDateHandler(meetingDateService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	router.POST("/login", authHandler.Login)
	router.GET("/protected", requireAuth, authHandler.Protected)
	router.GET("/admin-only", requireAuth, adminOnly, authHandler.AdminOnly)

	// Admin creation is itself admin-gated
	router.POST("/admin", requireAuth, adminOnly, userHandler.CreateAdmin)

	// User routes
	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", requireAuth, userHandler.UpdateUser)
		users.DELETE("/:id", requireAuth, adminOnly, userHandler.DeleteUser)
	}

	// Group routes
	groups := router.Group("/groups")
	{
		groups.POST("", groupHandler.CreateGroup)
		groups.GET("", groupHandler.ListGroups)
		groups.GET("/:id", groupHandler.GetGroup)
		groups.PUT("/:id", groupHandler.UpdateGroup)
		groups.DELETE("/:id", requireAuth, adminOnly, groupHandler.DeleteGroup)
		groups.GET("/:id/members", membershipHandler.GetGroupMembers)
		groups.GET("/:id/dates", meetingDateHandler.GetGroupMeetingDates)
	}

	// Membership routes, keyed by the (user, group) pair
	memberships := router.Group("/users_in_groups")
	{
		memberships.POST("", membershipHandler.CreateMembership)
		memberships.GET("", membershipHandler.ListMemberships)
		memberships.GET("/:userID/:groupID", membershipHandler.GetMembership)
		memberships.PUT("/:userID/:groupID", membershipHandler.UpdateMembership)
		memberships.DELETE("/:userID/:groupID", requireAuth, adminOnly, membershipHandler.DeleteMembership)
	}

	// Meeting date routes
	dates := router.Group("/dates")
	{
		dates.POST("", meetingDateHandler.CreateMeetingDate)
		dates.GET("", meetingDateHandler.ListMeetingDates)
		dates.GET("/:id", meetingDateHandler.GetMeetingDate)
		dates.PUT("/:id", meetingDateHandler.UpdateMeetingDate)
		dates.DELETE("/:id", requireAuth, adminOnly, meetingDateHandler.DeleteMeetingDate)
	}

	// Unknown routes answer JSON like everything else
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return router
}
