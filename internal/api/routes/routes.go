package routes

import (
	"github.com/celestine-lau/enactus-app/internal/api/handlers"
	"github.com/celestine-lau/enactus-app/internal/api/middleware"
	"github.com/celestine-lau/enactus-app/internal/auth"
	"github.com/celestine-lau/enactus-app/internal/config"
	"github.com/celestine-lau/enactus-app/internal/database/models"
	"github.com/celestine-lau/enactus-app/internal/repository"
	"github.com/celestine-lau/enactus-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	statusRepo := repository.NewTaskStatusRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	// Services
	userService := service.NewUserService(userRepo, statusRepo, validate)
	taskService := service.NewTaskService(taskRepo, validate)
	assignmentService := service.NewAssignmentService(db)
	teamService := service.NewTeamService(db, teamRepo, userRepo, validate)

	// Auth
	authService, err := auth.NewService(&auth.Config{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL(),
	})
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewHandler(authService, userRepo)
	authMiddleware := auth.NewMiddleware(authService, userRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	teamHandler := handlers.NewTeamHandler(teamService)
	healthHandler := handlers.NewHealthHandler(db)

	// Health and docs
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth endpoints
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/token", authHandler.Token)
		authGroup.GET("/validate", authHandler.Validate)
	}

	// API v1 endpoints: everything behind authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.GET("/:id/tasks", userHandler.GetUserTasks)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
		}

		assignments := v1.Group("/assignments")
		assignments.Use(authMiddleware.RequirePrivilege(models.PrivilegeStaff))
		{
			assignments.POST("", assignmentHandler.AssignTasks)
			assignments.POST("/all", assignmentHandler.AssignAllTasks)
		}

		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.SearchTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/leader", teamHandler.GetTeamLeader)
		}
	}

	return router, nil
}
