package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/agenthub/agent-api/internal/api/handler"
	"github.com/agenthub/agent-api/internal/api/middleware"
	"github.com/agenthub/agent-api/internal/core/service"
	"github.com/agenthub/agent-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, bcryptCost int, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(middleware.RequestLogger(log))
	e.Use(echoprometheus.NewMiddleware("agent_api"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	agentRepo := postgres.NewAgentRepository(db)
	userService := service.NewUserService(userRepo, bcryptCost, log)
	agentService := service.NewAgentService(agentRepo, log)
	userHandler := handler.NewUserHandler(userService)
	agentHandler := handler.NewAgentHandler(agentService)

	// --- Liveness / observability (no version prefix) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/", handler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Versioned API ---
	v1 := e.Group("/v1")

	user := v1.Group("/user")
	user.POST("/add", userHandler.Create)
	user.GET("", userHandler.GetAll)
	user.GET("/:id", userHandler.GetByID)
	user.PUT("/:id", userHandler.Update)
	user.DELETE("/:id", userHandler.Delete)
	user.GET("/:userId/agents", userHandler.GetAgents)

	agent := v1.Group("/agent")
	agent.POST("/add", agentHandler.Create)
	agent.GET("", agentHandler.GetAll)
	agent.GET("/:id", agentHandler.GetByID)
	agent.PUT("/:id", agentHandler.Update)
	agent.DELETE("/:id", agentHandler.Delete)

	return e
}
