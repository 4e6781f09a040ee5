package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ar-top/map-api/internal/api/handler"
	"github.com/ar-top/map-api/internal/api/middleware"
	"github.com/ar-top/map-api/internal/core/service"
	"github.com/ar-top/map-api/internal/infrastructure/config"
	mongodb "github.com/ar-top/map-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ar-top/map-api/internal/infrastructure/db/redis"
	"github.com/ar-top/map-api/internal/infrastructure/hash"
	"github.com/ar-top/map-api/internal/infrastructure/http/handlers"
	"github.com/ar-top/map-api/internal/infrastructure/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Store handles are passed in explicitly; nothing here is process-wide state.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("artop"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Dependencies ---
	tokenTTL, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil {
		tokenTTL = 24 * time.Hour
	}
	loginWindow, err := time.ParseDuration(cfg.Login.Window)
	if err != nil {
		loginWindow = 15 * time.Minute
	}

	userRepo := mongodb.NewUserRepository(db)
	mapRepo := mongodb.NewMapRepository(db)
	tokens := token.NewJWTService(cfg.JWTSecret, tokenTTL)
	hasher := hash.NewBcryptHasher(bcrypt.DefaultCost)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, loginWindow)

	validator := service.NewCredentialValidator(userRepo, hasher, tokens, service.PasswordPolicy{
		MinLength:    cfg.Password.MinLength,
		RequireMixed: cfg.Password.RequireMixed,
	})
	accountService := service.NewAccountService(userRepo, hasher, tokens, validator, limiter, log)
	mapService := service.NewMapService(mapRepo, userRepo, tokens, log)

	accountHandler := handler.NewAccountHandler(accountService)
	mapHandler := handler.NewMapHandler(mapService)

	// --- Auth routes ---
	e.POST("/api/register", accountHandler.Register)
	e.POST("/api/login", accountHandler.Login)

	// --- Map routes (claims decoded from the bearer token) ---
	maps := e.Group("/api/map", middleware.Claims(tokens))
	maps.GET("", mapHandler.List)
	maps.POST("", mapHandler.Create)
	maps.GET("/:id", mapHandler.Get)
	maps.PUT("/:id", mapHandler.Update)
	maps.DELETE("/:id", mapHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
