package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pizzastore/auth-system/docs"
	"github.com/pizzastore/auth-system/internal/api/handler"
	"github.com/pizzastore/auth-system/internal/api/middleware"
	"github.com/pizzastore/auth-system/internal/core/service"
	"github.com/pizzastore/auth-system/internal/infrastructure/config"
	mongodb "github.com/pizzastore/auth-system/internal/infrastructure/db/mongo"
	redisdb "github.com/pizzastore/auth-system/internal/infrastructure/db/redis"
	"github.com/pizzastore/auth-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	cookie := middleware.CookieConfig{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Env == "production",
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pizzastore"))
	e.Use(middleware.Session(cookie))

	// --- Dependencies ---
	customerRepo := mongodb.NewCustomerRepository(db)
	workerRepo := mongodb.NewWorkerRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb, cfg.Session.TTL)
	hasher := timedHasher{inner: service.NewBcryptHasher(cfg.BcryptCost)}
	resolver := service.NewLoginTypeResolver(cfg.CompanyEmailDomain)
	authService := service.NewAuthService(customerRepo, workerRepo, sessionStore, hasher, resolver, log)
	authHandler := handler.NewAuthHandler(authService, cookie)

	// --- Auth routes ---
	e.GET("/auth/status", authHandler.Status)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/identify", authHandler.Identify)
	e.POST("/auth/signin/customer", authHandler.CustomerSignIn)
	e.POST("/auth/signin/worker", authHandler.WorkerSignIn)
	e.POST("/auth/register", authHandler.Register)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
