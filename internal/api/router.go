package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopsphere/user-system/internal/api/handler"
	"github.com/shopsphere/user-system/internal/api/middleware"
	"github.com/shopsphere/user-system/internal/core/domain"
	"github.com/shopsphere/user-system/internal/core/password"
	"github.com/shopsphere/user-system/internal/core/service"
	mongodb "github.com/shopsphere/user-system/internal/infrastructure/db/mongo"
	redisdb "github.com/shopsphere/user-system/internal/infrastructure/db/redis"
	"github.com/shopsphere/user-system/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered. Every
// dependency is constructed explicitly here; the core never looks anything
// up at runtime.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Core services ---
	hasher, err := password.New(cfg.PasswordScheme)
	if err != nil {
		return nil, err
	}
	issuer, err := service.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.TokenTTL())
	if err != nil {
		return nil, err
	}

	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, hasher, service.NewCredentialPolicy(), log)
	catalogService := service.NewCatalogService(mongodb.NewProductRepository(db), log)
	cartRepo := redisdb.NewCartRepository(rdb)

	authHandler := handler.NewAuthHandler(userService, issuer)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartRepo)

	authRequired := middleware.Auth(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Identity lookup ---
	e.GET("/v1/users/:id", userHandler.GetIdentityInfo, authRequired)

	// --- Catalog ---
	e.GET("/v1/products", productHandler.List, authRequired)
	e.GET("/v1/products/:id", productHandler.Get, authRequired)
	e.POST("/v1/products", productHandler.Create, authRequired, adminOnly)
	e.PUT("/v1/products/:id", productHandler.Update, authRequired, adminOnly)
	e.DELETE("/v1/products/:id", productHandler.Delete, authRequired, adminOnly)

	// --- Cart ---
	e.GET("/v1/cart", cartHandler.Get, authRequired)
	e.PUT("/v1/cart", cartHandler.Put, authRequired)
	e.DELETE("/v1/cart", cartHandler.Clear, authRequired)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e, nil
}
