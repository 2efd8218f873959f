package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/newsroom/news-api/docs"
	"github.com/newsroom/news-api/internal/api/handler"
	"github.com/newsroom/news-api/internal/api/middleware"
	"github.com/newsroom/news-api/internal/core/service"
	"github.com/newsroom/news-api/internal/core/token"
	mongodb "github.com/newsroom/news-api/internal/infrastructure/db/mongo"
	"github.com/newsroom/news-api/internal/infrastructure/http/handlers"
	"github.com/newsroom/news-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The middleware order matters: authentication resolves the identity first,
// then the policy table gates access before any handler dispatch.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	accountService := service.NewAccountService(userRepo, codec, log)
	articleService := service.NewArticleService(articleRepo, userRepo, log)
	authHandler := handler.NewAuthHandler(accountService)
	articleHandler := handler.NewArticleHandler(articleService)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("news"))
	e.Use(middleware.Authenticate(codec, userRepo))
	e.Use(middleware.Authorize(middleware.DefaultPolicy()))

	// --- Public surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- API v1 ---
	v1 := e.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/authenticate", authHandler.Authenticate)

	articles := v1.Group("/articles")
	articles.POST("", articleHandler.Create)
	articles.GET("/author/:name", articleHandler.ByAuthor)
	articles.GET("/period", articleHandler.ByPeriod)
	articles.GET("/search", articleHandler.Search)
	articles.GET("/:id", articleHandler.Get)
	articles.PUT("/:id", articleHandler.Update)
	articles.DELETE("/:id", articleHandler.Delete)

	return e
}
