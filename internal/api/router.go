package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkpress/blog-platform/internal/api/handler"
	"github.com/inkpress/blog-platform/internal/api/middleware"
	"github.com/inkpress/blog-platform/internal/core/service"
	mongodb "github.com/inkpress/blog-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/inkpress/blog-platform/internal/infrastructure/db/redis"
	"github.com/inkpress/blog-platform/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Auth policy: every mutating endpoint sits behind the bearer-token
// middleware, including post update/delete; reads on posts and comments
// are public.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	nameCache := redisdb.NewUsernameCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost, log)
	postService := service.NewPostService(postRepo, userRepo, nameCache, log)
	commentService := service.NewCommentService(commentRepo, postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	authRequired := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// --- Post routes ---
	e.POST("/api/posts", postHandler.Create, authRequired)
	e.GET("/api/posts", postHandler.List)
	e.GET("/api/posts/:id", postHandler.Get)
	e.PUT("/api/posts/:id", postHandler.Update, authRequired)
	e.DELETE("/api/posts/:id", postHandler.Delete, authRequired)

	// --- Comment routes ---
	e.POST("/api/posts/:postId/comments", commentHandler.Create, authRequired)
	e.GET("/api/posts/:postId/comments", commentHandler.ListByPost)
	e.PUT("/api/comments/:id", commentHandler.Update, authRequired)
	e.DELETE("/api/comments/:id", commentHandler.Delete, authRequired)

	// --- Operational surfaces (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
