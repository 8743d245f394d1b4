package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	Tokens        *auth.TokenManager
	Store         *storage.LocalStore
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	// Resume artifacts are served back as static files by stored name
	r.Static("/uploads", deps.Store.Dir())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimit(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))

	// Authenticated routes, plus an admin-only subset on top
	protected := v1.Group("")
	protected.Use(middleware.Authenticate(deps.Tokens, deps.AuthUC))

	admin := protected.Group("")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	NewAuthHandler(v1, protected, deps.AuthUC, loginLimiter)
	NewJobHandler(v1, admin, deps.JobUC)
	NewApplicationHandler(protected, admin, deps.ApplicationUC, deps.Store, deps.Config.MaxUploadSizeMB)

	return r
}
