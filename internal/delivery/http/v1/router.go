package v1

import (
	"net/http"
	"time"

	"go-jobmarket-backend/config"
	"go-jobmarket-backend/internal/delivery/http/middleware"
	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC            domain.AuthUsecase
	SeekerProfileUC   domain.SeekerProfileUsecase
	EmployerProfileUC domain.EmployerProfileUsecase
	JobUC             domain.JobUsecase
	ApplicationUC     domain.ApplicationUsecase
	FeedUC            domain.FeedUsecase
	Tokens            *auth.TokenManager
	Config            *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	api := r.Group("/api")

	// Public routes
	authLimited := api.Group("")
	authLimited.Use(middleware.RateLimitMiddleware(
		middleware.AuthRateLimitConfig(deps.Config.RateLimitAuthThreshold, window)))
	NewAuthHandler(authLimited, deps.AuthUC)

	NewFeedHandler(api, deps.FeedUC)

	// Seeker routes
	seeker := api.Group("")
	seeker.Use(middleware.AuthMiddleware(deps.Tokens), middleware.RequireRole(domain.RoleJobSeeker))
	{
		NewSeekerProfileHandler(seeker, deps.SeekerProfileUC)
		NewApplicationHandler(seeker, deps.ApplicationUC)
	}

	// Employer routes
	employer := api.Group("")
	employer.Use(middleware.AuthMiddleware(deps.Tokens), middleware.RequireRole(domain.RoleJobProvider))
	{
		NewEmployerProfileHandler(employer, deps.EmployerProfileUC)
		NewJobHandler(employer, deps.JobUC)
		NewApplicantHandler(employer, deps.SeekerProfileUC)
	}

	return r
}
