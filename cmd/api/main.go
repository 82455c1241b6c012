package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobmarket-backend/config"
	v1 "go-jobmarket-backend/internal/delivery/http/v1"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/internal/repository/postgres"
	"go-jobmarket-backend/internal/usecase"
	"go-jobmarket-backend/pkg/auth"
	"go-jobmarket-backend/pkg/database"
	"go-jobmarket-backend/pkg/logger"
	"go-jobmarket-backend/pkg/redis"
	"go-jobmarket-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job marketplace backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting will use in-memory store", "error", err)
	}
	defer redis.Close()

	// 5. Register custom validators on gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	seekerRepo := postgres.NewSeekerProfileRepository(dbPool)
	employerRepo := postgres.NewEmployerProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 7. Seed skill catalog
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := skillRepo.Seed(seedCtx, domain.DefaultSkillCatalog()); err != nil {
		cancelSeed()
		logger.Log.Error("Failed to seed skill catalog", "error", err)
		os.Exit(1)
	}
	cancelSeed()

	// 8. Setup UseCases
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenExpiryHrs)*time.Hour)
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	seekerProfileUC := usecase.NewSeekerProfileUsecase(seekerRepo, skillRepo)
	employerProfileUC := usecase.NewEmployerProfileUsecase(employerRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo, applicationRepo, seekerRepo, skillRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, seekerRepo)
	feedUC := usecase.NewFeedUsecase(jobRepo, skillRepo)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:            authUC,
		SeekerProfileUC:   seekerProfileUC,
		EmployerProfileUC: employerProfileUC,
		JobUC:             jobUC,
		ApplicationUC:     applicationUC,
		FeedUC:            feedUC,
		Tokens:            tokens,
		Config:            cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
