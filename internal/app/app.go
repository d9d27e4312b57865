package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobhub_backend/database"
	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/config"
	"jobhub_backend/internal/email"
	"jobhub_backend/internal/handlers"
	"jobhub_backend/internal/logger"
	"jobhub_backend/internal/middleware"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/repositories"
	"jobhub_backend/internal/routes"
	"jobhub_backend/internal/services"
	"jobhub_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	// TranslateError обязателен: репозитории различают нарушения
	// уникальных индексов через gorm.ErrDuplicatedKey
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без админа модерация недоступна - сервер не запускаем
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// Репозитории
	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	favoriteRepo := repositories.NewFavoriteRepository(gormDB)
	reportRepo := repositories.NewReportRepository(gormDB)

	// Зависимости сервисов
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	emailProvider := buildEmailProvider(cfg)

	// Сервисы
	authService := services.NewAuthService(userRepo, tokenManager, emailProvider,
		time.Duration(cfg.OTP.TTL)*time.Minute)
	userService := services.NewUserService(userRepo)
	jobService := services.NewJobService(jobRepo, applicationRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, jobRepo)
	reportService := services.NewReportService(reportRepo, jobRepo)

	// Хэндлеры
	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &routes.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(base, authService),
		UserHandler:      handlers.NewUserHandler(base, userService),
		JobHandler:       handlers.NewJobHandler(base, jobService),
		JobSeekerHandler: handlers.NewJobSeekerHandler(base, applicationService, favoriteService, reportService),
		AdminHandler:     handlers.NewAdminHandler(base, jobService, reportService),
	}

	ginRouter := initializeGinRouter(cfg)

	routes.RegisterRoutes(ginRouter, appHandlers, routes.Deps{
		Auth: middleware.AuthMiddleware(tokenManager, userRepo),
	}, cfg)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(gin.Recovery())

	return ginRouter
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	smtpCfg := email.DefaultConfig()
	smtpCfg.Host = cfg.Email.SMTPHost
	smtpCfg.Port = cfg.Email.SMTPPort
	smtpCfg.Username = cfg.Email.SMTPUsername
	smtpCfg.Password = cfg.Email.SMTPPassword
	smtpCfg.FromEmail = cfg.Email.FromEmail
	smtpCfg.FromName = cfg.Email.FromName
	smtpCfg.UseTLS = cfg.Email.UseTLS
	if cfg.Email.TimeoutSeconds > 0 {
		smtpCfg.Timeout = time.Duration(cfg.Email.TimeoutSeconds) * time.Second
	}

	return email.NewSMTPProvider(smtpCfg, email.NewTemplateManager())
}

// seedFirstAdmin создаёт первого администратора, если в базе ещё нет ни одного.
// Email и пароль берутся из конфигурации.
func seedFirstAdmin(gormDB *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("Admin credentials not configured, skipping admin seed")
		return nil
	}

	ctx := context.Background()
	userRepo := repositories.NewUserRepository(gormDB)

	count, err := userRepo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.Admin.Email,
		FirstName:    "Admin",
		LastName:     "User",
		PasswordHash: hashed,
		Role:         models.UserRoleAdmin,
		Active:       true,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		// Гонка при параллельном старте нескольких инстансов
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil
		}
		return err
	}

	logger.Info("First admin user created", "email", cfg.Admin.Email)
	return nil
}
