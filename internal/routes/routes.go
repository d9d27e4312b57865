package routes

import (
	"net/http"

	"jobhub_backend/internal/config"
	"jobhub_backend/internal/handlers"
	"jobhub_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// AppHandlers - готовые хэндлеры, собранные в app
type AppHandlers struct {
	AuthHandler      *handlers.AuthHandler
	UserHandler      *handlers.UserHandler
	JobHandler       *handlers.JobHandler
	JobSeekerHandler *handlers.JobSeekerHandler
	AdminHandler     *handlers.AdminHandler
}

// Deps - middleware-зависимости, общие для защищённых групп
type Deps struct {
	Auth gin.HandlerFunc
}

// RegisterRoutes регистрирует все HTTP маршруты под /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *AppHandlers, deps Deps, cfg *config.Config) {
	ginRouter.GET("/", healthCheck)

	api := ginRouter.Group("/api/v1")

	// Публичные маршруты: регистрация, вход и сброс пароля.
	// Ограничиваем по IP, чтобы не брутфорсили пароли и OTP.
	public := api.Group("")
	public.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	{
		appHandlers.AuthHandler.RegisterPublicRoutes(public)
	}

	// Всё остальное требует валидный токен и живого пользователя
	protected := api.Group("")
	protected.Use(deps.Auth)
	{
		appHandlers.AuthHandler.RegisterProtectedRoutes(protected)
		appHandlers.UserHandler.RegisterRoutes(protected)
		appHandlers.JobHandler.RegisterRoutes(protected)
		appHandlers.JobSeekerHandler.RegisterRoutes(protected)
	}

	// Админская группа: токен + проверка роли
	adminGroup := api.Group("")
	adminGroup.Use(deps.Auth, middleware.AdminMiddleware())
	{
		appHandlers.AdminHandler.RegisterRoutes(adminGroup)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
