package handlers

import (
	"net/http"

	"jobhub_backend/internal/middleware"
	"jobhub_backend/internal/services"
	"jobhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes - все маршруты за AuthMiddleware; админские проверки
// выполняются на уровне сервиса
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		// Регистрируем до "/:id", иначе gin примет profile за id
		users.GET("/profile", h.Profile)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
		users.POST("/:id/block", h.Block)
		users.POST("/:id/deactivate", h.Deactivate)
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *UserHandler) List(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	users, err := h.userService.List(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) Profile(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	user, err := h.userService.Update(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) Delete(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) Block(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	user, err := h.userService.Block(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	user, err := h.userService.Deactivate(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
