package handlers

import (
	"jobhub_backend/internal/appErrors"
	"jobhub_backend/internal/logger"
	"jobhub_backend/internal/middleware"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// BindAndValidateJSON привязывает тело запроса и валидирует его.
// Возвращает false если ответ об ошибке уже отправлен.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind JSON body", err, "path", c.Request.URL.Path)
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			appErrors.HandleValidationError(c, vErr.Errors)
			return false
		}
		appErrors.HandleError(c, appErrors.InternalError(err))
		return false
	}

	return true
}

// CurrentUser возвращает пользователя, привязанного AuthMiddleware.
// За пределами защищенных групп не вызывается.
func (h *BaseHandler) CurrentUser(c *gin.Context) (*models.User, bool) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		appErrors.HandleError(c, appErrors.ErrUnauthorized)
		return nil, false
	}
	return user, true
}

// HandleServiceError переводит ошибку сервиса в HTTP-ответ
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	appErrors.HandleError(c, err)
}
