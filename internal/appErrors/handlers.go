package appErrors

import (
	"jobhub_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError - единая точка преобразования ошибки в HTTP-ответ.
// Неизвестные ошибки превращаются в непрозрачный 500 без внутренних деталей.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.FromContext(c.Request.Context()).Error("server error",
			"code", appErr.Code, "error", appErr.Error(), "path", c.Request.URL.Path)
		// Скрываем причину от клиента
		appErr = New(appErr.Code, appErr.Message, appErr.HTTPCode)
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleValidationError - обработчик для ошибок валидации входных данных
func HandleValidationError(c *gin.Context, details interface{}) {
	HandleError(c, ValidationError(details))
}
