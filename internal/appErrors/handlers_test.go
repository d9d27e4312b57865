package appErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func runHandler(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleError(c, err)
	return w
}

func TestHandleError_AppError(t *testing.T) {
	w := runHandler(ErrJobNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), string(CodeJobNotFound))
	assert.Contains(t, w.Body.String(), "Job not found")
}

func TestHandleError_WrappedAppError(t *testing.T) {
	w := runHandler(ErrAlreadyApplied.WithDetails("job xyz"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), string(CodeAlreadyApplied))
}

// Неизвестная ошибка превращается в непрозрачный 500: причина
// не просачивается в тело ответа
func TestHandleError_UnknownError(t *testing.T) {
	w := runHandler(errors.New("pq: connection refused at 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestHandleError_DatabaseErrorHidesCause(t *testing.T) {
	w := runHandler(DatabaseError(errors.New("duplicate key value violates constraint")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "duplicate key")
}
