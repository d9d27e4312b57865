package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	// Возвращаем копию, чтобы не мутировать предопределенные ошибки
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Аутентификация
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusBadRequest)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Пользователи
	ErrUserNotFound       = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "User already exists", http.StatusBadRequest)
	ErrUserBlocked        = New(CodeUserBlocked, "User account is blocked or deactivated", http.StatusBadRequest)
	ErrWeakPassword       = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)
	ErrPasswordMismatch   = New(CodePasswordMismatch, "Passwords do not match", http.StatusBadRequest)

	// Вакансии
	ErrJobNotFound        = New(CodeJobNotFound, "Job not found", http.StatusNotFound)
	ErrJobHasApplications = New(CodeJobHasApplications, "Job with existing applications cannot be modified", http.StatusBadRequest)

	// Отклики и избранное
	ErrApplicationNotFound = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)
	ErrAlreadyApplied      = New(CodeAlreadyApplied, "You have already applied for this job", http.StatusBadRequest)
	ErrAlreadyFavorited    = New(CodeAlreadyFavorited, "Job already in favorites", http.StatusBadRequest)
	ErrFavoriteNotFound    = New(CodeFavoriteNotFound, "Job is not in favorites", http.StatusNotFound)

	// Жалобы
	ErrReportNotFound        = New(CodeReportNotFound, "Report not found", http.StatusNotFound)
	ErrReportAlreadyResolved = New(CodeReportResolved, "Report is already resolved", http.StatusBadRequest)

	// Сброс пароля
	ErrOtpInvalidOrExpired = New(CodeOtpInvalidOrExpired, "Invalid or expired OTP", http.StatusBadRequest)
	ErrOtpNotVerified      = New(CodeOtpNotVerified, "OTP verification required", http.StatusBadRequest)
	ErrOtpExpired          = New(CodeOtpExpired, "OTP has expired, request a new one", http.StatusBadRequest)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func DatabaseError(err error) *AppError {
	return Wrap(err, CodeDatabaseError, "Internal server error", http.StatusInternalServerError)
}

func EmailDeliveryError(err error) *AppError {
	return Wrap(err, CodeEmailDelivery, "Failed to send email", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}
