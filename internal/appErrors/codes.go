package appErrors

// Коды ошибок сгруппированные по доменам
const (
	// Аутентификация и авторизация
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodePasswordMismatch ErrorCode = "PASSWORD_MISMATCH"

	// Ресурсы
	CodeUserNotFound        ErrorCode = "USER_NOT_FOUND"
	CodeJobNotFound         ErrorCode = "JOB_NOT_FOUND"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"
	CodeFavoriteNotFound    ErrorCode = "FAVORITE_NOT_FOUND"
	CodeReportNotFound      ErrorCode = "REPORT_NOT_FOUND"

	// Бизнес-логика
	CodeEmailAlreadyExists  ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserBlocked         ErrorCode = "USER_BLOCKED"
	CodeAlreadyApplied      ErrorCode = "ALREADY_APPLIED"
	CodeAlreadyFavorited    ErrorCode = "ALREADY_FAVORITED"
	CodeJobHasApplications  ErrorCode = "JOB_HAS_APPLICATIONS"
	CodeReportResolved      ErrorCode = "REPORT_ALREADY_RESOLVED"
	CodeOtpInvalidOrExpired ErrorCode = "OTP_INVALID_OR_EXPIRED"
	CodeOtpNotVerified      ErrorCode = "OTP_NOT_VERIFIED"
	CodeOtpExpired          ErrorCode = "OTP_EXPIRED"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"
	CodeEmailDelivery ErrorCode = "EMAIL_DELIVERY_FAILED"
)
