package services

import (
	"context"
	"errors"
	"time"

	"jobhub_backend/internal/appErrors"
	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/email"
	"jobhub_backend/internal/logger"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/repositories"
	"jobhub_backend/internal/services/dto"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ChangePassword(ctx context.Context, actor *models.User, req *dto.ChangePasswordRequest) error
	RequestPasswordReset(ctx context.Context, emailAddr string) error
	VerifyOtp(ctx context.Context, code string) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokenManager  *auth.TokenManager
	emailProvider email.Provider
	otpTTL        time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenManager *auth.TokenManager,
	emailProvider email.Provider,
	otpTTL time.Duration,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokenManager:  tokenManager,
		emailProvider: emailProvider,
		otpTTL:        otpTTL,
	}
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, appErrors.DatabaseError(err)
	}
	if existing != nil {
		// Заблокированный email не освобождается для повторной регистрации
		return nil, appErrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hashed,
		Role:         models.UserRoleUser,
		Active:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login - аутентификация по email и паролю
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.DatabaseError(err)
	}

	ok, err := auth.CheckPasswordHash(req.Password, user.PasswordHash)
	if err != nil {
		// Испорченный хеш - внутренняя ошибка, не провал аутентификации
		return nil, appErrors.InternalError(err)
	}
	if !ok {
		return nil, appErrors.ErrInvalidCredentials
	}

	if !user.CanAuthenticate() {
		return nil, appErrors.ErrUserBlocked
	}

	token, err := s.tokenManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)
	return &dto.LoginResponse{
		User:        user,
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// ChangePassword - смена пароля внутри аутентифицированной сессии
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, actor *models.User, req *dto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return appErrors.ErrPasswordMismatch
	}

	ok, err := auth.CheckPasswordHash(req.CurrentPassword, actor.PasswordHash)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if !ok {
		return appErrors.ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	actor.PasswordHash = hashed
	if err := s.userRepo.Update(ctx, actor); err != nil {
		return appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "password changed", "user_id", actor.ID)
	return nil
}

// RequestPasswordReset - запрос кода сброса пароля.
// Код сохраняется только после успешной отправки письма: не должно
// существовать активного кода, который никому не был доставлен.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.DatabaseError(err)
	}

	code, err := auth.GenerateOtpCode()
	if err != nil {
		return appErrors.InternalError(err)
	}

	ttlMinutes := int(s.otpTTL.Minutes())
	if err := s.emailProvider.SendPasswordResetOtp(user.Email, code, ttlMinutes); err != nil {
		logger.CtxWithError(ctx, "failed to send otp email", err, "user_id", user.ID)
		return appErrors.EmailDeliveryError(err)
	}

	expiry := time.Now().Add(s.otpTTL)
	user.Otp = code
	user.OtpExpiry = &expiry
	user.OtpVerified = false
	if err := s.userRepo.Update(ctx, user); err != nil {
		return appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "password reset otp issued", "user_id", user.ID)
	return nil
}

// VerifyOtp - проверка кода сброса. Несуществующий и истекший код
// неразличимы для клиента.
func (s *AuthServiceImpl) VerifyOtp(ctx context.Context, code string) error {
	user, err := s.userRepo.FindByOtp(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrOtpInvalidOrExpired
		}
		return appErrors.DatabaseError(err)
	}

	if user.OtpExpiry == nil || time.Now().After(*user.OtpExpiry) {
		return appErrors.ErrOtpInvalidOrExpired
	}

	user.OtpVerified = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "otp verified", "user_id", user.ID)
	return nil
}

// ResetPassword - завершение сброса. Код одноразовый: состояние OTP
// очищается и при успехе, и при истекшем сроке.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return appErrors.ErrPasswordMismatch
	}

	user, err := s.userRepo.FindOtpVerified(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrOtpNotVerified
		}
		return appErrors.DatabaseError(err)
	}

	if user.OtpExpiry == nil || time.Now().After(*user.OtpExpiry) {
		s.clearOtpState(user)
		if err := s.userRepo.Update(ctx, user); err != nil {
			return appErrors.DatabaseError(err)
		}
		return appErrors.ErrOtpExpired
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return appErrors.InternalError(err)
	}

	user.PasswordHash = hashed
	s.clearOtpState(user)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "password reset completed", "user_id", user.ID)
	return nil
}

func (s *AuthServiceImpl) clearOtpState(user *models.User) {
	user.Otp = ""
	user.OtpExpiry = nil
	user.OtpVerified = false
}
