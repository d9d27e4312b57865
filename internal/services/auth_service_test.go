package services_test

import (
	"context"
	"testing"
	"time"

	"jobhub_backend/internal/appErrors"
	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/services"
	"jobhub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (services.AuthService, *fakeUserRepo, *fakeEmailProvider) {
	t.Helper()
	userRepo := newFakeUserRepo()
	emailProvider := &fakeEmailProvider{}
	tokenManager := auth.NewTokenManager("test-secret", time.Hour)
	svc := services.NewAuthService(userRepo, tokenManager, emailProvider, 5*time.Minute)
	return svc, userRepo, emailProvider
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, mutate func(*models.User)) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: hashed,
		Role:         models.UserRoleUser,
		Active:       true,
	}
	if mutate != nil {
		mutate(user)
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	svc, _, _ := newAuthFixture(t)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Aruzhan",
		LastName:  "Bekova",
		Email:     "aruzhan@test.com",
		Password:  "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, models.UserRoleUser, user.Role)
	assert.True(t, user.Active)
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newAuthFixture(t)
	seedUser(t, repo, "taken@test.com", "secret123", nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "Other",
		LastName:  "User",
		Email:     "taken@test.com",
		Password:  "another123",
	})

	assert.ErrorIs(t, err, appErrors.ErrEmailAlreadyExists)
}

// Заблокированный пользователь не освобождает свой email
func TestRegister_BlockedEmailStaysTaken(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newAuthFixture(t)
	seedUser(t, repo, "blocked@test.com", "secret123", func(u *models.User) {
		u.IsBlocked = true
	})

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		FirstName: "New",
		LastName:  "User",
		Email:     "blocked@test.com",
		Password:  "another123",
	})

	assert.ErrorIs(t, err, appErrors.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newAuthFixture(t)
	seedUser(t, repo, "login@test.com", "secret123", nil)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "login@test.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, "login@test.com", res.User.Email)
}

// Несуществующий email и неверный пароль неразличимы для клиента
func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newAuthFixture(t)
	seedUser(t, repo, "known@test.com", "secret123", nil)

	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "unknown@test.com",
		Password: "secret123",
	})
	_, errWrongPass := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "known@test.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, errUnknown, appErrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, appErrors.ErrInvalidCredentials)
}

func TestLogin_BlockedOrInactive(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newAuthFixture(t)
	seedUser(t, repo, "blocked@test.com", "secret123", func(u *models.User) {
		u.IsBlocked = true
	})
	seedUser(t, repo, "inactive@test.com", "secret123", func(u *models.User) {
		u.Active = false
	})

	_, errBlocked := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "blocked@test.com", Password: "secret123",
	})
	_, errInactive := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "inactive@test.com", Password: "secret123",
	})

	assert.ErrorIs(t, errBlocked, appErrors.ErrUserBlocked)
	assert.ErrorIs(t, errInactive, appErrors.ErrUserBlocked)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newAuthFixture(t)
	user := seedUser(t, repo, "change@test.com", "oldpass123", nil)

	err := svc.ChangePassword(context.Background(), user, &dto.ChangePasswordRequest{
		CurrentPassword: "oldpass123",
		NewPassword:     "newpass123",
		ConfirmPassword: "newpass123",
	})
	require.NoError(t, err)

	// Старый пароль больше не работает
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "change@test.com", Password: "oldpass123",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "change@test.com", Password: "newpass123",
	})
	assert.NoError(t, err)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newAuthFixture(t)
	user := seedUser(t, repo, "change2@test.com", "oldpass123", nil)

	err := svc.ChangePassword(context.Background(), user, &dto.ChangePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "newpass123",
		ConfirmPassword: "newpass123",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestRequestPasswordReset_PersistsOtpAfterSend(t *testing.T) {
	t.Parallel()
	svc, repo, emailProvider := newAuthFixture(t)
	user := seedUser(t, repo, "reset@test.com", "secret123", nil)

	err := svc.RequestPasswordReset(context.Background(), "reset@test.com")
	require.NoError(t, err)

	sent, ok := emailProvider.lastSent()
	require.True(t, ok)
	assert.Equal(t, "reset@test.com", sent.To)
	assert.Len(t, sent.Code, 6)

	stored, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, sent.Code, stored.Otp)
	assert.False(t, stored.OtpVerified)
	require.NotNil(t, stored.OtpExpiry)
	assert.True(t, stored.OtpExpiry.After(time.Now()))
}

// Провал отправки письма не оставляет в базе активного кода
func TestRequestPasswordReset_EmailFailureLeavesNoOtp(t *testing.T) {
	t.Parallel()
	svc, repo, emailProvider := newAuthFixture(t)
	user := seedUser(t, repo, "fail@test.com", "secret123", nil)
	emailProvider.failNext = assert.AnError

	err := svc.RequestPasswordReset(context.Background(), "fail@test.com")
	require.Error(t, err)

	stored, findErr := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, findErr)
	assert.Empty(t, stored.Otp)
	assert.Nil(t, stored.OtpExpiry)
}

func TestRequestPasswordReset_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc, _, _ := newAuthFixture(t)

	err := svc.RequestPasswordReset(context.Background(), "nobody@test.com")
	assert.ErrorIs(t, err, appErrors.ErrUserNotFound)
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()
	svc, repo, emailProvider := newAuthFixture(t)
	user := seedUser(t, repo, "flow@test.com", "secret123", nil)

	require.NoError(t, svc.RequestPasswordReset(context.Background(), "flow@test.com"))
	sent, _ := emailProvider.lastSent()

	require.NoError(t, svc.VerifyOtp(context.Background(), sent.Code))

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		NewPassword:     "brandnew123",
		ConfirmPassword: "brandnew123",
	})
	require.NoError(t, err)

	// Код одноразовый: состояние OTP очищено
	stored, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Otp)
	assert.Nil(t, stored.OtpExpiry)
	assert.False(t, stored.OtpVerified)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email: "flow@test.com", Password: "brandnew123",
	})
	assert.NoError(t, err)
}

func TestVerifyOtp_UnknownCode(t *testing.T) {
	t.Parallel()
	svc, _, _ := newAuthFixture(t)

	err := svc.VerifyOtp(context.Background(), "000000")
	assert.ErrorIs(t, err, appErrors.ErrOtpInvalidOrExpired)
}

func TestVerifyOtp_ExpiredCode(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newAuthFixture(t)
	expired := time.Now().Add(-time.Minute)
	seedUser(t, repo, "expired@test.com", "secret123", func(u *models.User) {
		u.Otp = "123456"
		u.OtpExpiry = &expired
	})

	err := svc.VerifyOtp(context.Background(), "123456")
	assert.ErrorIs(t, err, appErrors.ErrOtpInvalidOrExpired)
}

func TestResetPassword_WithoutVerification(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newAuthFixture(t)
	future := time.Now().Add(5 * time.Minute)
	seedUser(t, repo, "notverified@test.com", "secret123", func(u *models.User) {
		u.Otp = "654321"
		u.OtpExpiry = &future
	})

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		NewPassword:     "newpass123",
		ConfirmPassword: "newpass123",
	})
	assert.ErrorIs(t, err, appErrors.ErrOtpNotVerified)
}

// Код, истекший между verify и reset, сгорает
func TestResetPassword_ExpiredAfterVerification(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newAuthFixture(t)
	expired := time.Now().Add(-time.Minute)
	user := seedUser(t, repo, "late@test.com", "secret123", func(u *models.User) {
		u.Otp = "111222"
		u.OtpExpiry = &expired
		u.OtpVerified = true
	})

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		NewPassword:     "newpass123",
		ConfirmPassword: "newpass123",
	})
	assert.ErrorIs(t, err, appErrors.ErrOtpExpired)

	stored, findErr := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, findErr)
	assert.Empty(t, stored.Otp)
	assert.False(t, stored.OtpVerified)
}

func TestResetPassword_Mismatch(t *testing.T) {
	t.Parallel()
	svc, _, _ := newAuthFixture(t)

	err := svc.ResetPassword(context.Background(), &dto.ResetPasswordRequest{
		NewPassword:     "newpass123",
		ConfirmPassword: "different123",
	})
	assert.ErrorIs(t, err, appErrors.ErrPasswordMismatch)
}
