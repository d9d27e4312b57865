package services

import (
	"context"
	"errors"

	"jobhub_backend/internal/appErrors"
	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/logger"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/repositories"
	"jobhub_backend/internal/services/dto"
)

type UserService interface {
	Create(ctx context.Context, actor *models.User, req *dto.CreateUserRequest) (*models.User, error)
	List(ctx context.Context, actor *models.User) ([]models.User, error)
	Update(ctx context.Context, actor *models.User, userID string, req *dto.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, actor *models.User, userID string) error
	Block(ctx context.Context, actor *models.User, userID string) (*models.User, error)
	Deactivate(ctx context.Context, actor *models.User, userID string) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// Create - создание пользователя администратором, роль можно задать явно
func (s *UserServiceImpl) Create(ctx context.Context, actor *models.User, req *dto.CreateUserRequest) (*models.User, error) {
	if !auth.IsAdmin(actor) {
		return nil, appErrors.ErrForbidden
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleUser
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
		Role:         role,
		Active:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "user created by admin", "user_id", user.ID, "admin_id", actor.ID)
	return user, nil
}

func (s *UserServiceImpl) List(ctx context.Context, actor *models.User) ([]models.User, error) {
	if !auth.IsAdmin(actor) {
		return nil, appErrors.ErrForbidden
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return users, nil
}

// Update - профиль правит сам пользователь или админ
func (s *UserServiceImpl) Update(ctx context.Context, actor *models.User, userID string, req *dto.UpdateUserRequest) (*models.User, error) {
	if !auth.CanManageResource(actor, userID) {
		return nil, appErrors.ErrForbidden
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Title != nil {
		user.Title = *req.Title
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return user, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, actor *models.User, userID string) error {
	if !auth.IsAdmin(actor) {
		return appErrors.ErrForbidden
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return appErrors.ErrUserNotFound
		}
		return appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "user deleted", "user_id", userID, "admin_id", actor.ID)
	return nil
}

// Block - блокировка вступает в силу на следующем же запросе
// пользователя: middleware перечитывает запись при каждом обращении
func (s *UserServiceImpl) Block(ctx context.Context, actor *models.User, userID string) (*models.User, error) {
	if !auth.IsAdmin(actor) {
		return nil, appErrors.ErrForbidden
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.IsBlocked = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "user blocked", "user_id", userID, "admin_id", actor.ID)
	return user, nil
}

func (s *UserServiceImpl) Deactivate(ctx context.Context, actor *models.User, userID string) (*models.User, error) {
	if !auth.IsAdmin(actor) {
		return nil, appErrors.ErrForbidden
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Active = false
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "user deactivated", "user_id", userID, "admin_id", actor.ID)
	return user, nil
}

func (s *UserServiceImpl) findUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}
	return user, nil
}
