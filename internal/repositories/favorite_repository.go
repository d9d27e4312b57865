package repositories

import (
	"context"
	"errors"

	"jobhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFavoriteNotFound  = errors.New("favorite not found")
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

type FavoriteRepository interface {
	Create(ctx context.Context, fav *models.Favorite) error
	FindByUser(ctx context.Context, userID string) ([]models.Favorite, error)
	Exists(ctx context.Context, jobID, userID string) (bool, error)
	Delete(ctx context.Context, jobID, userID string) error
}

type FavoriteRepositoryImpl struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &FavoriteRepositoryImpl{db: db}
}

func (r *FavoriteRepositoryImpl) Create(ctx context.Context, fav *models.Favorite) error {
	err := r.db.WithContext(ctx).Create(fav).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateFavorite
		}
		return err
	}
	return nil
}

func (r *FavoriteRepositoryImpl) FindByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (r *FavoriteRepositoryImpl) Exists(ctx context.Context, jobID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favorite{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepositoryImpl) Delete(ctx context.Context, jobID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
