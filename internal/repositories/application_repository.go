package repositories

import (
	"context"
	"errors"

	"jobhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.JobApplication) error
	FindByID(ctx context.Context, id string) (*models.JobApplication, error)
	FindByJob(ctx context.Context, jobID string) ([]models.JobApplication, error)
	FindByUser(ctx context.Context, userID string) ([]models.JobApplication, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
	ExistsByJobAndUser(ctx context.Context, jobID, userID string) (bool, error)
	Update(ctx context.Context, app *models.JobApplication) error
	Delete(ctx context.Context, id string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, app *models.JobApplication) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if err != nil {
		// Составной уникальный индекс (job_id, user_id) закрывает гонку
		// двух одновременных откликов
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByUser(ctx context.Context, userID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) CountByJob(ctx context.Context, jobID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.JobApplication{}).
		Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) ExistsByJobAndUser(ctx context.Context, jobID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.JobApplication{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) Update(ctx context.Context, app *models.JobApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *ApplicationRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.JobApplication{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
