package repositories

import (
	"context"
	"errors"

	"jobhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	// includeBlocked - явная админская способность достать заблокированную
	// вакансию; обычные пути чтения её не видят
	FindByID(ctx context.Context, id string, includeBlocked bool) (*models.Job, error)
	FindAll(ctx context.Context) ([]models.Job, error)
	FindByOwner(ctx context.Context, userID string) ([]models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	UpdateStatus(ctx context.Context, id string, status models.JobStatus) error
	Delete(ctx context.Context, id string) error
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string, includeBlocked bool) (*models.Job, error) {
	query := r.db.WithContext(ctx)
	if !includeBlocked {
		query = query.Where("status <> ?", models.JobStatusBlocked)
	}

	var job models.Job
	err := query.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("status <> ?", models.JobStatusBlocked).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByOwner(ctx context.Context, userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepositoryImpl) UpdateStatus(ctx context.Context, id string, status models.JobStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
