package repositories

import (
	"context"
	"errors"

	"jobhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("report not found")

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	FindByID(ctx context.Context, id string) (*models.Report, error)
	FindByJob(ctx context.Context, jobID string) ([]models.Report, error)
	FindByReporter(ctx context.Context, userID string) ([]models.Report, error)
	FindPending(ctx context.Context) ([]models.Report, error)
	Update(ctx context.Context, report *models.Report) error
}

type ReportRepositoryImpl struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

func (r *ReportRepositoryImpl) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *ReportRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) FindByJob(ctx context.Context, jobID string) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *ReportRepositoryImpl) FindByReporter(ctx context.Context, userID string) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.WithContext(ctx).
		Where("reported_by = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *ReportRepositoryImpl) FindPending(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.WithContext(ctx).
		Where("status = ?", models.ReportStatusPending).
		Order("created_at ASC").
		Find(&reports).Error
	return reports, err
}

func (r *ReportRepositoryImpl) Update(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Save(report).Error
}
