package services

import (
	"context"
	"errors"
	"time"

	"jobhub_backend/internal/appErrors"
	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/logger"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/repositories"
	"jobhub_backend/internal/services/dto"
)

type ReportService interface {
	Create(ctx context.Context, actor *models.User, jobID string, req *dto.CreateReportRequest) (*models.Report, error)
	ListForJob(ctx context.Context, actor *models.User, jobID string) ([]models.Report, error)
	ListOwn(ctx context.Context, actor *models.User) ([]models.Report, error)
	ListPending(ctx context.Context, actor *models.User) ([]models.Report, error)
	Resolve(ctx context.Context, actor *models.User, reportID string, req *dto.ResolveReportRequest) (*models.Report, error)
}

type ReportServiceImpl struct {
	reportRepo repositories.ReportRepository
	jobRepo    repositories.JobRepository
}

func NewReportService(reportRepo repositories.ReportRepository, jobRepo repositories.JobRepository) ReportService {
	return &ReportServiceImpl{
		reportRepo: reportRepo,
		jobRepo:    jobRepo,
	}
}

// Create - пожаловаться на вакансию может любой аутентифицированный
func (s *ReportServiceImpl) Create(ctx context.Context, actor *models.User, jobID string, req *dto.CreateReportRequest) (*models.Report, error) {
	if _, err := s.jobRepo.FindByID(ctx, jobID, false); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	report := &models.Report{
		JobID:      jobID,
		ReportedBy: actor.ID,
		Reason:     req.Reason,
		Status:     models.ReportStatusPending,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "report filed", "job_id", jobID, "user_id", actor.ID)
	return report, nil
}

// ListForJob - жалобы по вакансии видят владелец вакансии и админ
func (s *ReportServiceImpl) ListForJob(ctx context.Context, actor *models.User, jobID string) ([]models.Report, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID, auth.IsAdmin(actor))
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	if !auth.CanManageResource(actor, job.CreatedBy) {
		return nil, appErrors.ErrForbidden
	}

	reports, err := s.reportRepo.FindByJob(ctx, jobID)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return reports, nil
}

func (s *ReportServiceImpl) ListOwn(ctx context.Context, actor *models.User) ([]models.Report, error) {
	reports, err := s.reportRepo.FindByReporter(ctx, actor.ID)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return reports, nil
}

func (s *ReportServiceImpl) ListPending(ctx context.Context, actor *models.User) ([]models.Report, error) {
	if !auth.IsAdmin(actor) {
		return nil, appErrors.ErrForbidden
	}

	reports, err := s.reportRepo.FindPending(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return reports, nil
}

// Resolve - односторонний переход pending -> resolved, только для админа
func (s *ReportServiceImpl) Resolve(ctx context.Context, actor *models.User, reportID string, req *dto.ResolveReportRequest) (*models.Report, error) {
	if !auth.IsAdmin(actor) {
		return nil, appErrors.ErrForbidden
	}

	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repositories.ErrReportNotFound) {
			return nil, appErrors.ErrReportNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	if report.Status == models.ReportStatusResolved {
		return nil, appErrors.ErrReportAlreadyResolved
	}

	now := time.Now()
	report.Status = models.ReportStatusResolved
	report.AdminNotes = req.Notes
	report.ResolvedAt = &now

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "report resolved", "report_id", reportID, "admin_id", actor.ID)
	return report, nil
}
