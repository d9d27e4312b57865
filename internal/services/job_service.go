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

	"gorm.io/datatypes"
)

type JobService interface {
	Create(ctx context.Context, actor *models.User, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	ListAll(ctx context.Context) ([]models.Job, error)
	ListOwn(ctx context.Context, actor *models.User) ([]models.Job, error)
	Update(ctx context.Context, actor *models.User, jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, actor *models.User, jobID string) error
	Block(ctx context.Context, actor *models.User, jobID string) (*models.Job, error)
	Unblock(ctx context.Context, actor *models.User, jobID string) (*models.Job, error)
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewJobService(jobRepo repositories.JobRepository, applicationRepo repositories.ApplicationRepository) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *JobServiceImpl) Create(ctx context.Context, actor *models.User, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:            req.Title,
		Description:      req.Description,
		Amount:           req.Amount,
		Category:         req.Category,
		WorkplaceType:    models.WorkplaceType(req.WorkplaceType),
		JobType:          models.JobType(req.JobType),
		ExperienceLevel:  models.ExperienceLevel(req.ExperienceLevel),
		RateType:         models.RateType(req.RateType),
		Location:         req.Location,
		Overview:         req.Overview,
		Responsibilities: datatypes.NewJSONSlice(req.Responsibilities),
		SkillsRequired:   datatypes.NewJSONSlice(req.SkillsRequired),
		Status:           models.JobStatusOpen,
		CreatedBy:        actor.ID,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "job created", "job_id", job.ID, "user_id", actor.ID)
	return job, nil
}

func (s *JobServiceImpl) GetByID(ctx context.Context, id string) (*models.Job, error) {
	return s.findJob(ctx, id, false)
}

func (s *JobServiceImpl) ListAll(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) ListOwn(ctx context.Context, actor *models.User) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByOwner(ctx, actor.ID)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return jobs, nil
}

// Update - вакансию с откликами менять нельзя, даже владельцу
func (s *JobServiceImpl) Update(ctx context.Context, actor *models.User, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.findJob(ctx, jobID, false)
	if err != nil {
		return nil, err
	}

	if !auth.CanManageResource(actor, job.CreatedBy) {
		return nil, appErrors.ErrForbidden
	}

	if err := s.ensureNoApplications(ctx, jobID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Amount != nil {
		job.Amount = *req.Amount
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.WorkplaceType != nil {
		job.WorkplaceType = models.WorkplaceType(*req.WorkplaceType)
	}
	if req.JobType != nil {
		job.JobType = models.JobType(*req.JobType)
	}
	if req.ExperienceLevel != nil {
		job.ExperienceLevel = models.ExperienceLevel(*req.ExperienceLevel)
	}
	if req.RateType != nil {
		job.RateType = models.RateType(*req.RateType)
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Overview != nil {
		job.Overview = *req.Overview
	}
	if req.Responsibilities != nil {
		job.Responsibilities = datatypes.NewJSONSlice(req.Responsibilities)
	}
	if req.SkillsRequired != nil {
		job.SkillsRequired = datatypes.NewJSONSlice(req.SkillsRequired)
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Delete(ctx context.Context, actor *models.User, jobID string) error {
	job, err := s.findJob(ctx, jobID, false)
	if err != nil {
		return err
	}

	if !auth.CanManageResource(actor, job.CreatedBy) {
		return appErrors.ErrForbidden
	}

	if err := s.ensureNoApplications(ctx, jobID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return appErrors.ErrJobNotFound
		}
		return appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "job deleted", "job_id", jobID, "user_id", actor.ID)
	return nil
}

// Block - админская блокировка, владение не учитывается
func (s *JobServiceImpl) Block(ctx context.Context, actor *models.User, jobID string) (*models.Job, error) {
	if !auth.IsAdmin(actor) {
		return nil, appErrors.ErrForbidden
	}

	job, err := s.findJob(ctx, jobID, false)
	if err != nil {
		return nil, err
	}

	job.Status = models.JobStatusBlocked
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "job blocked", "job_id", jobID, "admin_id", actor.ID)
	return job, nil
}

// Unblock - единственный путь, читающий заблокированную вакансию:
// обычная выборка ее уже не видит
func (s *JobServiceImpl) Unblock(ctx context.Context, actor *models.User, jobID string) (*models.Job, error) {
	if !auth.IsAdmin(actor) {
		return nil, appErrors.ErrForbidden
	}

	job, err := s.findJob(ctx, jobID, true)
	if err != nil {
		return nil, err
	}

	job.Status = models.JobStatusOpen
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "job unblocked", "job_id", jobID, "admin_id", actor.ID)
	return job, nil
}

func (s *JobServiceImpl) findJob(ctx context.Context, jobID string, includeBlocked bool) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID, includeBlocked)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) ensureNoApplications(ctx context.Context, jobID string) error {
	count, err := s.applicationRepo.CountByJob(ctx, jobID)
	if err != nil {
		return appErrors.DatabaseError(err)
	}
	if count > 0 {
		return appErrors.ErrJobHasApplications
	}
	return nil
}
