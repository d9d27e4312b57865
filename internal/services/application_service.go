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

type ApplicationService interface {
	Apply(ctx context.Context, actor *models.User, jobID string, req *dto.ApplyRequest) (*models.JobApplication, error)
	ListForJob(ctx context.Context, actor *models.User, jobID string) ([]models.JobApplication, error)
	ListOwn(ctx context.Context, actor *models.User) ([]models.JobApplication, error)
	Update(ctx context.Context, actor *models.User, applicationID string, req *dto.UpdateApplicationRequest) (*models.JobApplication, error)
	Delete(ctx context.Context, actor *models.User, applicationID string) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(applicationRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Apply - один отклик на вакансию от одного пользователя
func (s *ApplicationServiceImpl) Apply(ctx context.Context, actor *models.User, jobID string, req *dto.ApplyRequest) (*models.JobApplication, error) {
	if _, err := s.jobRepo.FindByID(ctx, jobID, false); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	exists, err := s.applicationRepo.ExistsByJobAndUser(ctx, jobID, actor.ID)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	if exists {
		return nil, appErrors.ErrAlreadyApplied
	}

	app := &models.JobApplication{
		JobID:          jobID,
		UserID:         actor.ID,
		CoverLetter:    req.CoverLetter,
		ProposedAmount: req.ProposedAmount,
		Status:         models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		// Проигрыш гонки двух одновременных откликов упирается в индекс
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, appErrors.ErrAlreadyApplied
		}
		return nil, appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "application submitted", "job_id", jobID, "user_id", actor.ID)
	return app, nil
}

// ListForJob - отклики по вакансии видит только ее владелец
func (s *ApplicationServiceImpl) ListForJob(ctx context.Context, actor *models.User, jobID string) ([]models.JobApplication, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID, false)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	if !auth.CanManageResource(actor, job.CreatedBy) {
		return nil, appErrors.ErrForbidden
	}

	apps, err := s.applicationRepo.FindByJob(ctx, jobID)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return apps, nil
}

func (s *ApplicationServiceImpl) ListOwn(ctx context.Context, actor *models.User) ([]models.JobApplication, error) {
	apps, err := s.applicationRepo.FindByUser(ctx, actor.ID)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return apps, nil
}

// Update - отклик правит только сам откликнувшийся, без админского обхода
func (s *ApplicationServiceImpl) Update(ctx context.Context, actor *models.User, applicationID string, req *dto.UpdateApplicationRequest) (*models.JobApplication, error) {
	app, err := s.findApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if !auth.IsOwner(actor, app.UserID) {
		return nil, appErrors.ErrForbidden
	}

	if req.CoverLetter != nil {
		app.CoverLetter = *req.CoverLetter
	}
	if req.ProposedAmount != nil {
		app.ProposedAmount = req.ProposedAmount
	}

	if err := s.applicationRepo.Update(ctx, app); err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	return app, nil
}

func (s *ApplicationServiceImpl) Delete(ctx context.Context, actor *models.User, applicationID string) error {
	app, err := s.findApplication(ctx, applicationID)
	if err != nil {
		return err
	}

	if !auth.IsOwner(actor, app.UserID) {
		return appErrors.ErrForbidden
	}

	if err := s.applicationRepo.Delete(ctx, applicationID); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return appErrors.ErrApplicationNotFound
		}
		return appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "application withdrawn", "application_id", applicationID, "user_id", actor.ID)
	return nil
}

func (s *ApplicationServiceImpl) findApplication(ctx context.Context, id string) (*models.JobApplication, error) {
	app, err := s.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, appErrors.ErrApplicationNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}
	return app, nil
}
