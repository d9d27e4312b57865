package services

import (
	"context"
	"errors"

	"jobhub_backend/internal/appErrors"
	"jobhub_backend/internal/logger"
	"jobhub_backend/internal/models"
	"jobhub_backend/internal/repositories"
	"jobhub_backend/internal/services/dto"
)

type FavoriteService interface {
	Add(ctx context.Context, actor *models.User, jobID string) (*models.Favorite, error)
	Remove(ctx context.Context, actor *models.User, jobID string) error
	ListOwn(ctx context.Context, actor *models.User) ([]dto.FavoriteJobResponse, error)
}

type FavoriteServiceImpl struct {
	favoriteRepo repositories.FavoriteRepository
	jobRepo      repositories.JobRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, jobRepo repositories.JobRepository) FavoriteService {
	return &FavoriteServiceImpl{
		favoriteRepo: favoriteRepo,
		jobRepo:      jobRepo,
	}
}

func (s *FavoriteServiceImpl) Add(ctx context.Context, actor *models.User, jobID string) (*models.Favorite, error) {
	if _, err := s.jobRepo.FindByID(ctx, jobID, false); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.DatabaseError(err)
	}

	exists, err := s.favoriteRepo.Exists(ctx, jobID, actor.ID)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}
	if exists {
		return nil, appErrors.ErrAlreadyFavorited
	}

	fav := &models.Favorite{
		JobID:  jobID,
		UserID: actor.ID,
	}

	if err := s.favoriteRepo.Create(ctx, fav); err != nil {
		if errors.Is(err, repositories.ErrDuplicateFavorite) {
			return nil, appErrors.ErrAlreadyFavorited
		}
		return nil, appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "job favorited", "job_id", jobID, "user_id", actor.ID)
	return fav, nil
}

func (s *FavoriteServiceImpl) Remove(ctx context.Context, actor *models.User, jobID string) error {
	if _, err := s.jobRepo.FindByID(ctx, jobID, false); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return appErrors.ErrJobNotFound
		}
		return appErrors.DatabaseError(err)
	}

	if err := s.favoriteRepo.Delete(ctx, jobID, actor.ID); err != nil {
		if errors.Is(err, repositories.ErrFavoriteNotFound) {
			return appErrors.ErrFavoriteNotFound
		}
		return appErrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "job unfavorited", "job_id", jobID, "user_id", actor.ID)
	return nil
}

// ListOwn - избранное вместе с самими вакансиями. Вакансия, заблокированная
// после добавления в избранное, в выдачу не попадает.
func (s *FavoriteServiceImpl) ListOwn(ctx context.Context, actor *models.User) ([]dto.FavoriteJobResponse, error) {
	favorites, err := s.favoriteRepo.FindByUser(ctx, actor.ID)
	if err != nil {
		return nil, appErrors.DatabaseError(err)
	}

	result := make([]dto.FavoriteJobResponse, 0, len(favorites))
	for _, fav := range favorites {
		job, err := s.jobRepo.FindByID(ctx, fav.JobID, false)
		if err != nil {
			if errors.Is(err, repositories.ErrJobNotFound) {
				continue
			}
			return nil, appErrors.DatabaseError(err)
		}
		result = append(result, dto.FavoriteJobResponse{
			Job:         *job,
			FavoriteID:  fav.ID,
			FavoritedAt: fav.CreatedAt,
		})
	}
	return result, nil
}
