package dto

import (
	"time"

	"jobhub_backend/internal/models"
)

type ApplyRequest struct {
	CoverLetter    string   `json:"cover_letter" validate:"required,min=1"`
	ProposedAmount *float64 `json:"proposed_amount,omitempty" validate:"omitempty,gt=0"`
}

type UpdateApplicationRequest struct {
	CoverLetter    *string  `json:"cover_letter,omitempty" validate:"omitempty,min=1"`
	ProposedAmount *float64 `json:"proposed_amount,omitempty" validate:"omitempty,gt=0"`
}

// FavoriteJobResponse - вакансия вместе с данными о том, когда ее добавили
// в избранное
type FavoriteJobResponse struct {
	models.Job
	FavoriteID  string    `json:"favorite_id"`
	FavoritedAt time.Time `json:"favorited_at"`
}
