package models

type Favorite struct {
	BaseModel
	JobID  string `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_job_user" json:"job_id"`
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_job_user" json:"user_id"`
}
