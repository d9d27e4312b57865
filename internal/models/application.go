package models

type JobApplication struct {
	BaseModel
	JobID          string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"job_id"`
	UserID         string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"user_id"`
	CoverLetter    string            `gorm:"type:text;not null" json:"cover_letter"`
	ProposedAmount *float64          `json:"proposed_amount,omitempty"`
	Status         ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}
