package models

import "gorm.io/datatypes"

type Job struct {
	BaseModel
	Title           string          `gorm:"not null" json:"title"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	Amount          float64         `gorm:"not null" json:"amount"`
	Category        string          `json:"category,omitempty"`
	WorkplaceType   WorkplaceType   `gorm:"type:varchar(20);not null" json:"workplace_type"`
	JobType         JobType         `gorm:"type:varchar(20);not null" json:"job_type"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20);not null" json:"experience_level"`
	RateType        RateType        `gorm:"type:varchar(20);not null" json:"rate_type"`
	Location        string          `json:"location,omitempty"`
	Overview        string          `gorm:"type:text" json:"overview,omitempty"`

	// Списки хранятся как JSON-колонки, оба обязаны быть непустыми
	Responsibilities datatypes.JSONSlice[string] `gorm:"not null" json:"responsibilities"`
	SkillsRequired   datatypes.JSONSlice[string] `gorm:"not null" json:"skills_required"`

	Status    JobStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	CreatedBy string    `gorm:"type:uuid;not null;index" json:"created_by"`
}

// IsBlocked — заблокированная вакансия скрыта из всех обычных выборок,
// достать её может только админский путь чтения.
func (j *Job) IsBlocked() bool {
	return j.Status == JobStatusBlocked
}
