package dto

type CreateJobRequest struct {
	Title            string   `json:"title" validate:"required,min=3,max=100"`
	Description      string   `json:"description" validate:"required,min=10,max=1000"`
	Amount           float64  `json:"amount" validate:"required,gt=0"`
	Category         string   `json:"category,omitempty" validate:"omitempty,max=50"`
	WorkplaceType    string   `json:"workplace_type" validate:"required,is-workplace-type"`
	JobType          string   `json:"job_type" validate:"required,is-job-type"`
	ExperienceLevel  string   `json:"experience_level" validate:"required,is-experience-level"`
	RateType         string   `json:"rate_type" validate:"required,is-rate-type"`
	Location         string   `json:"location,omitempty"`
	Overview         string   `json:"overview,omitempty"`
	Responsibilities []string `json:"responsibilities" validate:"required,min=1,dive,required"`
	SkillsRequired   []string `json:"skills_required" validate:"required,min=1,dive,required"`
}

type UpdateJobRequest struct {
	Title            *string  `json:"title,omitempty" validate:"omitempty,min=3,max=100"`
	Description      *string  `json:"description,omitempty" validate:"omitempty,min=10,max=1000"`
	Amount           *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category         *string  `json:"category,omitempty" validate:"omitempty,max=50"`
	WorkplaceType    *string  `json:"workplace_type,omitempty" validate:"omitempty,is-workplace-type"`
	JobType          *string  `json:"job_type,omitempty" validate:"omitempty,is-job-type"`
	ExperienceLevel  *string  `json:"experience_level,omitempty" validate:"omitempty,is-experience-level"`
	RateType         *string  `json:"rate_type,omitempty" validate:"omitempty,is-rate-type"`
	Location         *string  `json:"location,omitempty"`
	Overview         *string  `json:"overview,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty" validate:"omitempty,min=1,dive,required"`
	SkillsRequired   []string `json:"skills_required,omitempty" validate:"omitempty,min=1,dive,required"`
}
