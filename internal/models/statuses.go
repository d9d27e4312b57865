package models

type UserRole string
type JobStatus string
type ApplicationStatus string
type ReportStatus string
type WorkplaceType string
type JobType string
type ExperienceLevel string
type RateType string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusBlocked    JobStatus = "blocked"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	ReportStatusPending  ReportStatus = "pending"
	ReportStatusResolved ReportStatus = "resolved"

	WorkplaceRemote WorkplaceType = "remote"
	WorkplaceOnsite WorkplaceType = "onsite"
	WorkplaceHybrid WorkplaceType = "hybrid"

	JobTypeFullTime  JobType = "full-time"
	JobTypePartTime  JobType = "part-time"
	JobTypeContract  JobType = "contract"
	JobTypeFreelance JobType = "freelance"

	ExperienceEntry        ExperienceLevel = "entry level"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"

	RateHourly  RateType = "hourly"
	RateDaily   RateType = "daily"
	RateWeekly  RateType = "weekly"
	RateMonthly RateType = "monthly"
)
