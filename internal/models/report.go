package models

import "time"

type Report struct {
	BaseModel
	JobID      string       `gorm:"type:uuid;not null;index" json:"job_id"`
	ReportedBy string       `gorm:"type:uuid;not null;index" json:"reported_by"`
	Reason     string       `gorm:"type:text;not null" json:"reason"`
	Status     ReportStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	AdminNotes string       `gorm:"type:text" json:"admin_notes,omitempty"`
	ResolvedAt *time.Time   `json:"resolved_at,omitempty"`
}
