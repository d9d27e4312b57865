package dto

type CreateReportRequest struct {
	Reason string `json:"reason" validate:"required,min=1"`
}

type ResolveReportRequest struct {
	Notes string `json:"notes" validate:"required,min=1"`
}
