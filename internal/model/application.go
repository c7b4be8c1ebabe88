package model

import "time"

// Application links a talent to a job they applied for
type Application struct {
	ID         string            `gorm:"type:uuid;primaryKey" json:"id"`
	JobID      string            `gorm:"type:uuid;index" json:"jobId"`
	TalentID   string            `gorm:"type:uuid;index" json:"talentId"`
	Status     ApplicationStatus `gorm:"type:varchar(20);index" json:"status"`
	CoverNote  string            `gorm:"type:text" json:"coverNote,omitempty"`
	MatchScore float64           `json:"matchScore"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

func (a *Application) TableName() string {
	return "applications"
}

// ApplicationCreateRequest represents the request to apply for a job
type ApplicationCreateRequest struct {
	JobID     string `json:"jobId" validate:"required,uuid"`
	TalentID  string `json:"talentId" validate:"required,uuid"`
	CoverNote string `json:"coverNote" validate:"max=2000"`
}

// ApplicationStatusRequest represents a status transition request
type ApplicationStatusRequest struct {
	Status ApplicationStatus `json:"status" validate:"required,oneof=submitted reviewed accepted declined"`
}
