package model

import "time"

// Job represents a published position talents can be matched against
type Job struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string          `gorm:"type:varchar(200)" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	Status          JobStatus       `gorm:"type:varchar(20);index" json:"status"`
	ServiceCategory ServiceCategory `gorm:"type:varchar(50)" json:"serviceCategory"`
	RequiredSkills  []string        `gorm:"serializer:json" json:"requiredSkills"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20)" json:"experienceLevel"`
	EngagementType  EngagementType  `gorm:"type:varchar(20)" json:"engagementType"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// JobCreateRequest represents the request to create a job
type JobCreateRequest struct {
	Title           string          `json:"title" validate:"required,min=3,max=200"`
	Description     string          `json:"description" validate:"max=5000"`
	ServiceCategory ServiceCategory `json:"serviceCategory" validate:"required,oneof=web_development mobile_development design devops data qa marketing"`
	RequiredSkills  []string        `json:"requiredSkills" validate:"required,min=1,max=30,dive,min=1"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel" validate:"required,oneof=junior mid senior lead architect"`
	EngagementType  EngagementType  `json:"engagementType" validate:"required,oneof=full_time part_time contract freelance"`
}

// JobUpdateRequest represents a partial update of matchable job fields
type JobUpdateRequest struct {
	Title           *string          `json:"title" validate:"omitempty,min=3,max=200"`
	Description     *string          `json:"description" validate:"omitempty,max=5000"`
	ServiceCategory *ServiceCategory `json:"serviceCategory" validate:"omitempty,oneof=web_development mobile_development design devops data qa marketing"`
	RequiredSkills  []string         `json:"requiredSkills" validate:"omitempty,min=1,max=30,dive,min=1"`
	ExperienceLevel *ExperienceLevel `json:"experienceLevel" validate:"omitempty,oneof=junior mid senior lead architect"`
	EngagementType  *EngagementType  `json:"engagementType" validate:"omitempty,oneof=full_time part_time contract freelance"`
}

// JobStatusRequest represents a status transition request
type JobStatusRequest struct {
	Status JobStatus `json:"status" validate:"required,oneof=draft pending published closed archived"`
}
