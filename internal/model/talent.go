package model

import "time"

// Talent represents a registered candidate profile
type Talent struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	FullName        string          `gorm:"type:varchar(200)" json:"fullName"`
	ChatID          string          `gorm:"type:varchar(64);index" json:"chatId,omitempty"`
	Status          TalentStatus    `gorm:"type:varchar(20);index" json:"status"`
	ServiceCategory ServiceCategory `gorm:"type:varchar(50)" json:"serviceCategory"`
	Skills          []string        `gorm:"serializer:json" json:"skills"`
	ExperienceLevel ExperienceLevel `gorm:"type:varchar(20)" json:"experienceLevel"`
	Availability    Availability    `gorm:"type:varchar(20)" json:"availability"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (t *Talent) TableName() string {
	return "talents"
}

// TalentCreateRequest represents the request to register a talent
type TalentCreateRequest struct {
	FullName        string          `json:"fullName" validate:"required,min=2,max=200"`
	ChatID          string          `json:"chatId" validate:"omitempty,max=64"`
	ServiceCategory ServiceCategory `json:"serviceCategory" validate:"required,oneof=web_development mobile_development design devops data qa marketing"`
	Skills          []string        `json:"skills" validate:"required,min=1,max=50,dive,min=1"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel" validate:"required,oneof=junior mid senior lead architect"`
	Availability    Availability    `json:"availability" validate:"required,oneof=available busy unavailable"`
}

// TalentUpdateRequest represents a partial update of matchable talent fields
type TalentUpdateRequest struct {
	FullName        *string          `json:"fullName" validate:"omitempty,min=2,max=200"`
	ServiceCategory *ServiceCategory `json:"serviceCategory" validate:"omitempty,oneof=web_development mobile_development design devops data qa marketing"`
	Skills          []string         `json:"skills" validate:"omitempty,min=1,max=50,dive,min=1"`
	ExperienceLevel *ExperienceLevel `json:"experienceLevel" validate:"omitempty,oneof=junior mid senior lead architect"`
	Availability    *Availability    `json:"availability" validate:"omitempty,oneof=available busy unavailable"`
}

// TalentStatusRequest represents a status transition request
type TalentStatusRequest struct {
	Status TalentStatus `json:"status" validate:"required,oneof=pending approved rejected hired inactive"`
}
