package model

// Job statuses
type JobStatus string

const (
	JobStatusDraft     JobStatus = "draft"
	JobStatusPending   JobStatus = "pending"
	JobStatusPublished JobStatus = "published"
	JobStatusClosed    JobStatus = "closed"
	JobStatusArchived  JobStatus = "archived"
)

var ValidJobStatuses = []JobStatus{
	JobStatusDraft, JobStatusPending, JobStatusPublished,
	JobStatusClosed, JobStatusArchived,
}

// Talent statuses
type TalentStatus string

const (
	TalentStatusPending  TalentStatus = "pending"
	TalentStatusApproved TalentStatus = "approved"
	TalentStatusRejected TalentStatus = "rejected"
	TalentStatusHired    TalentStatus = "hired"
	TalentStatusInactive TalentStatus = "inactive"
)

var ValidTalentStatuses = []TalentStatus{
	TalentStatusPending, TalentStatusApproved, TalentStatusRejected,
	TalentStatusHired, TalentStatusInactive,
}

// Experience levels, ordered from most junior to most senior
type ExperienceLevel string

const (
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelArchitect ExperienceLevel = "architect"
)

var levelRank = map[ExperienceLevel]int{
	LevelJunior:    0,
	LevelMid:       1,
	LevelSenior:    2,
	LevelLead:      3,
	LevelArchitect: 4,
}

// Rank returns the ordinal position of the level and whether it is known.
func (l ExperienceLevel) Rank() (int, bool) {
	r, ok := levelRank[l]
	return r, ok
}

// Availability
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"
)

// Engagement types
type EngagementType string

const (
	EngagementFullTime  EngagementType = "full_time"
	EngagementPartTime  EngagementType = "part_time"
	EngagementContract  EngagementType = "contract"
	EngagementFreelance EngagementType = "freelance"
)

// Service categories
type ServiceCategory string

const (
	CategoryWebDev    ServiceCategory = "web_development"
	CategoryMobileDev ServiceCategory = "mobile_development"
	CategoryDesign    ServiceCategory = "design"
	CategoryDevOps    ServiceCategory = "devops"
	CategoryData      ServiceCategory = "data"
	CategoryQA        ServiceCategory = "qa"
	CategoryMarketing ServiceCategory = "marketing"
)

// Application statuses
type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusReviewed  ApplicationStatus = "reviewed"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusDeclined  ApplicationStatus = "declined"
)
