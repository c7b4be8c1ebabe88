package model

// MatchBreakdown holds the per-dimension sub-scores of a match.
// The four components always sum to the total score.
type MatchBreakdown struct {
	ServiceCategory float64 `json:"serviceCategory"`
	SkillOverlap    float64 `json:"skillOverlap"`
	ExperienceLevel float64 `json:"experienceLevel"`
	Availability    float64 `json:"availability"`
}

// MatchResult is a scored candidate for a match query. SubjectID is the
// talent id when matching talents for a job, and the job id when matching
// jobs for a talent.
type MatchResult struct {
	SubjectID string         `json:"subjectId"`
	Score     float64        `json:"score"`
	Breakdown MatchBreakdown `json:"breakdown"`
}
