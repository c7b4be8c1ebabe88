// Package matching implements the deterministic match score between a
// job and a talent. Scoring is pure computation: no I/O, no clock, no
// randomness, so the same inputs always produce the same result.
package matching

import (
	"strings"

	"github.com/talentlink/api/internal/model"
)

// Component weights. Together they total 100.
const (
	WeightServiceCategory = 30.0
	WeightSkillOverlap    = 40.0
	WeightExperienceLevel = 20.0
	WeightAvailability    = 10.0
)

// MinScore is the cutoff below which a result is excluded from match listings.
const MinScore = 50.0

// Score computes the match score of a talent against a job. The total is the
// sum of the four breakdown components, clamped to [0,100].
func Score(job *model.Job, talent *model.Talent) (float64, model.MatchBreakdown) {
	b := model.MatchBreakdown{
		ServiceCategory: categoryScore(job.ServiceCategory, talent.ServiceCategory),
		SkillOverlap:    skillScore(job.RequiredSkills, talent.Skills),
		ExperienceLevel: experienceScore(job.ExperienceLevel, talent.ExperienceLevel),
		Availability:    availabilityScore(talent.Availability),
	}

	total := b.ServiceCategory + b.SkillOverlap + b.ExperienceLevel + b.Availability
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}
	return total, b
}

func categoryScore(jobCat, talentCat model.ServiceCategory) float64 {
	if jobCat == "" || talentCat == "" {
		return 0
	}
	if strings.EqualFold(string(jobCat), string(talentCat)) {
		return WeightServiceCategory
	}
	return 0
}

// skillScore awards a proportional share of the weight per required skill the
// talent covers. Skills compare case-insensitively. The numerator is a set
// intersection, so a skill listed twice in the requirements counts once, while
// the denominator keeps the full sequence length. A job with no required
// skills contributes nothing rather than dividing by zero.
func skillScore(required, skills []string) float64 {
	if len(required) == 0 {
		return 0
	}

	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[normalizeSkill(s)] = struct{}{}
	}

	matched := 0
	seen := make(map[string]struct{}, len(required))
	for _, r := range required {
		n := normalizeSkill(r)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		if _, ok := have[n]; ok {
			matched++
		}
	}

	score := WeightSkillOverlap * float64(matched) / float64(len(required))
	if score > WeightSkillOverlap {
		score = WeightSkillOverlap
	}
	return score
}

// experienceScore gives full weight on an exact level match and half weight
// when the talent sits one step away on the ordinal scale
// (junior < mid < senior < lead < architect).
func experienceScore(jobLevel, talentLevel model.ExperienceLevel) float64 {
	jr, ok := jobLevel.Rank()
	if !ok {
		return 0
	}
	tr, ok := talentLevel.Rank()
	if !ok {
		return 0
	}

	switch diff := jr - tr; {
	case diff == 0:
		return WeightExperienceLevel
	case diff == 1 || diff == -1:
		return WeightExperienceLevel / 2
	default:
		return 0
	}
}

// availabilityScore only consults the talent side: jobs carry no availability
// requirement of their own.
func availabilityScore(a model.Availability) float64 {
	if a == model.AvailabilityAvailable {
		return WeightAvailability
	}
	return 0
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
