package matching

import (
	"math"
	"testing"

	"github.com/talentlink/api/internal/model"
)

func webDevJob() *model.Job {
	return &model.Job{
		ID:              "job-1",
		Status:          model.JobStatusPublished,
		ServiceCategory: model.CategoryWebDev,
		RequiredSkills:  []string{"JavaScript", "TypeScript", "React"},
		ExperienceLevel: model.LevelSenior,
		EngagementType:  model.EngagementFullTime,
	}
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 0.01
}

func TestScorePerfectMatch(t *testing.T) {
	talent := &model.Talent{
		ID:              "talent-1",
		ServiceCategory: model.CategoryWebDev,
		Skills:          []string{"JavaScript", "TypeScript", "React", "Node.js"},
		ExperienceLevel: model.LevelSenior,
		Availability:    model.AvailabilityAvailable,
	}

	total, b := Score(webDevJob(), talent)
	if total != 100 {
		t.Errorf("total = %v, want 100", total)
	}
	if b.ServiceCategory != 30 || b.SkillOverlap != 40 || b.ExperienceLevel != 20 || b.Availability != 10 {
		t.Errorf("breakdown = %+v, want 30/40/20/10", b)
	}
}

func TestScorePartialSkillsAdjacentLevel(t *testing.T) {
	talent := &model.Talent{
		ID:              "talent-2",
		ServiceCategory: model.CategoryWebDev,
		Skills:          []string{"JavaScript"},
		ExperienceLevel: model.LevelMid,
		Availability:    model.AvailabilityAvailable,
	}

	total, b := Score(webDevJob(), talent)
	if !approx(b.SkillOverlap, 40.0/3.0) {
		t.Errorf("skill overlap = %v, want %v", b.SkillOverlap, 40.0/3.0)
	}
	if b.ExperienceLevel != 10 {
		t.Errorf("experience = %v, want 10 (adjacent half credit)", b.ExperienceLevel)
	}
	if !approx(total, 63.33) {
		t.Errorf("total = %v, want ~63.33", total)
	}
}

func TestScoreNoOverlap(t *testing.T) {
	talent := &model.Talent{
		ID:              "talent-3",
		ServiceCategory: model.CategoryMarketing,
		Skills:          []string{"SEO"},
		ExperienceLevel: model.LevelJunior,
		Availability:    model.AvailabilityBusy,
	}

	total, b := Score(webDevJob(), talent)
	if total != 0 {
		t.Errorf("total = %v, want 0", total)
	}
	if b != (model.MatchBreakdown{}) {
		t.Errorf("breakdown = %+v, want all zero", b)
	}
}

func TestScoreDeterminism(t *testing.T) {
	job := webDevJob()
	talent := &model.Talent{
		ID:              "talent-4",
		ServiceCategory: model.CategoryWebDev,
		Skills:          []string{"TypeScript", "React"},
		ExperienceLevel: model.LevelLead,
		Availability:    model.AvailabilityAvailable,
	}

	firstTotal, firstBreakdown := Score(job, talent)
	for i := 0; i < 10; i++ {
		total, breakdown := Score(job, talent)
		if total != firstTotal || breakdown != firstBreakdown {
			t.Fatalf("call %d returned %v/%+v, first call returned %v/%+v",
				i, total, breakdown, firstTotal, firstBreakdown)
		}
	}
}

func TestScoreWeightConservation(t *testing.T) {
	cases := []struct {
		name   string
		talent model.Talent
	}{
		{"available senior", model.Talent{ServiceCategory: model.CategoryWebDev, Skills: []string{"React"}, ExperienceLevel: model.LevelSenior, Availability: model.AvailabilityAvailable}},
		{"busy junior", model.Talent{ServiceCategory: model.CategoryDesign, Skills: []string{"Figma"}, ExperienceLevel: model.LevelJunior, Availability: model.AvailabilityBusy}},
		{"empty talent", model.Talent{}},
		{"architect", model.Talent{ServiceCategory: model.CategoryWebDev, Skills: []string{"JavaScript", "TypeScript", "React"}, ExperienceLevel: model.LevelArchitect, Availability: model.AvailabilityUnavailable}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total, b := Score(webDevJob(), &tc.talent)
			sum := b.ServiceCategory + b.SkillOverlap + b.ExperienceLevel + b.Availability
			if !approx(total, sum) {
				t.Errorf("total %v != breakdown sum %v", total, sum)
			}
			if total < 0 || total > 100 {
				t.Errorf("total %v outside [0,100]", total)
			}
		})
	}
}

func TestScoreZeroRequiredSkills(t *testing.T) {
	job := webDevJob()
	job.RequiredSkills = nil
	talent := &model.Talent{
		ServiceCategory: model.CategoryWebDev,
		Skills:          []string{"JavaScript"},
		ExperienceLevel: model.LevelSenior,
		Availability:    model.AvailabilityAvailable,
	}

	_, b := Score(job, talent)
	if b.SkillOverlap != 0 {
		t.Errorf("skill overlap = %v, want 0 when job requires no skills", b.SkillOverlap)
	}
}

func TestScoreExperienceAdjacency(t *testing.T) {
	cases := []struct {
		jobLevel    model.ExperienceLevel
		talentLevel model.ExperienceLevel
		want        float64
	}{
		{model.LevelSenior, model.LevelSenior, 20},
		{model.LevelSenior, model.LevelMid, 10},
		{model.LevelSenior, model.LevelLead, 10},
		{model.LevelSenior, model.LevelJunior, 0},
		{model.LevelSenior, model.LevelArchitect, 0},
		{model.LevelJunior, model.LevelArchitect, 0},
		{model.LevelArchitect, model.LevelLead, 10},
	}

	for _, tc := range cases {
		got := experienceScore(tc.jobLevel, tc.talentLevel)
		if got != tc.want {
			t.Errorf("experienceScore(%s, %s) = %v, want %v",
				tc.jobLevel, tc.talentLevel, got, tc.want)
		}
	}
}

func TestScoreDuplicateRequiredSkills(t *testing.T) {
	job := webDevJob()
	job.RequiredSkills = []string{"JavaScript", "JavaScript"}
	talent := &model.Talent{
		ServiceCategory: model.CategoryWebDev,
		Skills:          []string{"JavaScript"},
		ExperienceLevel: model.LevelSenior,
		Availability:    model.AvailabilityAvailable,
	}

	_, b := Score(job, talent)
	if b.SkillOverlap != 20 {
		t.Errorf("skill overlap = %v, want 20: one distinct matched skill over two required entries", b.SkillOverlap)
	}
}

func TestScoreSkillComparisonIsCaseInsensitive(t *testing.T) {
	talent := &model.Talent{
		ServiceCategory: model.CategoryWebDev,
		Skills:          []string{"javascript", " TYPESCRIPT ", "react"},
		ExperienceLevel: model.LevelSenior,
		Availability:    model.AvailabilityAvailable,
	}

	_, b := Score(webDevJob(), talent)
	if b.SkillOverlap != 40 {
		t.Errorf("skill overlap = %v, want 40 with case-insensitive comparison", b.SkillOverlap)
	}
}
