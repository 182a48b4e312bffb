package pipeline

import (
	"testing"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestMatchScoreFullSkillOverlap(t *testing.T) {
	// "ReactJS" must satisfy "React": substring-tolerant, case-insensitive
	job := &model.Job{Skills: []string{"React", "TypeScript"}}
	candidate := &model.CandidateProfile{Skills: []string{"ReactJS", "typescript", "Node"}}

	assert.Equal(t, 100, MatchScore(candidate, job, nil))
}

func TestMatchScorePartialOverlap(t *testing.T) {
	job := &model.Job{Skills: []string{"Go", "Kubernetes", "PostgreSQL", "Kafka"}}
	candidate := &model.CandidateProfile{Skills: []string{"Go", "PostgreSQL"}}

	assert.Equal(t, 50, MatchScore(candidate, job, nil))
}

func TestMatchScoreBlendsATSBreakdown(t *testing.T) {
	job := &model.Job{Skills: []string{"React"}}
	candidate := &model.CandidateProfile{Skills: []string{"React"}}
	cv := &model.CV{Breakdown: &model.ATSBreakdown{SkillsMatch: 80, KeywordsMatch: 60}}

	// 0.6*100 + 0.4*((80+60)/2) = 88
	assert.Equal(t, 88, MatchScore(candidate, job, cv))
}

func TestMatchScoreNoBreakdownUsesOverlapAlone(t *testing.T) {
	job := &model.Job{Skills: []string{"React", "CSS"}}
	candidate := &model.CandidateProfile{Skills: []string{"React"}}
	cv := &model.CV{} // attached but no breakdown

	assert.Equal(t, 50, MatchScore(candidate, job, cv))
}

func TestMatchScoreEmptyJobSkills(t *testing.T) {
	job := &model.Job{}
	candidate := &model.CandidateProfile{Skills: []string{"Anything"}}

	assert.Equal(t, 100, MatchScore(candidate, job, nil))
}

func TestMatchScoreAlwaysClamped(t *testing.T) {
	jobs := []*model.Job{
		{},
		{Skills: []string{"Go"}},
		{Skills: []string{"Go", "Rust", "Zig"}},
	}
	candidates := []*model.CandidateProfile{
		{},
		{Skills: []string{"Go"}},
		{Skills: []string{"Go", "Rust", "Zig", "C"}},
	}
	cvs := []*model.CV{
		nil,
		{},
		{Breakdown: &model.ATSBreakdown{SkillsMatch: 0, KeywordsMatch: 0}},
		{Breakdown: &model.ATSBreakdown{SkillsMatch: 100, KeywordsMatch: 100}},
	}

	for _, job := range jobs {
		for _, candidate := range candidates {
			for _, cv := range cvs {
				score := MatchScore(candidate, job, cv)
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	}
}

func TestHasSkill(t *testing.T) {
	tests := []struct {
		name   string
		skills []string
		want   string
		match  bool
	}{
		{"exact", []string{"React"}, "React", true},
		{"case insensitive", []string{"react"}, "REACT", true},
		{"candidate superset", []string{"ReactJS"}, "React", true},
		{"job superset", []string{"React"}, "React Native", true},
		{"no match", []string{"Angular"}, "React", false},
		{"empty want", []string{"React"}, "", false},
		{"blank skill ignored", []string{"  "}, "React", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, HasSkill(tt.skills, tt.want))
		})
	}
}
