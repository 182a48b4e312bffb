package pipeline

import (
	"math"
	"strings"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
)

const (
	skillWeight = 0.6
	atsWeight   = 0.4
)

// MatchScore computes the cached 0-100 compatibility score between a
// candidate and a job. The skill overlap is |matched job skills| / |job
// skills|; when the CV carries an ATS breakdown the overlap is blended with
// the breakdown's skills/keywords scores, otherwise the overlap stands alone.
// A job that declares no skills scores a full overlap.
func MatchScore(candidate *model.CandidateProfile, job *model.Job, cv *model.CV) int {
	base := 100.0
	if len(job.Skills) > 0 {
		matched := 0
		for _, want := range job.Skills {
			if HasSkill(candidate.Skills, want) {
				matched++
			}
		}
		base = float64(matched) / float64(len(job.Skills)) * 100
	}

	score := base
	if cv != nil && cv.Breakdown != nil {
		ats := float64(cv.Breakdown.SkillsMatch+cv.Breakdown.KeywordsMatch) / 2
		score = skillWeight*base + atsWeight*ats
	}

	return clampScore(int(math.Round(score)))
}

// HasSkill reports whether any candidate skill satisfies the wanted skill.
// Matching is case-insensitive and substring-tolerant in both directions, so
// "ReactJS" satisfies "React" and vice versa.
func HasSkill(skills []string, want string) bool {
	want = strings.ToLower(strings.TrimSpace(want))
	if want == "" {
		return false
	}
	for _, have := range skills {
		have = strings.ToLower(strings.TrimSpace(have))
		if have == "" {
			continue
		}
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return true
		}
	}
	return false
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
