package pipeline

import (
	"strings"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
)

// AllCities is the location sentinel that disables the location predicate.
const AllCities = "All Cities"

// LevelAny is the language-level sentinel that disables the level predicate.
const LevelAny model.LanguageLevel = "any"

// Criteria is the multi-predicate candidate filter. Zero values and the
// documented sentinels are no-ops, so the zero Criteria is the identity
// filter. All active predicates combine with AND semantics.
type Criteria struct {
	Query         string              `json:"query" form:"query"`
	Location      string              `json:"location" form:"location"`
	MinExperience *int                `json:"min_experience" form:"min_experience"`
	MaxExperience *int                `json:"max_experience" form:"max_experience"`
	Skills        []string            `json:"skills" form:"skills"`
	Language      string              `json:"language" form:"language"`
	Level         model.LanguageLevel `json:"level" form:"level"`
	MinScore      *int                `json:"min_score" form:"min_score"`
}

// Apply returns the applicants matching every active predicate. Applicants
// whose candidate could not be joined are dropped rather than erroring: a
// broken join in a read path degrades gracefully instead of aborting the
// whole listing.
func (c Criteria) Apply(applicants []model.Applicant) []model.Applicant {
	out := make([]model.Applicant, 0, len(applicants))
	for _, a := range applicants {
		if a.Candidate == nil {
			continue
		}
		if c.matches(a) {
			out = append(out, a)
		}
	}
	return out
}

func (c Criteria) matches(a model.Applicant) bool {
	cand := a.Candidate

	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		if !strings.Contains(strings.ToLower(cand.Name), q) &&
			!strings.Contains(strings.ToLower(cand.Email), q) &&
			!anySkillContains(cand.Skills, q) {
			return false
		}
	}

	if c.Location != "" && c.Location != AllCities && cand.Location != c.Location {
		return false
	}

	if c.MinExperience != nil && cand.YearsOfExperience < *c.MinExperience {
		return false
	}
	if c.MaxExperience != nil && cand.YearsOfExperience > *c.MaxExperience {
		return false
	}

	// every requested skill must be satisfied, not any
	for _, want := range c.Skills {
		if strings.TrimSpace(want) == "" {
			continue
		}
		if !HasSkill(cand.Skills, want) {
			return false
		}
	}

	if c.Language != "" {
		lang, ok := findLanguage(cand.Languages, c.Language)
		if !ok {
			return false
		}
		// level match is exact, not "at least"
		if c.Level != "" && c.Level != LevelAny && lang.Level != c.Level {
			return false
		}
	}

	if c.MinScore != nil && a.Application.MatchScore < *c.MinScore {
		return false
	}

	return true
}

func anySkillContains(skills []string, q string) bool {
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func findLanguage(langs []model.Language, name string) (model.Language, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, l := range langs {
		if strings.ToLower(l.Language) == name {
			return l, true
		}
	}
	return model.Language{}, false
}
