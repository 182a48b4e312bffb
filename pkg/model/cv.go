package model

import (
	"time"

	"github.com/google/uuid"
)

// ATSBreakdown is the optional per-dimension score detail attached to a CV.
// All three component scores are 0-100.
type ATSBreakdown struct {
	SkillsMatch     int      `json:"skills_match" db:"skills_match"`
	KeywordsMatch   int      `json:"keywords_match" db:"keywords_match"`
	FormattingScore int      `json:"formatting_score" db:"formatting_score"`
	MissingKeywords []string `json:"missing_keywords" db:"missing_keywords"`
	Feedback        []string `json:"feedback" db:"feedback"`
}

// CV is an uploaded resume document. A candidate may own several; each
// application references exactly one.
type CV struct {
	CVID        uuid.UUID     `json:"cv_id" db:"cv_id"`
	CandidateID uuid.UUID     `json:"candidate_id" db:"candidate_id"`
	FileName    string        `json:"file_name" db:"file_name"`
	UploadedAt  time.Time     `json:"uploaded_at" db:"uploaded_at"`
	ATSScore    *int          `json:"ats_score" db:"ats_score"`
	Breakdown   *ATSBreakdown `json:"ats_breakdown" db:"ats_breakdown"`
}
