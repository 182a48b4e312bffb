package model

import "github.com/google/uuid"

type LanguageLevel string

const (
	LevelBasic          LanguageLevel = "basic"
	LevelConversational LanguageLevel = "conversational"
	LevelFluent         LanguageLevel = "fluent"
	LevelNative         LanguageLevel = "native"
)

func (l LanguageLevel) Valid() bool {
	switch l {
	case LevelBasic, LevelConversational, LevelFluent, LevelNative:
		return true
	}
	return false
}

type Language struct {
	Language string        `json:"language" db:"language"`
	Level    LanguageLevel `json:"level" db:"level"`
}

// CandidateProfile is owned by the candidate and read-only to the pipeline.
type CandidateProfile struct {
	CandidateID       uuid.UUID  `json:"candidate_id" db:"candidate_id"`
	Name              string     `json:"name" db:"name"`
	Email             string     `json:"email" db:"email"`
	Location          string     `json:"location" db:"location"`
	YearsOfExperience int        `json:"years_of_experience" db:"years_of_experience"`
	Skills            []string   `json:"skills" db:"skills"`
	Languages         []Language `json:"languages" db:"languages"`
}
