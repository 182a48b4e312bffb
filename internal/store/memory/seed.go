package memory

import (
	"time"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
)

// Seed loads a small demo dataset for DSN-less runs so the API has something
// to serve out of the box.
func (s *Store) Seed() {
	recruiterID := uuid.New()
	now := time.Now()

	frontend := model.Job{
		JobID:        uuid.New(),
		Title:        "Frontend Engineer",
		Company:      "Nexus Labs",
		Locations:    []string{"Ho Chi Minh City", "Hanoi"},
		Salary:       "$1500 - $2500",
		Type:         model.JobTypeFullTime,
		Skills:       []string{"React", "TypeScript", "CSS"},
		Requirements: []string{"3+ years building SPAs", "Solid CS fundamentals"},
		PostedAt:     now.AddDate(0, 0, -14),
		IsActive:     true,
		RecruiterID:  recruiterID,
	}
	backend := model.Job{
		JobID:        uuid.New(),
		Title:        "Backend Engineer",
		Company:      "Nexus Labs",
		Locations:    []string{"Da Nang"},
		Salary:       "$2000 - $3000",
		Type:         model.JobTypeRemote,
		Skills:       []string{"Go", "PostgreSQL", "Redis"},
		Requirements: []string{"Experience running services in production"},
		PostedAt:     now.AddDate(0, 0, -7),
		IsActive:     true,
		RecruiterID:  recruiterID,
	}
	s.PutJob(frontend)
	s.PutJob(backend)

	linh := model.CandidateProfile{
		CandidateID:       uuid.New(),
		Name:              "Linh Tran",
		Email:             "linh.tran@example.com",
		Location:          "Ho Chi Minh City",
		YearsOfExperience: 4,
		Skills:            []string{"ReactJS", "TypeScript", "Node"},
		Languages: []model.Language{
			{Language: "Vietnamese", Level: model.LevelNative},
			{Language: "English", Level: model.LevelFluent},
		},
	}
	minh := model.CandidateProfile{
		CandidateID:       uuid.New(),
		Name:              "Minh Pham",
		Email:             "minh.pham@example.com",
		Location:          "Da Nang",
		YearsOfExperience: 6,
		Skills:            []string{"Go", "Kubernetes", "PostgreSQL"},
		Languages: []model.Language{
			{Language: "Vietnamese", Level: model.LevelNative},
			{Language: "English", Level: model.LevelConversational},
		},
	}
	s.PutCandidate(linh)
	s.PutCandidate(minh)

	ats := 82
	s.PutCV(model.CV{
		CVID:        uuid.New(),
		CandidateID: linh.CandidateID,
		FileName:    "linh-tran-frontend.pdf",
		UploadedAt:  now.AddDate(0, 0, -10),
		ATSScore:    &ats,
		Breakdown: &model.ATSBreakdown{
			SkillsMatch:     85,
			KeywordsMatch:   78,
			FormattingScore: 90,
			MissingKeywords: []string{"testing"},
			Feedback:        []string{"Add measurable outcomes to project bullets"},
		},
	})
	s.PutCV(model.CV{
		CVID:        uuid.New(),
		CandidateID: minh.CandidateID,
		FileName:    "minh-pham-backend.pdf",
		UploadedAt:  now.AddDate(0, 0, -5),
	})
}
