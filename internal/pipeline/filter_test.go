package pipeline

import (
	"testing"
	"time"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func testApplicants() []model.Applicant {
	return []model.Applicant{
		{
			Application: model.Application{
				ApplicationID: uuid.New(),
				Status:        model.StatusPending,
				MatchScore:    90,
				AppliedAt:     time.Now(),
			},
			Candidate: &model.CandidateProfile{
				Name:              "Linh Tran",
				Email:             "linh.tran@example.com",
				Location:          "Ho Chi Minh City",
				YearsOfExperience: 4,
				Skills:            []string{"ReactJS", "TypeScript", "Node"},
				Languages: []model.Language{
					{Language: "English", Level: model.LevelFluent},
				},
			},
		},
		{
			Application: model.Application{
				ApplicationID: uuid.New(),
				Status:        model.StatusReviewing,
				MatchScore:    55,
				AppliedAt:     time.Now(),
			},
			Candidate: &model.CandidateProfile{
				Name:              "Minh Pham",
				Email:             "minh.pham@example.com",
				Location:          "Da Nang",
				YearsOfExperience: 8,
				Skills:            []string{"Go", "PostgreSQL"},
				Languages: []model.Language{
					{Language: "English", Level: model.LevelConversational},
				},
			},
		},
	}
}

func TestFilterIdentityLaw(t *testing.T) {
	apps := testApplicants()
	assert.Equal(t, apps, Criteria{}.Apply(apps))

	// sentinels are no-ops too
	sentinels := Criteria{Location: AllCities, Level: LevelAny}
	assert.Equal(t, apps, sentinels.Apply(apps))
}

func TestFilterIdempotence(t *testing.T) {
	apps := testApplicants()
	c := Criteria{Query: "linh", MinScore: intPtr(50)}

	once := c.Apply(apps)
	assert.Equal(t, once, c.Apply(once))
}

func TestFilterFreeText(t *testing.T) {
	apps := testApplicants()

	byName := Criteria{Query: "LINH"}.Apply(apps)
	require.Len(t, byName, 1)
	assert.Equal(t, "Linh Tran", byName[0].Candidate.Name)

	byEmail := Criteria{Query: "minh.pham@"}.Apply(apps)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Minh Pham", byEmail[0].Candidate.Name)

	bySkill := Criteria{Query: "postgres"}.Apply(apps)
	require.Len(t, bySkill, 1)
	assert.Equal(t, "Minh Pham", bySkill[0].Candidate.Name)

	assert.Empty(t, Criteria{Query: "nobody"}.Apply(apps))
}

func TestFilterLocation(t *testing.T) {
	apps := testApplicants()

	exact := Criteria{Location: "Da Nang"}.Apply(apps)
	require.Len(t, exact, 1)
	assert.Equal(t, "Minh Pham", exact[0].Candidate.Name)

	assert.Len(t, Criteria{Location: AllCities}.Apply(apps), 2)
	assert.Empty(t, Criteria{Location: "Hue"}.Apply(apps))
}

func TestFilterExperienceRangeInclusive(t *testing.T) {
	apps := testApplicants()

	got := Criteria{MinExperience: intPtr(4), MaxExperience: intPtr(4)}.Apply(apps)
	require.Len(t, got, 1)
	assert.Equal(t, "Linh Tran", got[0].Candidate.Name)

	assert.Len(t, Criteria{MinExperience: intPtr(0), MaxExperience: intPtr(10)}.Apply(apps), 2)
	assert.Empty(t, Criteria{MinExperience: intPtr(9)}.Apply(apps))
}

func TestFilterSkillsRequiresEvery(t *testing.T) {
	apps := testApplicants()

	// AND semantics: both skills must be satisfied
	got := Criteria{Skills: []string{"React", "Node"}}.Apply(apps)
	require.Len(t, got, 1)
	assert.Equal(t, "Linh Tran", got[0].Candidate.Name)

	assert.Empty(t, Criteria{Skills: []string{"React", "Go"}}.Apply(apps))
}

func TestFilterLanguageAndLevel(t *testing.T) {
	apps := testApplicants()

	assert.Len(t, Criteria{Language: "english"}.Apply(apps), 2)

	fluent := Criteria{Language: "English", Level: model.LevelFluent}.Apply(apps)
	require.Len(t, fluent, 1)
	assert.Equal(t, "Linh Tran", fluent[0].Candidate.Name)

	// exact level match, not "at least": native does not satisfy fluent
	assert.Empty(t, Criteria{Language: "English", Level: model.LevelNative}.Apply(apps))
	assert.Empty(t, Criteria{Language: "French"}.Apply(apps))
}

func TestFilterMinScore(t *testing.T) {
	apps := testApplicants()

	got := Criteria{MinScore: intPtr(60)}.Apply(apps)
	require.Len(t, got, 1)
	assert.Equal(t, 90, got[0].Application.MatchScore)

	assert.Len(t, Criteria{MinScore: intPtr(55)}.Apply(apps), 2)
}

func TestFilterDropsUnjoinableApplicants(t *testing.T) {
	apps := testApplicants()
	apps = append(apps, model.Applicant{
		Application: model.Application{ApplicationID: uuid.New()},
		Candidate:   nil,
	})

	// excluded silently even under the identity criteria
	assert.Len(t, Criteria{}.Apply(apps), 2)
}
