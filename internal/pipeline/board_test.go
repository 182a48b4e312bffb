package pipeline

import (
	"testing"
	"time"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardApplicant(status model.Status, appliedAt time.Time, score int) model.Applicant {
	return model.Applicant{
		Application: model.Application{
			ApplicationID: uuid.New(),
			Status:        status,
			MatchScore:    score,
			AppliedAt:     appliedAt,
		},
		Candidate: &model.CandidateProfile{},
	}
}

func TestBuildBoardLaneOrderIsFixed(t *testing.T) {
	board := BuildBoard(uuid.New(), nil, SortByAppliedAt)

	require.Len(t, board.Lanes, len(model.Statuses))
	for i, lane := range board.Lanes {
		assert.Equal(t, model.Statuses[i], lane.Status)
		assert.NotNil(t, lane.Applicants)
	}
}

func TestBuildBoardPartitionsByStatus(t *testing.T) {
	now := time.Now()
	applicants := []model.Applicant{
		boardApplicant(model.StatusPending, now, 10),
		boardApplicant(model.StatusPending, now.Add(time.Hour), 20),
		boardApplicant(model.StatusOffered, now, 30),
	}

	board := BuildBoard(uuid.New(), applicants, SortByAppliedAt)

	assert.Len(t, board.Lanes[0].Applicants, 2) // pending
	assert.Len(t, board.Lanes[4].Applicants, 1) // offered
	assert.Empty(t, board.Lanes[1].Applicants)  // reviewing
}

func TestBuildBoardLaneSortedByAppliedAt(t *testing.T) {
	now := time.Now()
	newest := boardApplicant(model.StatusPending, now.Add(2*time.Hour), 0)
	oldest := boardApplicant(model.StatusPending, now, 0)
	middle := boardApplicant(model.StatusPending, now.Add(time.Hour), 0)

	board := BuildBoard(uuid.New(), []model.Applicant{newest, oldest, middle}, SortByAppliedAt)

	lane := board.Lanes[0].Applicants
	require.Len(t, lane, 3)
	assert.Equal(t, oldest.Application.ApplicationID, lane[0].Application.ApplicationID)
	assert.Equal(t, middle.Application.ApplicationID, lane[1].Application.ApplicationID)
	assert.Equal(t, newest.Application.ApplicationID, lane[2].Application.ApplicationID)
}

func TestBuildBoardLaneSortedByMatchScore(t *testing.T) {
	now := time.Now()
	low := boardApplicant(model.StatusReviewing, now, 40)
	high := boardApplicant(model.StatusReviewing, now.Add(time.Hour), 95)

	board := BuildBoard(uuid.New(), []model.Applicant{low, high}, SortByMatchScore)

	lane := board.Lanes[1].Applicants
	require.Len(t, lane, 2)
	assert.Equal(t, 95, lane[0].Application.MatchScore)
	assert.Equal(t, 40, lane[1].Application.MatchScore)
}
