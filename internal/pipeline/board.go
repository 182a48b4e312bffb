package pipeline

import (
	"sort"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
)

type SortOrder string

const (
	// SortByAppliedAt orders each lane oldest application first.
	SortByAppliedAt SortOrder = "applied_at"
	// SortByMatchScore orders each lane best match first.
	SortByMatchScore SortOrder = "match_score"
)

type Lane struct {
	Status     model.Status      `json:"status"`
	Applicants []model.Applicant `json:"applicants"`
}

// Board is the Kanban view of one job's applications, partitioned into lanes
// in the fixed pipeline order.
type Board struct {
	JobID uuid.UUID `json:"job_id"`
	Lanes []Lane    `json:"lanes"`
}

// BuildBoard partitions applicants into status lanes. Lane order is fixed;
// each lane is sorted by appliedAt ascending unless SortByMatchScore is
// requested.
func BuildBoard(jobID uuid.UUID, applicants []model.Applicant, order SortOrder) *Board {
	byStatus := make(map[model.Status][]model.Applicant, len(model.Statuses))
	for _, a := range applicants {
		byStatus[a.Application.Status] = append(byStatus[a.Application.Status], a)
	}

	board := &Board{JobID: jobID, Lanes: make([]Lane, 0, len(model.Statuses))}
	for _, status := range model.Statuses {
		lane := byStatus[status]
		sortLane(lane, order)
		if lane == nil {
			lane = []model.Applicant{}
		}
		board.Lanes = append(board.Lanes, Lane{Status: status, Applicants: lane})
	}
	return board
}

func sortLane(lane []model.Applicant, order SortOrder) {
	switch order {
	case SortByMatchScore:
		sort.SliceStable(lane, func(i, j int) bool {
			return lane[i].Application.MatchScore > lane[j].Application.MatchScore
		})
	default:
		sort.SliceStable(lane, func(i, j int) bool {
			return lane[i].Application.AppliedAt.Before(lane[j].Application.AppliedAt)
		})
	}
}
