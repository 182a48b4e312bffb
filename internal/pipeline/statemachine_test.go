package pipeline

import (
	"testing"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to model.Status
		legal    bool
	}{
		{model.StatusPending, model.StatusReviewing, true},
		{model.StatusPending, model.StatusRejected, true},
		{model.StatusReviewing, model.StatusShortlisted, true},
		{model.StatusReviewing, model.StatusRejected, true},
		{model.StatusShortlisted, model.StatusInterviewing, true},
		{model.StatusShortlisted, model.StatusRejected, true},
		{model.StatusInterviewing, model.StatusOffered, true},
		{model.StatusInterviewing, model.StatusRejected, true},

		// no skipping stages
		{model.StatusPending, model.StatusInterviewing, false},
		{model.StatusPending, model.StatusShortlisted, false},
		{model.StatusPending, model.StatusOffered, false},
		{model.StatusReviewing, model.StatusInterviewing, false},

		// no moving backwards
		{model.StatusReviewing, model.StatusPending, false},
		{model.StatusInterviewing, model.StatusShortlisted, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.legal, CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestTerminalStatesHaveNoOutgoingEdges(t *testing.T) {
	for _, from := range []model.Status{model.StatusOffered, model.StatusRejected} {
		for _, to := range model.Statuses {
			assert.False(t, CanTransition(from, to), "%s -> %s must be illegal", from, to)
		}
	}
}

func TestNextStatuses(t *testing.T) {
	assert.Equal(t, []model.Status{model.StatusReviewing, model.StatusRejected}, NextStatuses(model.StatusPending))
	assert.Empty(t, NextStatuses(model.StatusOffered))
	assert.Empty(t, NextStatuses(model.StatusRejected))
}
