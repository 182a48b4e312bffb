package pipeline

import "github.com/anhtu2808/talent-nexus-sub000/pkg/model"

// transitions is the adjacency table of the hiring pipeline. Rejection is
// reachable from every non-terminal state; offered and rejected have no
// outgoing edges. Reopen is deliberately absent: it is an administrative
// override with its own entry point, not a graph edge.
var transitions = map[model.Status][]model.Status{
	model.StatusPending:      {model.StatusReviewing, model.StatusRejected},
	model.StatusReviewing:    {model.StatusShortlisted, model.StatusRejected},
	model.StatusShortlisted:  {model.StatusInterviewing, model.StatusRejected},
	model.StatusInterviewing: {model.StatusOffered, model.StatusRejected},
	model.StatusOffered:      {},
	model.StatusRejected:     {},
}

// CanTransition reports whether from -> to is an edge of the pipeline graph.
func CanTransition(from, to model.Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from the given one in normal
// flow, in lane order.
func NextStatuses(from model.Status) []model.Status {
	next := transitions[from]
	out := make([]model.Status, len(next))
	copy(out, next)
	return out
}
