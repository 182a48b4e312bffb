package pipeline

import (
	"context"
	"time"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationStatusChanged struct {
	ApplicationID uuid.UUID    `json:"application_id"`
	OldStatus     model.Status `json:"old_status"`
	NewStatus     model.Status `json:"new_status"`
	At            time.Time    `json:"at"`
}

type NoteAdded struct {
	ApplicationID uuid.UUID `json:"application_id"`
	NoteID        uuid.UUID `json:"note_id"`
}

type InterviewBooked struct {
	ApplicationID uuid.UUID `json:"application_id"`
	SlotID        uuid.UUID `json:"slot_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
}

// Sink receives pipeline events after the owning operation has committed.
// Delivery is best-effort; sinks must not block the pipeline.
type Sink interface {
	StatusChanged(ctx context.Context, ev ApplicationStatusChanged)
	NoteAdded(ctx context.Context, ev NoteAdded)
	InterviewBooked(ctx context.Context, ev InterviewBooked)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) StatusChanged(context.Context, ApplicationStatusChanged) {}
func (NopSink) NoteAdded(context.Context, NoteAdded)                    {}
func (NopSink) InterviewBooked(context.Context, InterviewBooked)        {}

// LogSink writes events to a zap logger.
type LogSink struct {
	Logger *zap.Logger
}

func (s LogSink) StatusChanged(_ context.Context, ev ApplicationStatusChanged) {
	s.Logger.Sugar().Infow("application status changed",
		"application_id", ev.ApplicationID, "old_status", ev.OldStatus, "new_status", ev.NewStatus, "at", ev.At)
}

func (s LogSink) NoteAdded(_ context.Context, ev NoteAdded) {
	s.Logger.Sugar().Infow("note added", "application_id", ev.ApplicationID, "note_id", ev.NoteID)
}

func (s LogSink) InterviewBooked(_ context.Context, ev InterviewBooked) {
	s.Logger.Sugar().Infow("interview booked",
		"application_id", ev.ApplicationID, "slot_id", ev.SlotID, "scheduled_at", ev.ScheduledAt)
}
