// Package audit defines the write-only sink the skill core emits
// security-relevant events to. The core never reads events back;
// downstream ownership of storage and retention lives elsewhere.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/estebanrs/aulabot/pkg/logger"
)

// Action identifies what happened.
type Action string

const (
	// ActionSkillMatched records an intent-routing decision.
	ActionSkillMatched Action = "skill_matched"
	// ActionOutputRejected records a failed output-contract validation.
	ActionOutputRejected Action = "output_rejected"
	// ActionLeakageBlocked records generated text withheld by the
	// leakage detector.
	ActionLeakageBlocked Action = "leakage_blocked"
	// ActionOutputReleased records text that passed both gates.
	ActionOutputReleased Action = "output_released"
)

// Event is one audit record. ID and Time are assigned by NewEvent.
type Event struct {
	ID      string         `json:"id"`
	Time    time.Time      `json:"time"`
	Action  Action         `json:"action"`
	SkillID string         `json:"skillId,omitempty"`
	Detail  []string       `json:"detail,omitempty"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(action Action, skillID string) Event {
	return Event{
		ID:      uuid.NewString(),
		Time:    time.Now().UTC(),
		Action:  action,
		SkillID: skillID,
	}
}

// Sink consumes audit events. Implementations must be safe for
// concurrent use and must not block the request path.
type Sink interface {
	Record(ctx context.Context, event Event)
}

// LogSink writes events through the structured logger.
type LogSink struct{}

// Record logs the event with its fields at info level.
func (LogSink) Record(ctx context.Context, event Event) {
	entry := logger.G(ctx).WithFields(logrus.Fields{
		"auditId": event.ID,
		"action":  event.Action,
	})
	if event.SkillID != "" {
		entry = entry.WithField("skillId", event.SkillID)
	}
	if len(event.Detail) > 0 {
		entry = entry.WithField("detail", event.Detail)
	}
	for k, v := range event.Fields {
		entry = entry.WithField(k, v)
	}
	entry.Info("audit event")
}

// Nop discards every event.
type Nop struct{}

// Record does nothing.
func (Nop) Record(context.Context, Event) {}
