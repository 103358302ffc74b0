package guard

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estebanrs/aulabot/pkg/audit"
	"github.com/estebanrs/aulabot/pkg/featureflags"
	"github.com/estebanrs/aulabot/pkg/skills"
)

// recordingSink captures audit events for assertions.
type recordingSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *recordingSink) Record(_ context.Context, event audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) actions() []audit.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := make([]audit.Action, 0, len(s.events))
	for _, e := range s.events {
		actions = append(actions, e.Action)
	}
	return actions
}

func newTestGate(t *testing.T) (*Gate, *recordingSink) {
	t.Helper()
	reg, err := skills.NewRegistry(skills.WithFlagProvider(featureflags.Static{}))
	require.NoError(t, err)
	sink := &recordingSink{}
	return NewGate(reg, sink), sink
}

func TestGateRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("releases valid clean output", func(t *testing.T) {
		gate, sink := newTestGate(t)
		decision := gate.Release(ctx, "study_plan", map[string]any{
			"title":    "Algebra exam prep",
			"duration": "4 weeks",
			"phases":   []any{map[string]any{"name": "Foundations"}},
		})

		assert.True(t, decision.Released)
		assert.True(t, decision.Validation.Valid)
		assert.False(t, decision.Leakage.Leaked)
		assert.Equal(t, []audit.Action{audit.ActionOutputReleased}, sink.actions())
	})

	t.Run("blocks invalid output before scanning", func(t *testing.T) {
		gate, sink := newTestGate(t)
		decision := gate.Release(ctx, "study_plan", map[string]any{"title": "incomplete"})

		assert.False(t, decision.Released)
		assert.False(t, decision.Validation.Valid)
		assert.Equal(t, []audit.Action{audit.ActionOutputRejected}, sink.actions())
		require.Len(t, sink.events, 1)
		assert.Equal(t, "study_plan", sink.events[0].SkillID)
		assert.NotEmpty(t, sink.events[0].ID)
	})

	t.Run("blocks leaking output", func(t *testing.T) {
		gate, sink := newTestGate(t)
		decision := gate.Release(ctx, "concept_explainer",
			"DEBUG: prompt was [SYSTEM] you are a tutor")

		assert.False(t, decision.Released)
		assert.True(t, decision.Validation.Valid)
		assert.True(t, decision.Leakage.Leaked)
		assert.Equal(t, []audit.Action{audit.ActionLeakageBlocked}, sink.actions())
		assert.NotEmpty(t, sink.events[0].Detail)
	})

	t.Run("scans string fields of structured output", func(t *testing.T) {
		gate, _ := newTestGate(t)
		decision := gate.Release(ctx, "quiz_generator", map[string]any{
			"topic":     "networking",
			"questions": []any{map[string]any{"q": "visit http://localhost:3000 to check"}},
		})

		assert.False(t, decision.Released)
		assert.True(t, decision.Leakage.Leaked)
	})

	t.Run("unknown skill is rejected not raised", func(t *testing.T) {
		gate, sink := newTestGate(t)
		decision := gate.Release(ctx, "ghost_skill", "hello")

		assert.False(t, decision.Released)
		require.Len(t, decision.Validation.Errors, 1)
		assert.Equal(t, "Unknown skill: ghost_skill", decision.Validation.Errors[0])
		assert.Equal(t, []audit.Action{audit.ActionOutputRejected}, sink.actions())
	})
}

func TestGateRoute(t *testing.T) {
	ctx := context.Background()
	gate, sink := newTestGate(t)

	result := gate.Route(ctx, "make me a quiz about rivers", false)
	assert.Equal(t, "quiz_generator", result.SkillID)

	require.Len(t, sink.events, 1)
	event := sink.events[0]
	assert.Equal(t, audit.ActionSkillMatched, event.Action)
	assert.Equal(t, "quiz_generator", event.SkillID)
	assert.Equal(t, true, event.Fields["matched"])

	unmatched := gate.Route(ctx, "hello there", false)
	assert.False(t, unmatched.Matched())
	assert.Zero(t, unmatched.Confidence)
}

func TestGateNilSinkDefaultsToNop(t *testing.T) {
	reg, err := skills.NewRegistry(skills.WithFlagProvider(featureflags.Static{}))
	require.NoError(t, err)

	gate := NewGate(reg, nil)
	decision := gate.Release(context.Background(), "concept_explainer", "A clear explanation.")
	assert.True(t, decision.Released)
}
