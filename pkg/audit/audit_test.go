package audit

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estebanrs/aulabot/pkg/logger"
)

func TestNewEvent(t *testing.T) {
	event := NewEvent(ActionSkillMatched, "study_plan")

	assert.NotEmpty(t, event.ID)
	assert.False(t, event.Time.IsZero())
	assert.Equal(t, ActionSkillMatched, event.Action)
	assert.Equal(t, "study_plan", event.SkillID)

	other := NewEvent(ActionSkillMatched, "study_plan")
	assert.NotEqual(t, event.ID, other.ID)
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogOutput(&buf)
	t.Cleanup(func() { logger.SetLogOutput(os.Stderr) })

	event := NewEvent(ActionLeakageBlocked, "quiz_generator")
	event.Detail = []string{"internal host URL"}
	LogSink{}.Record(context.Background(), event)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "leakage_blocked")
	assert.Contains(t, out, "quiz_generator")
	assert.Contains(t, out, event.ID)
}

func TestNopSink(t *testing.T) {
	// Must not panic or write anywhere.
	Nop{}.Record(context.Background(), NewEvent(ActionOutputReleased, ""))
}
