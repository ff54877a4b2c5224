package inspector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defuse-protocol/defuse-core/intent"
)

func fixedTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func TestExecuteInspectorEmitsOnlyNonEmptyGroups(t *testing.T) {
	e := NewExecuteInspector()
	e.OnTransfer("user1.near", intent.Transfer{Receiver: "user2.near"})
	e.OnIntentExecuted("user1.near", [32]byte{1, 2, 3})

	events, err := e.Emit()
	require.NoError(t, err)
	require.Len(t, events, 2, "only Transfer and IntentsExecuted groups were populated")

	kinds := map[EventKind]bool{}
	for _, ev := range events {
		kinds[ev.Kind] = true
		assert.NotEmpty(t, ev.BatchID)
	}
	assert.True(t, kinds[EventTransfer])
	assert.True(t, kinds[EventIntentsExecuted])
	assert.False(t, kinds[EventTokenDiff])
}

func TestExecuteInspectorEmptyBatchEmitsNothing(t *testing.T) {
	e := NewExecuteInspector()
	events, err := e.Emit()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestExecuteInspectorCallbackEvent(t *testing.T) {
	e := NewExecuteInspector()
	e.OnCallback("user1.near", "receiver.near", `{"action":"stake"}`)

	events, err := e.Emit()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventCallbackDescriptor, events[0].Kind)
}

func TestSimulateInspectorTracksMinDeadlineAndExecuted(t *testing.T) {
	s := NewSimulateInspector()

	early := fixedTime(100)
	late := fixedTime(200)
	s.OnDeadline(late)
	s.OnDeadline(early)

	s.OnIntentExecuted("user1.near", [32]byte{9})

	min, ok := s.MinDeadline()
	require.True(t, ok)
	assert.True(t, min.Equal(early))
	assert.Len(t, s.Executed(), 1)
}

func TestSimulateInspectorNoDeadlinesReportsNotOk(t *testing.T) {
	s := NewSimulateInspector()
	_, ok := s.MinDeadline()
	assert.False(t, ok)
}
