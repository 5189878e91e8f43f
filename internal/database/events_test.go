package database

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventJournal_LogAndFetch(t *testing.T) {
	pub := &recordingPublisher{}
	s := NewStore(pub)
	ctx := context.Background()

	require.NoError(t, s.Events.LogEvent(ctx, "alice", EventProjectCreated, map[string]string{"id": "p1"}))
	require.NoError(t, s.Events.LogEvent(ctx, "bob", EventProjectCreated, map[string]string{"id": "p2"}))
	require.NoError(t, s.Events.LogEvent(ctx, "alice", EventFileUploaded, map[string]string{"id": "f1"}))

	events, err := s.Events.GetEventsSince(ctx, "alice", 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, EventProjectCreated, events[0].EventType)
	require.Equal(t, EventFileUploaded, events[1].EventType)
	require.Less(t, events[0].ID, events[1].ID)
	require.JSONEq(t, `{"id":"f1"}`, string(events[1].Payload))

	later, err := s.Events.GetEventsSince(ctx, "alice", events[0].ID)
	require.NoError(t, err)
	require.Len(t, later, 1)
	require.Equal(t, events[1].ID, later[0].ID)

	none, err := s.Events.GetEventsSince(ctx, "nobody", 0)
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)

	require.Len(t, pub.events["alice"], 2)
	var pushed Event
	require.NoError(t, json.Unmarshal(pub.events["alice"][1], &pushed))
	require.Equal(t, events[1].ID, pushed.ID)
}

func TestEventJournal_Bounded(t *testing.T) {
	j := NewEventJournal(nil, 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, j.LogEvent(ctx, "u", EventProjectUpdated, i))
	}

	events, err := j.GetEventsSince(ctx, "u", 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, int64(3), events[0].ID)
	require.Equal(t, int64(5), events[2].ID)
}

func TestEventJournal_PageSize(t *testing.T) {
	j := NewEventJournal(nil, 500)
	ctx := context.Background()

	for i := 0; i < 150; i++ {
		require.NoError(t, j.LogEvent(ctx, "u", EventProjectUpdated, i))
	}

	events, err := j.GetEventsSince(ctx, "u", 0)
	require.NoError(t, err)
	require.Len(t, events, 100)
}

func TestEventJournal_CancelledContext(t *testing.T) {
	j := NewEventJournal(nil, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, j.LogEvent(ctx, "u", EventProjectUpdated, nil), context.Canceled)
	_, err := j.GetEventsSince(ctx, "u", 0)
	require.ErrorIs(t, err, context.Canceled)
}
