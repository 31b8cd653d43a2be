package analytics

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendDisabledIsNoOp(t *testing.T) {
	dir := t.TempDir()
	l := New(dir, false)
	require.NoError(t, l.Append(Event{Timestamp: time.Now(), EventType: Enter, SessionID: "a"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppendWritesAndAccumulates(t *testing.T) {
	dir := t.TempDir()
	l := New(dir, true)
	ts := time.Date(2026, 7, 31, 10, 0, 0, 0, time.UTC)

	require.NoError(t, l.Append(Event{Timestamp: ts, EventType: Enter, SessionID: "a"}))
	require.NoError(t, l.Append(Event{Timestamp: ts, EventType: Exit, SessionID: "a"}))

	data, err := os.ReadFile(l.pathFor(ts))
	require.NoError(t, err)

	var events []Event
	require.NoError(t, json.Unmarshal(data, &events))
	require.Len(t, events, 2)
	assert.Equal(t, Enter, events[0].EventType)
	assert.Equal(t, Exit, events[1].EventType)
}
