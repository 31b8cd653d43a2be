// Package analytics implements the opt-in daily activity log: one JSON
// array file per day, appended to on enter/exit/switch events.
package analytics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/weykon/agent-hand/internal/apperr"
)

// EventType enumerates the three logged event kinds.
type EventType string

const (
	Enter  EventType = "enter"
	Exit   EventType = "exit"
	Switch EventType = "switch"
)

// Event is one logged activity record.
type Event struct {
	Timestamp     time.Time `json:"timestamp"`
	EventType     EventType `json:"event_type"`
	SessionID     string    `json:"session_id"`
	SessionName   string    `json:"session_name"`
	DurationSecs  *float64  `json:"duration_secs,omitempty"`
}

// Log appends events to <profileDir>/analytics/<YYYY-MM-DD>.json. Disabled
// unless Enabled is true, per the analytics.enabled config option
// (default false — opt-in).
type Log struct {
	dir     string
	enabled bool
	mu      sync.Mutex
}

// New returns a Log rooted at profileDir/analytics.
func New(profileDir string, enabled bool) *Log {
	return &Log{dir: filepath.Join(profileDir, "analytics"), enabled: enabled}
}

// Append adds one event to today's file, creating it if needed. A no-op
// when the log is disabled.
func (l *Log) Append(ev Event) error {
	if !l.enabled {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return apperr.New(apperr.IO, "analytics.Append", err)
	}

	path := l.pathFor(ev.Timestamp)
	events, err := readEvents(path)
	if err != nil {
		return apperr.New(apperr.Parse, "analytics.Append", err)
	}
	events = append(events, ev)

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return apperr.New(apperr.Parse, "analytics.Append", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperr.New(apperr.IO, "analytics.Append", err)
	}
	return nil
}

func (l *Log) pathFor(ts time.Time) string {
	return filepath.Join(l.dir, ts.Format("2006-01-02")+".json")
}

func readEvents(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}
