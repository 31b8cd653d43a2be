// Package engine implements the per-session status state machine (C5):
// cheap activity-delta gating, settle-then-probe classification, and Ready
// TTL derivation, tuned to keep pane captures rare.
package engine

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/weykon/agent-hand/internal/detector"
	"github.com/weykon/agent-hand/internal/store"
)

const (
	StatusCooldown = 2 * time.Second
	StatusFallback = 60 * time.Second
	ReadyTTLDefault = 40 * time.Minute

	runningBumpInterval = 30 * time.Second
)

// timers is the engine's own memoized, per-session, per-process state —
// never persisted. Rebuilt from scratch whenever a process starts, per
// §4.5's concurrency note.
type timers struct {
	lastActivity        int64
	activityStableSince time.Time
	lastProbeAt         time.Time
	runningBump         rate.Sometimes
}

// Engine tracks per-session timers across ticks for one process.
type Engine struct {
	sessions map[string]*timers
	readyTTL time.Duration
}

// New returns an Engine with the given Ready TTL (0 uses the default).
func New(readyTTL time.Duration) *Engine {
	if readyTTL <= 0 {
		readyTTL = ReadyTTLDefault
	}
	return &Engine{sessions: make(map[string]*timers), readyTTL: readyTTL}
}

func (e *Engine) timersFor(id string) *timers {
	t, ok := e.sessions[id]
	if !ok {
		t = &timers{}
		e.sessions[id] = t
	}
	return t
}

// Probe classifies a session's current screen. Supplied by the caller so
// the engine itself has no MuxAdapter dependency and stays pure/testable.
type Probe func() detector.Classification

// Tick advances one session's status given the adapter's (already
// refreshed) cache snapshot, mutating in.Status and its timestamp fields.
// missing indicates the session was absent from the cache snapshot.
func (e *Engine) Tick(in *store.Instance, activity int64, missing bool, probe Probe) {
	if missing {
		in.Status = store.StatusError
		delete(e.sessions, in.ID)
		return
	}

	t := e.timersFor(in.ID)
	now := time.Now()

	if t.lastActivity == 0 {
		t.lastActivity = activity
		t.activityStableSince = now
	}

	if activity > t.lastActivity {
		t.lastActivity = activity
		t.activityStableSince = now
		e.setRunning(in, t, now)
		return
	}

	stableFor := now.Sub(t.activityStableSince)
	sinceLastProbe := now.Sub(t.lastProbeAt)

	shouldProbe := (stableFor >= StatusCooldown && sinceLastProbe >= StatusCooldown) ||
		sinceLastProbe >= StatusFallback

	if !shouldProbe {
		return
	}

	t.lastProbeAt = now
	switch probe() {
	case detector.Busy:
		e.setRunning(in, t, now)
	case detector.Waiting:
		if in.Status != store.StatusWaiting {
			waitingAt := now
			in.LastWaitingAt = &waitingAt
		}
		in.Status = store.StatusWaiting
	default:
		in.Status = store.StatusIdle
	}
}

func (e *Engine) setRunning(in *store.Instance, t *timers, now time.Time) {
	in.Status = store.StatusRunning
	t.runningBump.Interval = runningBumpInterval
	t.runningBump.Do(func() {
		runningAt := now
		in.LastRunningAt = &runningAt
	})
}

// IsReady reports whether a session last ran within the engine's Ready TTL.
func (e *Engine) IsReady(in *store.Instance) bool {
	if in.LastRunningAt == nil {
		return false
	}
	return time.Since(*in.LastRunningAt) < e.readyTTL
}

// Forget drops a session's memoized timers, e.g. after it's removed.
func (e *Engine) Forget(id string) {
	delete(e.sessions, id)
}
