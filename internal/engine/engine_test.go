package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weykon/agent-hand/internal/detector"
	"github.com/weykon/agent-hand/internal/store"
)

func busyProbe() detector.Classification   { return detector.Busy }
func waitingProbe() detector.Classification { return detector.Waiting }
func noneProbe() detector.Classification   { return detector.None }

func TestTickMissingIsError(t *testing.T) {
	e := New(0)
	in := &store.Instance{ID: "a"}
	e.Tick(in, 0, true, noneProbe)
	assert.Equal(t, store.StatusError, in.Status)
}

func TestTickActivityAdvanceIsRunningWithoutProbe(t *testing.T) {
	e := New(0)
	in := &store.Instance{ID: "a"}
	probed := false
	probe := func() detector.Classification { probed = true; return detector.None }

	e.Tick(in, 0, false, noneProbe) // seed (first tick always probes)
	e.Tick(in, 5, false, probe) // activity advanced

	assert.Equal(t, store.StatusRunning, in.Status)
	assert.False(t, probed)
	require.NotNil(t, in.LastRunningAt)
}

func TestTickStableActivityDoesNotProbeBeforeCooldown(t *testing.T) {
	e := New(0)
	in := &store.Instance{ID: "a"}
	e.Tick(in, 5, false, noneProbe) // seed, stable from now

	probed := false
	probe := func() detector.Classification { probed = true; return detector.None }
	e.Tick(in, 5, false, probe) // immediately again, no cooldown elapsed

	assert.False(t, probed)
}

func TestTickProbesAfterCooldownElapsed(t *testing.T) {
	e := New(0)
	in := &store.Instance{ID: "a"}
	ti := e.timersFor("a")
	ti.lastActivity = 5
	ti.activityStableSince = time.Now().Add(-3 * time.Second)
	ti.lastProbeAt = time.Now().Add(-3 * time.Second)

	e.Tick(in, 5, false, busyProbe)
	assert.Equal(t, store.StatusRunning, in.Status)
}

func TestTickWaitingBumpsLastWaitingAtOnce(t *testing.T) {
	e := New(0)
	in := &store.Instance{ID: "a"}
	ti := e.timersFor("a")
	ti.lastActivity = 5
	ti.activityStableSince = time.Now().Add(-3 * time.Second)
	ti.lastProbeAt = time.Now().Add(-3 * time.Second)

	e.Tick(in, 5, false, waitingProbe)
	require.NotNil(t, in.LastWaitingAt)
	first := *in.LastWaitingAt

	ti.lastProbeAt = time.Now().Add(-3 * time.Second)
	e.Tick(in, 5, false, waitingProbe)
	assert.Equal(t, first, *in.LastWaitingAt)
}

func TestTickIdleOnNoneProbe(t *testing.T) {
	e := New(0)
	in := &store.Instance{ID: "a"}
	ti := e.timersFor("a")
	ti.lastActivity = 5
	ti.activityStableSince = time.Now().Add(-3 * time.Second)
	ti.lastProbeAt = time.Now().Add(-3 * time.Second)

	e.Tick(in, 5, false, noneProbe)
	assert.Equal(t, store.StatusIdle, in.Status)
}

func TestIsReadyWithinTTL(t *testing.T) {
	e := New(time.Hour)
	recent := time.Now().Add(-10 * time.Minute)
	in := &store.Instance{LastRunningAt: &recent}
	assert.True(t, e.IsReady(in))
}

func TestIsReadyExpired(t *testing.T) {
	e := New(time.Minute)
	old := time.Now().Add(-time.Hour)
	in := &store.Instance{LastRunningAt: &old}
	assert.False(t, e.IsReady(in))
}

func TestIsReadyNeverRun(t *testing.T) {
	e := New(0)
	in := &store.Instance{}
	assert.False(t, e.IsReady(in))
}

func TestFallbackProbeAfterLongQuiet(t *testing.T) {
	e := New(0)
	in := &store.Instance{ID: "a"}
	ti := e.timersFor("a")
	ti.lastActivity = 5
	ti.activityStableSince = time.Now() // just became stable, under cooldown
	ti.lastProbeAt = time.Now().Add(-61 * time.Second)

	probed := false
	probe := func() detector.Classification { probed = true; return detector.None }
	e.Tick(in, 5, false, probe)
	assert.True(t, probed)
}
