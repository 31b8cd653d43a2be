package priority

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weykon/agent-hand/internal/store"
)

func alwaysReady(in *store.Instance) bool  { return true }
func neverReady(in *store.Instance) bool   { return false }

func TestCountBucketsEachSessionOnce(t *testing.T) {
	instances := []*store.Instance{
		{ID: "a", Status: store.StatusWaiting},
		{ID: "b", Status: store.StatusRunning},
		{ID: "c", Status: store.StatusIdle},
		{ID: "d", Status: store.StatusIdle},
		{ID: "e", Status: store.StatusError},
	}
	ready := func(in *store.Instance) bool { return in.ID == "c" }

	c := Count(instances, ready)
	assert.Equal(t, Counters{Waiting: 1, Ready: 1, Running: 1, Idle: 1, Error: 1}, c)
}

func TestJumpTargetPrefersNewestWaiting(t *testing.T) {
	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	instances := []*store.Instance{
		{ID: "a", Status: store.StatusWaiting, LastWaitingAt: &older},
		{ID: "b", Status: store.StatusWaiting, LastWaitingAt: &newer},
	}

	target, waiting := JumpTarget(instances, alwaysReady, "")
	require.NotNil(t, target)
	assert.True(t, waiting)
	assert.Equal(t, "b", target.ID)
}

func TestJumpTargetExcludesCurrentWaiting(t *testing.T) {
	now := time.Now()
	instances := []*store.Instance{
		{ID: "current", Status: store.StatusWaiting, LastWaitingAt: &now},
	}
	target, _ := JumpTarget(instances, alwaysReady, "current")
	assert.Nil(t, target)
}

func TestJumpTargetRoundRobinSingleCandidate(t *testing.T) {
	instances := []*store.Instance{
		{ID: "a", Status: store.StatusIdle, ProjectPath: "/x"},
	}
	target, waiting := JumpTarget(instances, alwaysReady, "")
	require.NotNil(t, target)
	assert.False(t, waiting)
	assert.Equal(t, "a", target.ID)
}

func TestJumpTargetSingleCandidateIsCurrentMeansNoTarget(t *testing.T) {
	instances := []*store.Instance{
		{ID: "a", Status: store.StatusIdle},
	}
	target, _ := JumpTarget(instances, alwaysReady, "a")
	assert.Nil(t, target)
}

func TestJumpTargetRoundRobinAdvancesPastCurrent(t *testing.T) {
	instances := []*store.Instance{
		{ID: "a", Status: store.StatusIdle},
		{ID: "b", Status: store.StatusIdle},
		{ID: "c", Status: store.StatusIdle},
	}
	// sorted by MuxName: agentdeck_rs_a, agentdeck_rs_b, agentdeck_rs_c
	target, _ := JumpTarget(instances, alwaysReady, "b")
	require.NotNil(t, target)
	assert.Equal(t, "c", target.ID)
}

func TestJumpTargetRoundRobinWrapsAround(t *testing.T) {
	instances := []*store.Instance{
		{ID: "a", Status: store.StatusIdle},
		{ID: "b", Status: store.StatusIdle},
	}
	target, _ := JumpTarget(instances, alwaysReady, "b")
	require.NotNil(t, target)
	assert.Equal(t, "a", target.ID)
}

func TestJumpTargetCurrentNotInListPicksFirst(t *testing.T) {
	instances := []*store.Instance{
		{ID: "a", Status: store.StatusIdle},
		{ID: "b", Status: store.StatusIdle},
	}
	target, _ := JumpTarget(instances, alwaysReady, "zzz")
	require.NotNil(t, target)
	assert.Equal(t, "a", target.ID)
}

func TestJumpTargetNoCandidates(t *testing.T) {
	instances := []*store.Instance{{ID: "a", Status: store.StatusRunning}}
	target, _ := JumpTarget(instances, neverReady, "")
	assert.Nil(t, target)
}

func TestFormatStatusLineBasic(t *testing.T) {
	c := Counters{Waiting: 1, Ready: 2, Running: 3, Idle: 4}
	s := FormatStatusLine(c, "", false, false, "")
	assert.Equal(t, "AH !1 ✓2 ●3 ○4 ^N", s)
}

func TestFormatStatusLineWithErrorsAndHint(t *testing.T) {
	c := Counters{Error: 2}
	s := FormatStatusLine(c, "", false, false, "v2 available")
	assert.True(t, strings.Contains(s, "✕2"))
	assert.True(t, strings.HasSuffix(s, "v2 available"))
}

func TestFormatStatusLineTruncatesTitle(t *testing.T) {
	long := "this-is-a-very-long-session-title-that-overflows"
	s := FormatStatusLine(Counters{}, long, true, true, "")
	runes := []rune(truncateTitle(long))
	assert.LessOrEqual(t, len(runes), maxTitleRunes)
	assert.True(t, strings.Contains(s, "…"))
}
