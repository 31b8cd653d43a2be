package priority

import (
	"sort"
	"time"

	"github.com/weykon/agent-hand/internal/store"
)

// JumpTarget selects the next session to switch to, per §4.6: newest
// Waiting session first (on equal timestamps the earlier-listed one wins;
// with no Waiting session it falls through to the round-robin Idle+Ready
// candidate list). currentID is the instance ID (not the multiplexer
// session name) of the session the caller is attached to, if any.
func JumpTarget(instances []*store.Instance, ready IsReady, currentID string) (target *store.Instance, waiting bool) {
	if w := newestWaiting(instances, currentID); w != nil {
		return w, true
	}

	candidates := idleAndReady(instances, ready)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].MuxName() < candidates[j].MuxName()
	})

	switch len(candidates) {
	case 0:
		return nil, false
	case 1:
		if candidates[0].ID == currentID {
			return nil, false
		}
		return candidates[0], false
	default:
		pos := -1
		for i, c := range candidates {
			if c.ID == currentID {
				pos = i
				break
			}
		}
		if pos < 0 {
			return candidates[0], false
		}
		return candidates[(pos+1)%len(candidates)], false
	}
}

func newestWaiting(instances []*store.Instance, currentID string) *store.Instance {
	var best *store.Instance
	for _, in := range instances {
		if in.Status != store.StatusWaiting || in.ID == currentID {
			continue
		}
		if best == nil || waitingRank(in).After(waitingRank(best)) {
			best = in
		}
	}
	return best
}

func waitingRank(in *store.Instance) time.Time {
	if in.LastWaitingAt != nil {
		return *in.LastWaitingAt
	}
	return in.CreatedAt
}

func idleAndReady(instances []*store.Instance, ready IsReady) []*store.Instance {
	var out []*store.Instance
	for _, in := range instances {
		if in.Status == store.StatusIdle && ready(in) {
			out = append(out, in)
		}
	}
	return out
}
