package priority

import "github.com/weykon/agent-hand/internal/store"

// Counters tallies every session into exactly one bucket: Ready excludes
// sessions that are also Running; Idle excludes Ready.
type Counters struct {
	Waiting int
	Ready   int
	Running int
	Idle    int
	Error   int
}

// IsReady reports whether a session is ready: the engine owns Ready TTL
// logic, so the caller supplies the decision per session.
type IsReady func(in *store.Instance) bool

// Count buckets every instance exactly once.
func Count(instances []*store.Instance, ready IsReady) Counters {
	var c Counters
	for _, in := range instances {
		switch in.Status {
		case store.StatusWaiting:
			c.Waiting++
		case store.StatusRunning:
			c.Running++
		case store.StatusError:
			c.Error++
		case store.StatusIdle:
			if ready(in) {
				c.Ready++
			} else {
				c.Idle++
			}
		default: // Starting
			c.Idle++
		}
	}
	return c
}
