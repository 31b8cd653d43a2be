package mux

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// cacheTTL is how long a refreshCache snapshot is considered valid. Exists
// and Activity return an invalid result once the cache is older than this,
// forcing the caller to call RefreshCache again (§4.3's "None = invalid
// cache" contract — unlike a silent subprocess fallback, a stale read here
// surfaces as ok==false).
const cacheTTL = 2 * time.Second

type cache struct {
	mu        sync.RWMutex
	activity  map[string]int64 // session name -> activity epoch
	updatedAt time.Time
}

// RefreshCache replaces the in-memory snapshot by listing every session on
// the private socket. On failure the cache is cleared rather than left
// stale.
func (a *Adapter) RefreshCache() {
	out, err := a.cmd("list-sessions", "-F", "#{session_name}\t#{session_activity}").Output()
	if err != nil {
		a.cache.mu.Lock()
		a.cache.activity = nil
		a.cache.updatedAt = time.Time{}
		a.cache.mu.Unlock()
		return
	}

	next := make(map[string]int64)
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 || !strings.HasPrefix(parts[0], SessionPrefix) {
			continue
		}
		activity, _ := strconv.ParseInt(parts[1], 10, 64)
		next[parts[0]] = activity
	}

	a.cache.mu.Lock()
	a.cache.activity = next
	a.cache.updatedAt = time.Now()
	a.cache.mu.Unlock()
}

// Exists reports whether name is a known session. ok is false when the
// cache has gone stale; the caller must RefreshCache and retry.
func (a *Adapter) Exists(name string) (exists bool, ok bool) {
	a.cache.mu.RLock()
	defer a.cache.mu.RUnlock()
	if a.cache.activity == nil || time.Since(a.cache.updatedAt) > cacheTTL {
		return false, false
	}
	_, exists = a.cache.activity[name]
	return exists, true
}

// Activity returns name's activity epoch. ok is false when the cache is
// stale or name is unknown.
func (a *Adapter) Activity(name string) (activity int64, ok bool) {
	a.cache.mu.RLock()
	defer a.cache.mu.RUnlock()
	if a.cache.activity == nil || time.Since(a.cache.updatedAt) > cacheTTL {
		return 0, false
	}
	activity, ok = a.cache.activity[name]
	return activity, ok
}

// insertCached eagerly registers a newly created session in the cache
// without waiting for the next RefreshCache, per §4.3's Create contract.
func (a *Adapter) insertCached(name string) {
	a.cache.mu.Lock()
	defer a.cache.mu.Unlock()
	if a.cache.activity == nil {
		a.cache.activity = make(map[string]int64)
	}
	a.cache.activity[name] = time.Now().Unix()
	a.cache.updatedAt = time.Now()
}
