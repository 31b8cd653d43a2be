// Package update reads the cached update-check result used to show a
// statusline hint. Fetching new releases and self-replacing the binary are
// out of scope; this package only ever reads a cache file written by some
// other process.
package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const cacheTTL = 24 * time.Hour

// CachePath is $HOME/.agent-hand/cache/update.json per the external
// interfaces table.
func CachePath(baseDir string) string {
	return filepath.Join(baseDir, "cache", "update.json")
}

// Cache is the on-disk shape of the last update check.
type Cache struct {
	LastCheckedAt time.Time `json:"last_checked_at"`
	LatestTag     string    `json:"latest_tag"`
	HasUpdate     bool      `json:"has_update"`
}

// LoadHint reads the update cache and returns a short statusline hint
// ("↑v1.2.3") when the cache is within its 24h TTL and records an update.
// Returns "" on any miss (absent file, stale cache, up to date).
func LoadHint(baseDir string) string {
	data, err := os.ReadFile(CachePath(baseDir))
	if err != nil {
		return ""
	}

	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return ""
	}

	if time.Since(c.LastCheckedAt) > cacheTTL {
		return ""
	}
	if !c.HasUpdate || c.LatestTag == "" {
		return ""
	}

	return "↑" + c.LatestTag
}
