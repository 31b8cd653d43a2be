package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCache(t *testing.T, baseDir string, c Cache) {
	t.Helper()
	path := CachePath(baseDir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	data, err := json.Marshal(c)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestLoadHintMissingFile(t *testing.T) {
	assert.Equal(t, "", LoadHint(t.TempDir()))
}

func TestLoadHintFreshWithUpdate(t *testing.T) {
	dir := t.TempDir()
	writeCache(t, dir, Cache{LastCheckedAt: time.Now(), LatestTag: "v1.2.3", HasUpdate: true})
	assert.Equal(t, "↑v1.2.3", LoadHint(dir))
}

func TestLoadHintStaleCache(t *testing.T) {
	dir := t.TempDir()
	writeCache(t, dir, Cache{LastCheckedAt: time.Now().Add(-25 * time.Hour), LatestTag: "v1.2.3", HasUpdate: true})
	assert.Equal(t, "", LoadHint(dir))
}

func TestLoadHintNoUpdateAvailable(t *testing.T) {
	dir := t.TempDir()
	writeCache(t, dir, Cache{LastCheckedAt: time.Now(), HasUpdate: false})
	assert.Equal(t, "", LoadHint(dir))
}
