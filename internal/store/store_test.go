package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weykon/agent-hand/internal/group"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return &Store{path: filepath.Join(dir, "sessions.json")}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	tree := group.New()
	tree.Create("work/fe")
	instances := []*Instance{
		{ID: "abc123def456", Title: "fix bug", ProjectPath: "/home/x/repo", GroupPath: "work/fe", Status: StatusIdle},
	}

	require.NoError(t, s.Save(instances, tree))

	loaded, loadedTree, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "abc123def456", loaded[0].ID)
	assert.Equal(t, "fix bug", loaded[0].Title)
	assert.NotNil(t, loadedTree.Get("work/fe"))
}

func TestLoadMissingFileIsEmptyCatalog(t *testing.T) {
	s := newTestStore(t)
	instances, tree, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, instances)
	assert.NotNil(t, tree)
	assert.Empty(t, tree.All())
}

func TestLoadMalformedJSONIsHardError(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.path, []byte("{not valid json"), 0o644))

	_, _, err := s.Load()
	assert.Error(t, err)
}

func TestSaveRollsBackups(t *testing.T) {
	s := newTestStore(t)
	tree := group.New()

	require.NoError(t, s.Save([]*Instance{{ID: "v1"}}, tree))
	require.NoError(t, s.Save([]*Instance{{ID: "v2"}}, tree))
	require.NoError(t, s.Save([]*Instance{{ID: "v3"}}, tree))
	require.NoError(t, s.Save([]*Instance{{ID: "v4"}}, tree))

	bak := readCatalog(t, s.backupPath(1))
	assert.Equal(t, "v3", bak.Instances[0].ID)

	bak2 := readCatalog(t, s.backupPath(2))
	assert.Equal(t, "v2", bak2.Instances[0].ID)

	bak3 := readCatalog(t, s.backupPath(3))
	assert.Equal(t, "v1", bak3.Instances[0].ID)
}

func TestSaveSurvivesLeftoverTmpFile(t *testing.T) {
	s := newTestStore(t)
	tree := group.New()
	require.NoError(t, s.Save([]*Instance{{ID: "good"}}, tree))

	// Simulate a crash mid-write on a previous attempt: a truncated .tmp
	// file left on disk must not affect the next successful save.
	require.NoError(t, os.WriteFile(s.path+".tmp", []byte("trunc"), 0o644))
	require.NoError(t, s.Save([]*Instance{{ID: "good2"}}, tree))

	loaded, _, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "good2", loaded[0].ID)
}

func readCatalog(t *testing.T, path string) Catalog {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var cat Catalog
	require.NoError(t, json.Unmarshal(data, &cat))
	return cat
}

func TestCreateAndDeleteProfile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, CreateProfile("work"))
	profiles, err := ListProfiles()
	require.NoError(t, err)
	assert.Contains(t, profiles, "work")

	require.NoError(t, DeleteProfile("work"))
	profiles, err = ListProfiles()
	require.NoError(t, err)
	assert.NotContains(t, profiles, "work")
}

func TestCreateProfileFailsIfExists(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, CreateProfile("work"))
	err := CreateProfile("work")
	assert.Error(t, err)
}

func TestDeleteDefaultProfileRefused(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	err := DeleteProfile("default")
	assert.Error(t, err)
}
