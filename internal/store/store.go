// Package store implements the atomic, per-profile catalog persistence
// (C1): load/save of sessions and groups, rolling backups, and profile
// lifecycle. It intentionally persists to a single JSON document per
// profile rather than a database — see SPEC_FULL.md's Non-goals.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/weykon/agent-hand/internal/apperr"
	"github.com/weykon/agent-hand/internal/group"
	"github.com/weykon/agent-hand/internal/logging"
)

const maxBackupGenerations = 3

const (
	newDirName = ".agent-hand"
	oldDirName = ".agent-deck-rs"
)

var storeLog = logging.ForComponent(logging.CompStore)

// Store is one profile's handle onto the on-disk catalog.
type Store struct {
	path    string
	profile string
	mu      sync.Mutex
}

// BaseDir resolves the tool's base directory. Prefers ~/.agent-hand; if
// absent and the legacy ~/.agent-deck-rs exists, reads from the legacy
// directory instead. New runs migrateLegacyIfNeeded on every Store
// construction, which copies legacy catalogs into the new path.
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", apperr.New(apperr.IO, "store.BaseDir", err)
	}
	newDir := filepath.Join(home, newDirName)
	oldDir := filepath.Join(home, oldDirName)

	if _, err := os.Stat(newDir); os.IsNotExist(err) {
		if _, err := os.Stat(oldDir); err == nil {
			return oldDir, nil
		}
	}
	return newDir, nil
}

// New constructs a Store for profile, creating its directory if needed and
// performing legacy-directory migration on first use.
func New(profile string) (*Store, error) {
	if profile == "" {
		profile = "default"
	}
	if err := migrateLegacyIfNeeded(); err != nil {
		storeLog.Warn("legacy_migration_failed", "error", err.Error())
	}

	base, err := BaseDir()
	if err != nil {
		return nil, err
	}
	profileDir := filepath.Join(base, "profiles", profile)
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return nil, apperr.New(apperr.IO, "store.New", err)
	}

	return &Store{
		path:    filepath.Join(profileDir, "sessions.json"),
		profile: profile,
	}, nil
}

// Profile returns the profile name this Store was opened for.
func (s *Store) Profile() string { return s.profile }

// Path returns the catalog file path.
func (s *Store) Path() string { return s.path }

// Load reads the catalog. A missing file is an empty catalog; malformed
// JSON is a hard error surfaced to the caller.
func (s *Store) Load() ([]*Instance, *group.Tree, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, group.New(), nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, apperr.New(apperr.IO, "store.Load", err)
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, nil, apperr.New(apperr.Parse, "store.Load", err)
	}

	tree := group.FromGroups(cat.Groups)
	return cat.Instances, tree, nil
}

// Save atomically persists instances and tree: roll backups, serialize,
// write to a .tmp file, fsync, then rename over the catalog file.
func (s *Store) Save(instances []*Instance, tree *group.Tree) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rollBackups(); err != nil {
		storeLog.Warn("backup_roll_failed", "error", err.Error())
	}

	cat := Catalog{
		Instances: instances,
		Groups:    tree.All(),
		UpdatedAt: time.Now().UTC(),
	}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return apperr.New(apperr.Parse, "store.Save", err)
	}

	tmpPath := s.path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return apperr.New(apperr.IO, "store.Save", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return apperr.New(apperr.IO, "store.Save", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return apperr.New(apperr.IO, "store.Save", err)
	}
	if err := f.Close(); err != nil {
		return apperr.New(apperr.IO, "store.Save", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return apperr.New(apperr.IO, "store.Save", err)
	}
	return nil
}

// rollBackups shifts .bak -> .bak.2 -> .bak.3 (discarding any prior
// .bak.3), then copies the current file to .bak. Invariant 4 in §3.
func (s *Store) rollBackups() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}

	for i := maxBackupGenerations - 1; i >= 1; i-- {
		from := s.backupPath(i)
		to := s.backupPath(i + 1)
		if _, err := os.Stat(from); err != nil {
			continue
		}
		_ = os.Remove(to)
		if err := os.Rename(from, to); err != nil {
			return err
		}
	}

	bak := s.backupPath(1)
	_ = os.Remove(bak)
	return copyFile(s.path, bak)
}

// backupPath returns the n-th rolling backup path: n==1 is ".bak", n>1 is
// ".bak.<n>".
func (s *Store) backupPath(n int) string {
	if n <= 1 {
		return s.path + ".bak"
	}
	return fmt.Sprintf("%s.bak.%d", s.path, n)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

// ListProfiles enumerates profile directory names under base/profiles.
func ListProfiles() ([]string, error) {
	base, err := BaseDir()
	if err != nil {
		return nil, err
	}
	profilesDir := filepath.Join(base, "profiles")
	entries, err := os.ReadDir(profilesDir)
	if os.IsNotExist(err) {
		return []string{"default"}, nil
	}
	if err != nil {
		return nil, apperr.New(apperr.IO, "store.ListProfiles", err)
	}

	var profiles []string
	for _, e := range entries {
		if e.IsDir() {
			profiles = append(profiles, e.Name())
		}
	}
	if len(profiles) == 0 {
		profiles = []string{"default"}
	}
	sort.Strings(profiles)
	return profiles, nil
}

// CreateProfile creates a new, empty profile. Fails if it already exists.
func CreateProfile(name string) error {
	base, err := BaseDir()
	if err != nil {
		return err
	}
	profileDir := filepath.Join(base, "profiles", name)
	if _, err := os.Stat(profileDir); err == nil {
		return apperr.New(apperr.Profile, "store.CreateProfile", fmt.Errorf("profile %q already exists", name))
	}
	if err := os.MkdirAll(profileDir, 0o755); err != nil {
		return apperr.New(apperr.IO, "store.CreateProfile", err)
	}

	cat := Catalog{Instances: []*Instance{}, Groups: []*group.Data{}, UpdatedAt: time.Now().UTC()}
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return apperr.New(apperr.Parse, "store.CreateProfile", err)
	}
	return os.WriteFile(filepath.Join(profileDir, "sessions.json"), data, 0o644)
}

// DeleteProfile removes a profile's directory. "default" is undeletable.
func DeleteProfile(name string) error {
	if name == "default" || name == "" {
		return apperr.New(apperr.Profile, "store.DeleteProfile", fmt.Errorf("cannot delete default profile"))
	}
	base, err := BaseDir()
	if err != nil {
		return err
	}
	profileDir := filepath.Join(base, "profiles", name)
	if _, err := os.Stat(profileDir); os.IsNotExist(err) {
		return apperr.New(apperr.Profile, "store.DeleteProfile", fmt.Errorf("profile %q not found", name))
	}
	if err := os.RemoveAll(profileDir); err != nil {
		return apperr.New(apperr.IO, "store.DeleteProfile", err)
	}
	return nil
}
