// Package group implements the hierarchical group namespace (GroupTree, C2):
// "/"-separated paths with implicit ancestor creation, prefix rename, and
// expand-state tracking. Group is pure metadata — session membership lives
// on the Instance, not here.
package group

import (
	"sort"
	"strings"
)

// Data is the persisted shape of one group.
type Data struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Expanded bool   `json:"expanded"`
	Order    int    `json:"order"`
}

func newData(path string) *Data {
	name := path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		name = path[idx+1:]
	}
	return &Data{Name: name, Path: path, Expanded: true}
}

// Tree holds the in-memory group namespace for one profile.
type Tree struct {
	groups map[string]*Data
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{groups: make(map[string]*Data)}
}

// FromGroups rebuilds a tree from persisted data.
func FromGroups(groups []*Data) *Tree {
	t := New()
	for _, g := range groups {
		cp := *g
		t.groups[g.Path] = &cp
	}
	return t
}

// Get returns the group at path, or nil.
func (t *Tree) Get(path string) *Data {
	return t.groups[path]
}

// Create is idempotent: it creates path and every missing ancestor.
func (t *Tree) Create(path string) *Data {
	if path == "" {
		return nil
	}
	if existing, ok := t.groups[path]; ok {
		return existing
	}
	g := newData(path)
	t.groups[path] = g
	if parent := parentPath(path); parent != "" {
		t.Create(parent)
	}
	return g
}

// Delete removes exactly the group at path (not its descendants).
func (t *Tree) Delete(path string) bool {
	if _, ok := t.groups[path]; !ok {
		return false
	}
	delete(t.groups, path)
	return true
}

// DeletePrefix removes the group at path and every descendant.
func (t *Tree) DeletePrefix(path string) []string {
	removed := []string{}
	prefix := path + "/"
	for p := range t.groups {
		if p == path || strings.HasPrefix(p, prefix) {
			removed = append(removed, p)
		}
	}
	for _, p := range removed {
		delete(t.groups, p)
	}
	return removed
}

// RenamePrefix rewrites old (and every descendant of old) to new, atomically
// over the tree: it computes every affected path first, then deletes the
// old entries and inserts the new ones, then ensures ancestors of new
// exist. Idempotent: applying it twice with the same args is a no-op on
// the second call, since no group named old remains.
func (t *Tree) RenamePrefix(old, newPath string) []PathRewrite {
	if old == "" || old == newPath {
		return nil
	}
	prefix := old + "/"
	var affected []string
	for p := range t.groups {
		if p == old || strings.HasPrefix(p, prefix) {
			affected = append(affected, p)
		}
	}
	if len(affected) == 0 {
		return nil
	}

	rewrites := make([]PathRewrite, 0, len(affected))
	moved := make(map[string]*Data, len(affected))
	for _, p := range affected {
		g := t.groups[p]
		target := newPath + strings.TrimPrefix(p, old)
		moved[target] = &Data{
			Name:     lastSegment(target),
			Path:     target,
			Expanded: g.Expanded,
			Order:    g.Order,
		}
		rewrites = append(rewrites, PathRewrite{Old: p, New: target})
	}
	for _, p := range affected {
		delete(t.groups, p)
	}
	for path, g := range moved {
		t.groups[path] = g
	}
	if parent := parentPath(newPath); parent != "" {
		t.Create(parent)
	}
	return rewrites
}

// PathRewrite records one path's old→new move during a RenamePrefix.
type PathRewrite struct {
	Old string
	New string
}

// ToggleExpanded flips the expanded flag, if the group exists.
func (t *Tree) ToggleExpanded(path string) {
	if g, ok := t.groups[path]; ok {
		g.Expanded = !g.Expanded
	}
}

// SetExpanded sets the expanded flag, if the group exists.
func (t *Tree) SetExpanded(path string, expanded bool) {
	if g, ok := t.groups[path]; ok {
		g.Expanded = expanded
	}
}

// IsExpanded reports the group's expand state; default true for unknown
// (never-persisted) groups.
func (t *Tree) IsExpanded(path string) bool {
	if g, ok := t.groups[path]; ok {
		return g.Expanded
	}
	return true
}

// Children returns the direct children of path (one extra "/" depth),
// unsorted; callers sort for display.
func (t *Tree) Children(path string) []string {
	depth := strings.Count(path, "/")
	if path != "" {
		depth++
	}
	prefix := path + "/"
	if path == "" {
		prefix = ""
	}
	var out []string
	for p := range t.groups {
		if path != "" && !strings.HasPrefix(p, prefix) {
			continue
		}
		if path == "" && p == "" {
			continue
		}
		if strings.Count(p, "/") == depth {
			out = append(out, p)
		}
	}
	return out
}

// All returns every group sorted by (order asc, path asc).
func (t *Tree) All() []*Data {
	out := make([]*Data, 0, len(t.groups))
	for _, g := range t.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Path < out[j].Path
	})
	return out
}

func parentPath(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	return path[:idx]
}

func lastSegment(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
