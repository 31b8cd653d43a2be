package store

import "github.com/weykon/agent-hand/internal/group"

// RenameGroupPrefix renames old to new in tree and rewrites group_path on
// every affected instance, per §4.2/§8's rename_prefix invariant.
func RenameGroupPrefix(instances []*Instance, tree *group.Tree, old, newPath string) {
	rewrites := tree.RenamePrefix(old, newPath)
	if len(rewrites) == 0 {
		return
	}
	lookup := make(map[string]string, len(rewrites))
	for _, r := range rewrites {
		lookup[r.Old] = r.New
	}
	for _, in := range instances {
		if newGroupPath, ok := lookup[in.GroupPath]; ok {
			in.GroupPath = newGroupPath
		}
	}
}

// DeleteGroupKeepSessions removes path and every descendant group from tree,
// and clears group_path on every instance that was in path or path/*, per
// §8's delete_group_keep_sessions invariant.
func DeleteGroupKeepSessions(instances []*Instance, tree *group.Tree, path string) {
	removed := tree.DeletePrefix(path)
	if len(removed) == 0 {
		return
	}
	removedSet := make(map[string]bool, len(removed))
	for _, p := range removed {
		removedSet[p] = true
	}
	for _, in := range instances {
		if removedSet[in.GroupPath] {
			in.GroupPath = ""
		}
	}
}

// DeleteGroupWithSessions removes path and every descendant group, and
// deletes every instance that was in path or path/* from the returned
// slice (the caller is responsible for also killing their multiplexer
// sessions before discarding them).
func DeleteGroupWithSessions(instances []*Instance, tree *group.Tree, path string) (kept []*Instance, deleted []*Instance) {
	removed := tree.DeletePrefix(path)
	removedSet := make(map[string]bool, len(removed))
	for _, p := range removed {
		removedSet[p] = true
	}
	for _, in := range instances {
		if removedSet[in.GroupPath] {
			deleted = append(deleted, in)
		} else {
			kept = append(kept, in)
		}
	}
	return kept, deleted
}
