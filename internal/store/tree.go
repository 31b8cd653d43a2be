package store

import (
	"sort"

	"github.com/weykon/agent-hand/internal/group"
)

// ItemKind tags a TreeItem's variant.
type ItemKind int

const (
	ItemGroup ItemKind = iota
	ItemSession
)

// TreeItem is one row of the derived, non-persisted tree view.
type TreeItem struct {
	Kind      ItemKind
	Depth     int
	GroupPath string // valid when Kind == ItemGroup
	GroupName string // valid when Kind == ItemGroup
	Session   *Instance // valid when Kind == ItemSession
}

// BuildTree produces the ordered tree view per §3: ungrouped sessions first
// (by title), then top-level groups sorted by path; within each expanded
// group, child groups before sessions, both sorted.
func BuildTree(instances []*Instance, tree *group.Tree) []TreeItem {
	byGroup := make(map[string][]*Instance)
	var ungrouped []*Instance
	for _, in := range instances {
		if in.GroupPath == "" {
			ungrouped = append(ungrouped, in)
			continue
		}
		byGroup[in.GroupPath] = append(byGroup[in.GroupPath], in)
	}
	sort.Slice(ungrouped, func(i, j int) bool { return ungrouped[i].Title < ungrouped[j].Title })

	var items []TreeItem
	for _, in := range ungrouped {
		items = append(items, TreeItem{Kind: ItemSession, Depth: 0, Session: in})
	}

	topLevel := tree.Children("")
	sort.Strings(topLevel)
	for _, path := range topLevel {
		items = append(items, walkGroup(tree, byGroup, path, 0)...)
	}
	return items
}

func walkGroup(tree *group.Tree, byGroup map[string][]*Instance, path string, depth int) []TreeItem {
	g := tree.Get(path)
	name := path
	if g != nil {
		name = g.Name
	}
	items := []TreeItem{{Kind: ItemGroup, Depth: depth, GroupPath: path, GroupName: name}}
	if g != nil && !g.Expanded {
		return items
	}

	children := tree.Children(path)
	sort.Strings(children)
	for _, child := range children {
		items = append(items, walkGroup(tree, byGroup, child, depth+1)...)
	}

	sessions := append([]*Instance(nil), byGroup[path]...)
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].Title < sessions[j].Title })
	for _, in := range sessions {
		items = append(items, TreeItem{Kind: ItemSession, Depth: depth + 1, Session: in})
	}
	return items
}

// EnsureGroupsExist creates any group named by an Instance's GroupPath that
// is missing from tree, per invariant 2 in §3.
func EnsureGroupsExist(instances []*Instance, tree *group.Tree) {
	for _, in := range instances {
		if in.GroupPath != "" {
			tree.Create(in.GroupPath)
		}
	}
}
