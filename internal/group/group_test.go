package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAncestors(t *testing.T) {
	tr := New()
	tr.Create("work/fe/admin")

	assert.NotNil(t, tr.Get("work"))
	assert.NotNil(t, tr.Get("work/fe"))
	assert.NotNil(t, tr.Get("work/fe/admin"))
	assert.Equal(t, "admin", tr.Get("work/fe/admin").Name)
}

func TestCreateIdempotent(t *testing.T) {
	tr := New()
	first := tr.Create("work")
	second := tr.Create("work")
	assert.Same(t, first, second)
}

func TestChildrenOneLevel(t *testing.T) {
	tr := New()
	tr.Create("work/fe")
	tr.Create("work/fe/admin")
	tr.Create("work/be")

	children := tr.Children("work")
	assert.ElementsMatch(t, []string{"work/fe", "work/be"}, children)
}

func TestDeletePrefixRemovesDescendants(t *testing.T) {
	tr := New()
	tr.Create("work/fe/admin")
	removed := tr.DeletePrefix("work/fe")

	assert.ElementsMatch(t, []string{"work/fe", "work/fe/admin"}, removed)
	assert.Nil(t, tr.Get("work/fe"))
	assert.Nil(t, tr.Get("work/fe/admin"))
	assert.NotNil(t, tr.Get("work"))
}

func TestDeleteSingleGroupOnly(t *testing.T) {
	tr := New()
	tr.Create("work/fe/admin")
	ok := tr.Delete("work/fe")

	require.True(t, ok)
	assert.Nil(t, tr.Get("work/fe"))
	assert.NotNil(t, tr.Get("work/fe/admin"))
}

func TestRenamePrefix(t *testing.T) {
	tr := New()
	tr.Create("work/fe")
	tr.Create("work/fe/admin")
	tr.SetExpanded("work/fe", false)

	rewrites := tr.RenamePrefix("work", "jobs")

	assert.Nil(t, tr.Get("work"))
	assert.Nil(t, tr.Get("work/fe"))
	require.NotNil(t, tr.Get("jobs/fe"))
	require.NotNil(t, tr.Get("jobs/fe/admin"))
	assert.False(t, tr.Get("jobs/fe").Expanded)
	assert.Len(t, rewrites, 3)
}

func TestRenamePrefixIdempotent(t *testing.T) {
	tr := New()
	tr.Create("work/fe")
	tr.RenamePrefix("work", "jobs")
	second := tr.RenamePrefix("work", "jobs")

	assert.Nil(t, second)
	assert.NotNil(t, tr.Get("jobs/fe"))
}

func TestToggleAndDefaultExpanded(t *testing.T) {
	tr := New()
	tr.Create("work")

	assert.True(t, tr.IsExpanded("work"))
	tr.ToggleExpanded("work")
	assert.False(t, tr.IsExpanded("work"))

	// Unknown group defaults to expanded.
	assert.True(t, tr.IsExpanded("unknown"))
}

func TestAllSortedByOrderThenPath(t *testing.T) {
	tr := New()
	tr.Create("b")
	tr.Create("a")
	tr.Get("a").Order = 1
	tr.Get("b").Order = 0

	all := tr.All()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Path)
	assert.Equal(t, "a", all[1].Path)
}
