package pathscurry_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDepthCountsAncestorsToRoot(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)

	root := g.ResolveNode("/")
	abc := g.ResolveNode("/a/b/c")

	require.Equal(t, 0, g.Depth(root))
	require.Equal(t, 3, g.Depth(abc))
	// Depth memoizes every ancestor along the way; re-querying an
	// ancestor memoized that way must still land on the right number.
	require.Equal(t, 2, g.Depth(g.ResolveNode("/a/b")))
}

func TestBasenameAndDirname(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)

	abc := g.ResolveNode("/a/b/c")
	require.Equal(t, "c", g.Basename(abc))

	dir := g.Dirname(abc)
	require.Equal(t, "/a/b", dir.FullPath())

	root := g.ResolveNode("/")
	require.Equal(t, root, g.Dirname(root))
}

func TestFullPathPosixIsMemoized(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)

	n := g.ResolveNode("/a/b/c")
	require.Equal(t, "/a/b/c", n.FullPathPosix())
	// Calling it again must return the same, already-memoized value.
	require.Equal(t, "/a/b/c", n.FullPathPosix())
}
