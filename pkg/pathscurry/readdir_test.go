package pathscurry_test

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcesarmobile/path-scurry/pkg/pathscurry"
	"github.com/jcesarmobile/path-scurry/pkg/platform"
)

// Scenario 2: provisional promotion.
func TestReaddirPromotesProvisionalNode(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)

	x := g.ResolveNode("/a/x")
	require.Equal(t, "/a/x", x.FullPath())

	a := g.ResolveNode("/a")
	fp.setDir("/a", dirEntry("x", false), dirEntry("y", false))
	children := g.ReaddirSync(a)

	require.Len(t, children, 2)
	var gotX, gotY *pathscurry.Path
	for _, c := range children {
		switch c.Name() {
		case "x":
			gotX = c
		case "y":
			gotY = c
		}
	}
	require.NotNil(t, gotX)
	require.NotNil(t, gotY)
	// Identity of the provisional node must be preserved.
	require.Same(t, x, gotX)
}

// Scenario 3: ENOENT propagation short-circuits descendant readdir.
func TestENOENTPropagatesToDescendants(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)

	a := g.ResolveNode("/a")
	fp.lstatErrs["/a"] = syscall.ENOENT
	require.Nil(t, g.LstatSync(a))

	nested := g.ResolveNode("/a/nested/path")
	entries := g.ReaddirSync(nested)
	require.Empty(t, entries)
	require.Equal(t, 0, fp.hits("/a/nested/path"))
}

// Scenario 5: case correction under a case-insensitive profile.
func TestCaseCorrectionPreservesIsNamed(t *testing.T) {
	fp := newFakeProvider()
	p := platform.New(platform.Darwin)
	g, err := pathscurry.New(pathscurry.Options{Cwd: "/", Platform: &p, FS: fp})
	require.NoError(t, err)

	node := g.ResolveNode("/A/B/foo")
	require.Equal(t, "B", node.Parent().Name())

	root := g.ResolveNode("/")
	fp.setDir("/", dirEntry("a", true))
	g.ReaddirSync(root)

	aNode := node.Parent().Parent()
	require.Equal(t, "a", aNode.Name())
	require.True(t, aNode.IsNamed("A"))
}

// readdir ENOTDIR/EPERM marks self ENOTDIR and propagates ENOENT to
// already-cached children.
func TestReaddirENOTDIRPropagatesToExistingChildren(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)

	a := g.ResolveNode("/a")
	child := g.ResolveNode("/a/child")

	fp.dirErrs["/a"] = syscall.ENOTDIR
	entries := g.ReaddirSync(a)
	require.Empty(t, entries)

	// child was already cached as a provisional node; it must now be
	// unreachable via a fresh readdir (ENOENT).
	require.Empty(t, g.ReaddirSync(child))
}
