package pathscurry_test

import (
	"io/fs"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jcesarmobile/path-scurry/pkg/fsprovider"
)

func TestLstatSyncPopulatesStatAndIFMT(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)

	mtime := time.Unix(1_700_000_000, 0)
	fp.lstatInfo["/a"] = fsprovider.StatInfo{Mode: fs.ModeDir, Size: 4096, Mtime: mtime}

	a := g.ResolveNode("/a")
	got := g.LstatSync(a)
	require.Same(t, a, got)
	require.Equal(t, int64(4096), a.Stat().Size)
	require.True(t, a.IsNamed("a"))

	// Shortcut: a second LstatSync call must not reissue the FS call,
	// so an error registered now is never seen.
	fp.lstatErrs["/a"] = syscall.ENOENT
	require.Same(t, a, g.LstatSync(a))
}

func TestLstatSyncENOENTMarksSelf(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)

	fp.lstatErrs["/missing"] = syscall.ENOENT
	n := g.ResolveNode("/missing")
	require.Nil(t, g.LstatSync(n))

	// Once ENOENT, lstat short-circuits to "no result" without calling FS:
	// with the error removed, an FS call would now succeed.
	delete(fp.lstatErrs, "/missing")
	require.Nil(t, g.LstatSync(n))
}

func TestLstatSyncENOTDIRPropagatesToParent(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)

	fp.lstatErrs["/a/b"] = syscall.ENOTDIR
	b := g.ResolveNode("/a/b")
	require.Nil(t, g.LstatSync(b))

	// The parent ("/a") should now be unable to have children.
	require.Empty(t, g.ReaddirSync(b.Parent()))
}
