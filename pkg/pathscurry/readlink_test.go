package pathscurry_test

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadlinkSyncResolvesTarget(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)

	link := g.ResolveNode("/a/link")
	fp.links["/a/link"] = "/a/target"

	got := g.ReadlinkSync(link)
	require.NotNil(t, got)
	require.Equal(t, "/a/target", got.FullPath())

	// Cached: a second call must not reissue the FS call even though
	// fakeProvider doesn't track readlink hit counts — verify by
	// deleting the registered link and confirming the cached result
	// still comes back.
	delete(fp.links, "/a/link")
	got2 := g.ReadlinkSync(link)
	require.Same(t, got, got2)
}

func TestReadlinkSyncRefusesRoot(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)

	require.Nil(t, g.ReadlinkSync(g.ResolveNode("/")))
}

func TestReadlinkSyncENOENTMarksSelf(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)

	link := g.ResolveNode("/a/link")
	fp.linkErrs["/a/link"] = syscall.ENOENT
	require.Nil(t, g.ReadlinkSync(link))
	require.Empty(t, g.ReaddirSync(link))
}
