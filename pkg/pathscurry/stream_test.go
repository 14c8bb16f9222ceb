package pathscurry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcesarmobile/path-scurry/pkg/pathscurry"
)

func TestIterateChannelRangesToCompletion(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)
	fp.setDir("/a", dirEntry("one", false), dirEntry("two", false))

	a := g.ResolveNode("/a")
	ch := g.Iterate(context.Background(), a, pathscurry.WalkOptions{})

	var got []string
	for p := range ch {
		got = append(got, p.FullPath())
	}
	require.ElementsMatch(t, []string{"/a", "/a/one", "/a/two"}, got)
}

func TestIterateChannelStopsOnContextCancel(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)
	fp.setDir("/a", dirEntry("one", false), dirEntry("two", false))

	a := g.ResolveNode("/a")
	ctx, cancel := context.WithCancel(context.Background())
	ch := g.Iterate(ctx, a, pathscurry.WalkOptions{})

	first, ok := <-ch
	require.True(t, ok)
	require.Equal(t, "/a", first.FullPath())

	cancel()
	for range ch {
		// drain until the producer observes cancellation and closes.
	}
}

func TestStreamDeliversEveryEntry(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)
	fp.setDir("/a", dirEntry("one", false), dirEntry("two", false))

	a := g.ResolveNode("/a")
	ch := g.Stream(context.Background(), a, pathscurry.WalkOptions{})

	var got []string
	for item := range ch {
		require.NoError(t, item.Err)
		got = append(got, item.Path.FullPath())
	}
	require.ElementsMatch(t, []string{"/a", "/a/one", "/a/two"}, got)
}

func TestStreamSyncNextAndClose(t *testing.T) {
	fp := newFakeProvider()
	g := newTestGraph(t, fp)
	fp.setDir("/a", dirEntry("one", false), dirEntry("two", false))

	a := g.ResolveNode("/a")
	s := g.StreamSync(a, pathscurry.WalkOptions{})

	item, ok := s.Next()
	require.True(t, ok)
	require.Equal(t, "/a", item.Path.FullPath())

	s.Close()
	_, ok = s.Next()
	require.False(t, ok)
}
