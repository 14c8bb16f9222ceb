package pathscurry

import "github.com/jcesarmobile/path-scurry/pkg/eviction"

// resolverCacheSize is the capacity of each resolver cache, in entries:
// a native-form and a posix-form LRU of 256 entries each.
const resolverCacheSize = 256

func newResolverCache() *eviction.Cache[string, string] {
	return eviction.New[string, string](resolverCacheSize, func(string) int64 { return 1 }, nil)
}

// resolverCacheKey builds the cache key: iterate the input segments
// right-to-left, prepending each to the key, and stop
// as soon as an absolute segment is prepended ("earliest-absolute-wins").
// Segments to the left of the stopping point cannot affect the result,
// so dropping them lets Resolve("/x", "/a", "b") share the entry of
// Resolve("/a", "b"). A key with no absolute segment in it is relative
// to cwd and does not record cwd; Chdir empties both caches whenever cwd
// changes.
func (g *Graph) resolverCacheKey(segments []string) string {
	key := ""
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if key == "" {
			key = seg
		} else {
			key = seg + "\x00" + key
		}
		if g.profile.IsAbsolute(seg) {
			break
		}
	}
	return key
}
