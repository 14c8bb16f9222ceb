package pathscurry

import (
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// matchKeyCaches are two process-wide, append-only maps: one per
// case-sensitivity mode, so that the same name normalized two different
// ways (for a case-sensitive graph vs a case-insensitive one) never
// collide, and so repeated normalization of common names
// ("node_modules", "src", ...) across many Graph instances on one
// process only costs once.
//
// They grow monotonically for the lifetime of the process — an
// intentional memory/time trade, since re-normalizing on every call
// would cost far more in the common case of a small, repeated name set.
var (
	matchKeyCacheSensitive   sync.Map // string -> string
	matchKeyCacheInsensitive sync.Map // string -> string
)

// matchKey computes the comparison key for name under the given
// case-sensitivity mode: NFKD normalization, with ASCII+Unicode
// lowercasing applied first when nocase is true.
func matchKey(name string, nocase bool) string {
	cache := &matchKeyCacheSensitive
	if nocase {
		cache = &matchKeyCacheInsensitive
	}
	if v, ok := cache.Load(name); ok {
		return v.(string)
	}

	input := name
	if nocase {
		// strings.ToLower is Unicode-aware per-rune lowercasing, not an
		// ASCII-only shortcut — names must be lowercased before
		// normalization, not after, so that case and diacritic folding
		// don't interact in a locale-dependent order.
		input = strings.ToLower(input)
	}
	key := norm.NFKD.String(input)

	cache.Store(name, key)
	return key
}
