package pathscurry

import "github.com/jcesarmobile/path-scurry/pkg/eviction"

// DefaultChildrenCacheSize is the default capacity, in children.size()
// units, of a Graph's children cache: 16 Ki entries.
const DefaultChildrenCacheSize = 16384

func newChildrenCache(capacity int64) *eviction.Cache[*node, *children] {
	return eviction.New[*node, *children](capacity, (*children).size, onChildrenEvicted)
}

// onChildrenEvicted fires when the LRU drops a parent's children list to
// make room. Eviction silently clears the parent's READDIR_CALLED bit;
// the next call to childrenOf() synthesizes a fresh empty list, so the
// next readdir() actually reissues IO instead of trusting a list that
// no longer exists.
func onChildrenEvicted(parent *node, _ *children) {
	parent.state = parent.state.clear(readdirCalled)
}

// childrenOf returns the (possibly freshly synthesized) children list
// for n, touching it in the LRU. Callers must hold Graph.mu.
func (g *Graph) childrenOf(n *node) *children {
	if c, ok := g.childrenCache.Get(n); ok {
		return c
	}
	c := newChildren()
	g.childrenCache.Set(n, c)
	return c
}

// peekChildrenOf looks up n's children list without affecting LRU order
// and without creating one if absent. Used by read-only queries that
// should not perturb eviction order just to check READDIR_CALLED.
func (g *Graph) peekChildrenOf(n *node) (*children, bool) {
	return g.childrenCache.Peek(n)
}
