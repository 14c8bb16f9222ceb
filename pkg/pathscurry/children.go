package pathscurry

// children is the ordered sequence of a node's children plus a
// provisional split point:
//
//	nodes[0:provisional)   -- real: confirmed to exist by the last readdir
//	nodes[provisional:]    -- provisional: synthesized by child()/resolve()
//
// A children value is owned by the cache (see cache.go), not by the
// parent node directly, so that evicting it releases every node it
// references.
type children struct {
	nodes       []*node
	provisional int
}

// newChildren returns an empty children list.
func newChildren() *children {
	return &children{}
}

// real returns the confirmed slice, nodes[0:provisional).
func (c *children) real() []*node {
	return c.nodes[:c.provisional]
}

// findByMatchKey scans the entire list (both real and provisional
// regions) for a node whose matchName equals key, as child() resolution
// requires.
func (c *children) findByMatchKey(key string) *node {
	for _, n := range c.nodes {
		if n.matchName == key {
			return n
		}
	}
	return nil
}

// findProvisionalByMatchKey scans only nodes[provisional:], the region
// readdir's maybe-promote step searches.
func (c *children) findProvisionalByMatchKey(key string) (int, *node) {
	for i := c.provisional; i < len(c.nodes); i++ {
		if c.nodes[i].matchName == key {
			return i, c.nodes[i]
		}
	}
	return -1, nil
}

// appendProvisional adds n to the end of the list without advancing
// provisional, as child() does when it synthesizes a new node.
func (c *children) appendProvisional(n *node) {
	c.nodes = append(c.nodes, n)
}

// promoteAt moves the node at index i into the real region. If i is
// already exactly at the provisional boundary, promotion is simply
// advancing the boundary; otherwise the node is removed from its
// current position and unshifted to index 0 before the boundary
// advances.
func (c *children) promoteAt(i int) {
	if i == c.provisional {
		c.provisional++
		return
	}
	n := c.nodes[i]
	copy(c.nodes[1:i+1], c.nodes[0:i])
	c.nodes[0] = n
	c.provisional++
}

// addReal inserts a freshly observed node at the front of the list and
// advances the boundary.
func (c *children) addReal(n *node) {
	c.nodes = append(c.nodes, nil)
	copy(c.nodes[1:], c.nodes[:len(c.nodes)-1])
	c.nodes[0] = n
	c.provisional++
}

// size is the LRU size-unit contribution of this list: length+1 for the
// parent plus its children. Mutating nodes in place (addReal,
// appendProvisional) changes this value without going through Set, so
// every call site that grows the list must follow up with
// Graph.childrenCache.UpdateSize to keep the cache's accounting honest.
func (c *children) size() int64 {
	return int64(len(c.nodes)) + 1
}
