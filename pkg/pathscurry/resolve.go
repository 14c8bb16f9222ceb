package pathscurry

// childLocked implements child() resolution for a single path
// component, handling "", ".", and ".." before falling through to
// lookup-or-synthesize. Callers must hold g.mu.
func childLocked(n *node, part string) *node {
	switch part {
	case "", ".":
		return n
	case "..":
		if n.parent != nil {
			return n.parent
		}
		return n
	}

	key := matchKey(part, n.graph.nocase)
	c := n.graph.childrenOf(n)
	if existing := c.findByMatchKey(key); existing != nil {
		return existing
	}

	child := newChildNode(n, part)
	c.appendProvisional(child)
	n.graph.childrenCache.UpdateSize(n)
	return child
}

// resolveLocked resolves path against start, splitting off a root if
// path has one of its own and walking each remaining component through
// childLocked. start is the node relative paths are resolved against;
// it may be nil, meaning the graph's cwd. Callers must hold g.mu.
func (g *Graph) resolveLocked(start *node, path string) *node {
	var cur *node
	rest := path

	if root, r, ok := g.profile.SplitRoot(path); ok {
		cur = g.rootFor(root)
		rest = r
	} else {
		if start == nil {
			start = g.cwd
		}
		cur = start
	}

	for _, part := range g.profile.SplitComponents(rest) {
		cur = childLocked(cur, part)
	}
	return cur
}

// resolveFromLocked resolves path from n when path has no root of its
// own. Callers must hold n.graph.mu.
func resolveFromLocked(n *node, path string) *node {
	return n.graph.resolveLocked(n, path)
}
