package pathscurry

// FullPath returns the platform-native absolute path string for p.
// Always populated: every node's fullpath is known at creation time,
// derived from its (already-known) parent's.
func (p *Path) FullPath() string { return p.fullpath }

// FullPathPosix returns the forward-slash form of FullPath, memoized on
// first use (Windows "//?/" prefixing; a no-op on POSIX/Darwin).
func (p *Path) FullPathPosix() string {
	return p.graph.fullPathPosixLocked(p)
}

func (g *Graph) fullPathPosixLocked(n *node) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n.fullpathPosix == "" {
		n.fullpathPosix = g.profile.PosixForm(n.fullpath)
	}
	return n.fullpathPosix
}

// Basename returns entry's own name. A thin wrapper, kept as a method
// for symmetry with Dirname/Relative/Resolve rather than because it does
// anything Name doesn't already do.
func (g *Graph) Basename(entry *Path) string { return entry.Name() }

// Dirname returns entry's parent, or entry itself if it is a root.
func (g *Graph) Dirname(entry *Path) *Path {
	if entry.IsRoot() {
		return entry
	}
	return entry.Parent()
}

// Depth returns the number of ancestors between entry and its root,
// memoizing the result (and every ancestor's, along the way) on entry.
func (g *Graph) Depth(entry *Path) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return depthLocked(entry)
}

func depthLocked(n *node) int {
	if n.depthKnown {
		return n.depth
	}
	if n.parent == nil {
		n.depth = 0
		n.depthKnown = true
		return 0
	}
	d := depthLocked(n.parent) + 1
	n.depth = d
	n.depthKnown = true
	return d
}

// Relative returns entry's path relative to the graph's current cwd.
// Components below the nearest ancestor on cwd's chain are joined with
// the platform separator; the leading ".." steps stored by
// setAsCwdLocked use "/" on every platform.
func (g *Graph) Relative(entry *Path) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return relativeLocked(entry, false)
}

// RelativePosix is Relative in forward-slash form.
func (g *Graph) RelativePosix(entry *Path) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return relativeLocked(entry, true)
}

// relativeLocked computes entry's path relative to cwd by walking up
// through parents until it reaches a node whose relative slot is
// already known — which setAsCwdLocked guarantees for cwd itself
// (relative "") and every ancestor of cwd below the root; the root's
// slot is known only while the root is cwd. Only
// setAsCwdLocked ever writes relativeKnown; a node that is itself
// neither cwd nor one of its ancestors always recomputes from that
// chain instead of caching its own result, so a chdir that rewrites the
// chain can never leave a stale value sitting on some unrelated
// descendant. Callers must hold g.mu.
func relativeLocked(n *node, posix bool) string {
	if n.relativeKnown {
		if posix {
			return n.relativePosix
		}
		return n.relative
	}

	var names []string
	cur := n
	for cur != nil && !cur.relativeKnown {
		names = append(names, cur.name)
		cur = cur.parent
	}

	if cur == nil {
		// No ancestor of n has a known relative slot: n lives under a
		// different root than cwd (e.g. another Windows drive), cwd
		// hasn't been established yet, or n's only common ancestor with
		// cwd is the root while cwd is not the root. No ".."-based form
		// is built; fall back to the absolute path.
		if posix {
			return n.graph.profile.PosixForm(n.fullpath)
		}
		return n.fullpath
	}

	sep := string(n.graph.profile.Separator())
	native := cur.relative
	posixForm := cur.relativePosix
	for i := len(names) - 1; i >= 0; i-- {
		if native == "" {
			native = names[i]
		} else {
			native = native + sep + names[i]
		}
		if posixForm == "" {
			posixForm = names[i]
		} else {
			posixForm = posixForm + "/" + names[i]
		}
	}

	if posix {
		return posixForm
	}
	return native
}

// ResolveNode is Resolve's node-returning counterpart, for callers that
// already have a *Path (or need one to call Readdir/Lstat/Readlink/
// Realpath/the walk engine on) rather than a display string. It is not
// resolver-cached itself — only the string forms are — but resolution is
// cheap: it's the same child() interning every other
// entry point goes through, just without a later string-rendering step.
func (g *Graph) ResolveNode(paths ...string) *Path {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.resolveAllLocked(paths)
}

// Resolve resolves paths against the graph's cwd, folding left to right
// so that a later absolute segment overrides everything before it, and
// returns the resulting fullpath string, consulting the resolver cache
// first.
func (g *Graph) Resolve(paths ...string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := g.resolverCacheKey(paths)
	if key != "" {
		if v, ok := g.resolveCacheNative.Get(key); ok {
			return v
		}
	}

	n := g.resolveAllLocked(paths)
	result := n.fullpath
	if key != "" {
		g.resolveCacheNative.Set(key, result)
	}
	return result
}

// ResolvePosix is Resolve in forward-slash form.
func (g *Graph) ResolvePosix(paths ...string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := g.resolverCacheKey(paths)
	if key != "" {
		if v, ok := g.resolveCachePosix.Get(key); ok {
			return v
		}
	}

	n := g.resolveAllLocked(paths)
	result := g.profile.PosixForm(n.fullpath)
	if key != "" {
		g.resolveCachePosix.Set(key, result)
	}
	return result
}

// resolveAllLocked folds resolveLocked across paths left to right: each
// subsequent path resolves relative to the node the previous one landed
// on, and a path that is itself absolute overrides everything before it
// (resolveLocked re-derives the root from scratch whenever SplitRoot
// matches). Callers must hold g.mu.
func (g *Graph) resolveAllLocked(paths []string) *node {
	var cur *node
	for _, p := range paths {
		cur = g.resolveLocked(cur, p)
	}
	if cur == nil {
		cur = g.cwd
	}
	return cur
}
