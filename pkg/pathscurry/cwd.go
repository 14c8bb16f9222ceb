package pathscurry

import "strings"

// setAsCwdLocked rewrites the cached relative-path chain after cwd
// changes. Callers must hold g.mu. oldCwd is the node g.cwd pointed to
// before the caller updated it to newCwd.
func setAsCwdLocked(newCwd, oldCwd *node) {
	if newCwd == oldCwd {
		return
	}

	rewritten := map[*node]bool{newCwd: true}
	newCwd.relative = ""
	newCwd.relativePosix = ""
	newCwd.relativeKnown = true

	k := 1
	for anc := newCwd.parent; anc != nil && !anc.IsRoot(); anc = anc.parent {
		up := strings.TrimSuffix(strings.Repeat("../", k), "/")
		anc.relative = up
		anc.relativePosix = up
		anc.relativeKnown = true
		rewritten[anc] = true
		k++
	}

	for n := oldCwd; n != nil; n = n.parent {
		if rewritten[n] {
			continue
		}
		n.relativeKnown = false
	}
}

// Chdir resolves path against the graph's current cwd and, on success,
// makes the result the new cwd, rewriting cached relative strings along
// the way. When cwd changes, both resolver caches are emptied, since
// their keys for relative inputs do not include cwd.
func (g *Graph) Chdir(path string) *Path {
	g.mu.Lock()
	defer g.mu.Unlock()

	oldCwd := g.cwd
	newCwd := g.resolveLocked(nil, path)
	g.cwd = newCwd
	setAsCwdLocked(newCwd, oldCwd)
	if newCwd != oldCwd {
		g.resolveCacheNative = newResolverCache()
		g.resolveCachePosix = newResolverCache()
	}
	return newCwd
}
