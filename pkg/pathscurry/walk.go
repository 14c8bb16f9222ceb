package pathscurry

import "context"

// WalkOptions configures a traversal.
type WalkOptions struct {
	// WithFileTypes documents the default emission shape (nodes, not
	// strings). The Go surface always hands back *Path; this field is
	// not consulted by the walk engine.
	WithFileTypes bool

	// Follow descends into symlinked directories via realpath.
	Follow bool

	// Filter gates emission only, not descent. Nil accepts everything.
	Filter func(*Path) bool

	// WalkFilter gates descent only, not emission. Nil accepts
	// everything shouldWalk would otherwise allow.
	WalkFilter func(*Path) bool
}

// snapshotState reads n.state under the graph lock. Used by the walk
// engine's descent decisions, which otherwise run outside any single
// readdir/lstat/realpath call's own locking.
func (g *Graph) snapshotState(n *node) typeState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return n.state
}

// dirIdentity is the visited-set key for n: its realpath-resolved
// target when follow is enabled, n itself otherwise.
func dirIdentity(g *Graph, n *node, follow bool) *node {
	if !follow {
		return n
	}
	if real := g.RealpathSync(n); real != nil {
		return real
	}
	return n
}

// shouldWalk decides whether a discovered child is eligible for
// descent: a confirmed directory, not already visited, and accepted by
// walkFilter. dirs is keyed the same way it is populated in walkCore —
// by dirIdentity(candidate, follow), not by candidate itself — so a
// plain directory reached a second time through a symlinked ancestor is
// still recognized as already visited.
func (g *Graph) shouldWalk(candidate *node, dirs map[*node]bool, walkFilter func(*Path) bool, follow bool) bool {
	if candidate == nil {
		return false
	}
	state := g.snapshotState(candidate)
	if !state.isDir() || state.is(enochild) {
		return false
	}
	if dirs[dirIdentity(g, candidate, follow)] {
		return false
	}
	if walkFilter != nil && !walkFilter(candidate) {
		return false
	}
	return true
}

// walkCore implements the shared breadth-first traversal every surface
// shape (array, iterator, stream) builds on. emit is called for every
// entry the filter accepts, in visitation order; returning false from
// emit stops the traversal early (used to implement early-exit
// iterators without leaking the FIFO queue's remaining work).
func (g *Graph) walkCore(entry *Path, opts WalkOptions, emit func(*Path) bool) {
	if opts.Filter == nil || opts.Filter(entry) {
		if !emit(entry) {
			return
		}
	}

	dirs := map[*node]bool{}
	budget := newSymlinkBudget()

	// The starting entry is always attempted regardless of shouldWalk's
	// IFMT==DIR requirement — its type may still be UNKNOWN since no
	// readdir/lstat has observed it yet, unlike a candidate discovered
	// mid-walk (step 3c applies shouldWalk only to those). ReaddirSync's
	// own precondition harmlessly no-ops if entry turns out not to be a
	// directory.
	dirs[dirIdentity(g, entry, opts.Follow)] = true
	queue := []*node{entry}

	for i := 0; i < len(queue); i++ {
		dir := queue[i]
		for _, child := range g.ReaddirSync(dir) {
			if opts.Filter == nil || opts.Filter(child) {
				if !emit(child) {
					return
				}
			}

			candidate := child
			if g.snapshotState(child).isLnk() && opts.Follow {
				if !budget.take() {
					continue
				}
				target := g.RealpathSync(child)
				if target == nil {
					continue
				}
				if g.snapshotState(target).ifmt() == ifmtUnknown {
					g.LstatSync(target)
				}
				candidate = target
			}

			if !g.shouldWalk(candidate, dirs, opts.WalkFilter, opts.Follow) {
				continue
			}
			dirs[dirIdentity(g, candidate, opts.Follow)] = true
			queue = append(queue, candidate)
		}
	}
}

// WalkSync collects an entire traversal into a slice.
func (g *Graph) WalkSync(entry *Path, opts WalkOptions) []*Path {
	var out []*Path
	g.walkCore(entry, opts, func(p *Path) bool {
		out = append(out, p)
		return true
	})
	return out
}

// WalkResult is delivered by Graph.Walk.
type WalkResult struct {
	Entries []*Path
}

// Walk is the asynchronous form of WalkSync: the traversal itself still
// runs to completion (the no-cancellation rule applies here the same way
// it applies to readdir), but runs on its own goroutine so the caller
// isn't blocked while it does.
func (g *Graph) Walk(ctx context.Context, entry *Path, opts WalkOptions) <-chan WalkResult {
	out := make(chan WalkResult, 1)
	go func() {
		defer close(out)
		out <- WalkResult{Entries: g.WalkSync(entry, opts)}
	}()
	return out
}
