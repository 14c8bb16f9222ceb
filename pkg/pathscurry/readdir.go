package pathscurry

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/jcesarmobile/path-scurry/pkg/fsprovider"
	"github.com/jcesarmobile/path-scurry/pkg/util"
)

// canReaddirLocked is the readdir precondition: IFMT must be UNKNOWN,
// DIR, or LNK, and no ENOCHILD bit may be set.
func canReaddirLocked(n *node) bool {
	return n.state.canHaveChildren()
}

// readdirSyncSnapshot returns a defensive copy of n's real children,
// suitable to hand back to a caller that must not observe later
// mutation of the live list.
func readdirSyncSnapshot(c *children) []*node {
	real := c.real()
	out := make([]*node, len(real))
	copy(out, real)
	return out
}

// readdirSyncLocked runs readdir's sync form end to end, including the
// FS call. Callers must hold g.mu for the duration, which
// is what makes two concurrent ReaddirSync calls against the same node
// behave like single-flight for free: the second caller blocks on the
// mutex until the first finishes ingesting the result, then observes
// READDIR_CALLED already set.
func readdirSyncLocked(n *node) []*node {
	if !canReaddirLocked(n) {
		return nil
	}
	if n.state.is(readdirCalled) {
		return readdirSyncSnapshot(n.graph.childrenOf(n))
	}

	entries, err := n.graph.fs.ReadDir(n.fullpath)
	ingestReaddirLocked(n, entries, err)
	if err != nil {
		return nil
	}
	return readdirSyncSnapshot(n.graph.childrenOf(n))
}

// ingestReaddirLocked implements the promotion/add/finish algorithm a
// readdir result drives, plus the FS-error-to-state-bit failure mapping
// below. Callers must hold g.mu.
func ingestReaddirLocked(n *node, entries []fsprovider.DirEntry, err error) {
	if err != nil {
		ingestReaddirFailureLocked(n, err)
		return
	}

	g := n.graph
	c := g.childrenOf(n)

	for _, entry := range entries {
		key := matchKey(entry.Name, g.nocase)
		ifmt := ifmtFromFileMode(entry.Type)

		if i, existing := c.findProvisionalByMatchKey(key); existing != nil {
			existing.state = existing.state.withIfmt(ifmt)
			if ifmt != ifmtDir && ifmt != ifmtLnk && ifmt != ifmtUnknown {
				existing.state = existing.state.set(enotdir)
			}
			if existing.name != entry.Name {
				existing.name = entry.Name
			}
			c.promoteAt(i)
			continue
		}

		child := newChildNode(n, entry.Name)
		child.state = child.state.withIfmt(ifmt)
		if ifmt != ifmtDir && ifmt != ifmtLnk && ifmt != ifmtUnknown {
			child.state = child.state.set(enotdir)
		}
		c.addReal(child)
	}

	g.childrenCache.UpdateSize(n)
	n.state = n.state.set(readdirCalled)
	markRemainingProvisionalENOENT(c)
}

// markRemainingProvisionalENOENT marks every node left in the
// provisional region (i.e. not observed by this readdir) as ENOENT,
// recursively propagating non-existence to their descendants.
func markRemainingProvisionalENOENT(c *children) {
	for i := c.provisional; i < len(c.nodes); i++ {
		markENOENTRecursive(c.nodes[i])
	}
}

// markENOENTRecursive marks n and, recursively, every child currently
// cached for n, as ENOENT: a child created after its parent carries
// ENOTDIR or ENOENT is born with ENOENT already set, and this extends
// that non-existence down to descendants a readdir already resolved
// before the directory they lived under turned out to be gone.
func markENOENTRecursive(n *node) {
	if n.state.is(enoent) {
		return
	}
	n.state = n.state.markENOENT()
	if c, ok := n.graph.peekChildrenOf(n); ok {
		for _, child := range c.nodes {
			markENOENTRecursive(child)
		}
	}
}

// ingestReaddirFailureLocked maps a failed readdir's error onto the
// corresponding state-bit mutation.
func ingestReaddirFailureLocked(n *node, err error) {
	switch classify(err) {
	case errnoENOENT:
		markENOENTRecursive(n)
	case errnoENOTDIR, errnoEPERM:
		n.state = n.state.markENOTDIR()
		if c, ok := n.graph.peekChildrenOf(n); ok {
			for _, child := range c.nodes {
				markENOENTRecursive(child)
			}
		}
	default:
		// "Any other error: leave state unchanged but reset
		// provisional = 0 so nothing is spuriously treated as real."
		if c, ok := n.graph.peekChildrenOf(n); ok {
			c.provisional = 0
		}
		n.graph.errorLogger.Log(util.StatusWrapf(err, "Readdir on %#v", n.fullpath))
	}
}

// ReaddirResult is delivered on the channel returned by Graph.Readdir.
type ReaddirResult struct {
	Entries []*Path
	Err     error
}

// ReaddirSync lists the children of entry, issuing an FS readdir call
// only if one hasn't already been cached. A failed or disallowed
// readdir yields an empty, non-error result — the core never surfaces
// FS errors from this call, it only absorbs them into state bits.
func (g *Graph) ReaddirSync(entry *Path) []*Path {
	g.mu.Lock()
	defer g.mu.Unlock()
	return readdirSyncLocked(entry)
}

// Readdir is the asynchronous form of ReaddirSync. At most one FS
// readdir call is ever in flight for a given node concurrently:
// concurrent callers for the same node share the same singleflight.Group
// call and observe the same terminal state.
//
// There is no cancellation: ctx is accepted for the sake of an
// idiomatic Go signature, but a caller that abandons the returned
// channel does not stop the underlying FS call or the state mutation it
// commits. A caller that wants to abort must simply drop the channel —
// the in-flight FS call completes and updates state regardless.
func (g *Graph) Readdir(ctx context.Context, entry *Path) <-chan ReaddirResult {
	out := make(chan ReaddirResult, 1)
	go func() {
		defer close(out)
		cached, _, needIO := g.prepareReaddirAsync(entry)
		if !needIO {
			out <- ReaddirResult{Entries: nodesToPaths(cached)}
			return
		}

		result, _, _ := entry.readdirGroup.Do("readdir", func() (interface{}, error) {
			fetched, fetchErr := g.fs.ReadDir(entry.fullpath)

			g.mu.Lock()
			ingestReaddirLocked(entry, fetched, fetchErr)
			var snapshot []*node
			if fetchErr == nil {
				snapshot = readdirSyncSnapshot(g.childrenOf(entry))
			}
			g.mu.Unlock()
			return snapshot, nil
		})
		var nodes []*node
		if result != nil {
			nodes = result.([]*node)
		}
		out <- ReaddirResult{Entries: nodesToPaths(nodes)}
	}()
	return out
}

// prepareReaddirAsync checks the preconditions and cache under the lock,
// short-circuiting the IO path entirely when possible. Also lazily
// allocates entry's per-node singleflight.Group, since most nodes never
// issue an async readdir.
func (g *Graph) prepareReaddirAsync(entry *Path) (cached []*node, err error, needIO bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !canReaddirLocked(entry) {
		return nil, nil, false
	}
	if entry.state.is(readdirCalled) {
		return readdirSyncSnapshot(g.childrenOf(entry)), nil, false
	}
	if entry.readdirGroup == nil {
		entry.readdirGroup = &singleflight.Group{}
	}
	return nil, nil, true
}

func nodesToPaths(nodes []*node) []*Path {
	out := make([]*Path, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}
