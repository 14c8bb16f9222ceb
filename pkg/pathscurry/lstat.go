package pathscurry

import (
	"github.com/jcesarmobile/path-scurry/pkg/fsprovider"
	"github.com/jcesarmobile/path-scurry/pkg/util"
)

// lstatSyncLocked runs lstat's sync form. Callers must hold g.mu. A nil
// return is the "no result" case: ENOENT already set, or the FS call
// failed (with any error).
func lstatSyncLocked(n *node) *node {
	if n.state.is(enoent) {
		return nil
	}
	if n.state.is(lstatCalled) {
		return n
	}

	info, err := n.graph.fs.Lstat(n.fullpath)
	if err != nil {
		ingestLstatFailureLocked(n, err)
		return nil
	}

	ingestLstatSuccessLocked(n, info)
	return n
}

// ingestLstatSuccessLocked copies the returned stat fields onto n and
// derives IFMT from the mode bits.
func ingestLstatSuccessLocked(n *node, info fsprovider.StatInfo) {
	n.stat = info
	n.state = n.state.withIfmt(ifmtFromFileMode(info.Mode)).set(lstatCalled)
	if ifmt := n.state.ifmt(); ifmt != ifmtDir && ifmt != ifmtLnk && ifmt != ifmtUnknown {
		n.state = n.state.set(enotdir)
	}
}

// ingestLstatFailureLocked maps a failed lstat's error onto a state-bit
// mutation: ENOTDIR propagates to the parent, ENOENT marks self (and,
// following the general propagation rule, self's already-cached
// descendants), anything else is silent but still logged.
func ingestLstatFailureLocked(n *node, err error) {
	switch classify(err) {
	case errnoENOTDIR:
		if n.parent != nil {
			n.parent.state = n.parent.state.markENOTDIR()
		}
	case errnoENOENT:
		markENOENTRecursive(n)
	default:
		n.graph.errorLogger.Log(util.StatusWrapf(err, "Lstat on %#v", n.fullpath))
	}
}

// LstatSync populates entry's stat fields if they are not already
// cached, returning entry on success and nil on the "no result" case.
func (g *Graph) LstatSync(entry *Path) *Path {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lstatSyncLocked(entry)
}

// LstatResult is delivered on the channel returned by Graph.Lstat.
type LstatResult struct {
	Entry *Path
}

// Lstat is the asynchronous form of LstatSync. Duplicate in-flight
// issues for the same node are permitted to race: the last writer wins
// on the cache fields, which is safe since all success outcomes agree.
// Accordingly this does not single-flight the way Readdir does.
func (g *Graph) Lstat(entry *Path) <-chan LstatResult {
	out := make(chan LstatResult, 1)
	go func() {
		defer close(out)

		g.mu.Lock()
		already := entry.state.is(lstatCalled) || entry.state.is(enoent)
		g.mu.Unlock()
		if already {
			g.mu.Lock()
			result := lstatSyncLocked(entry)
			g.mu.Unlock()
			out <- LstatResult{Entry: result}
			return
		}

		info, err := g.fs.Lstat(entry.fullpath)

		g.mu.Lock()
		if err != nil {
			ingestLstatFailureLocked(entry, err)
			g.mu.Unlock()
			out <- LstatResult{Entry: nil}
			return
		}
		ingestLstatSuccessLocked(entry, info)
		g.mu.Unlock()
		out <- LstatResult{Entry: entry}
	}()
	return out
}
