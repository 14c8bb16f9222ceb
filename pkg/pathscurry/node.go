package pathscurry

import (
	"golang.org/x/sync/singleflight"

	"github.com/jcesarmobile/path-scurry/pkg/fsprovider"
)

// node is one entry in the path graph: one per unique observed
// filesystem name path, existent or not.
//
// A node is never explicitly destroyed. Its memory is released only when
// the children cache evicts its parent's children list and no external
// *Path reference survives — Go's garbage collector is what actually
// reclaims it; the cache eviction just drops the one strong reference
// the graph was holding.
type node struct {
	graph *Graph

	name      string
	matchName string

	parent *node
	root   *node

	state typeState

	linkTarget *node
	realTarget *node

	stat fsprovider.StatInfo

	fullpath      string
	fullpathKnown bool
	fullpathPosix string
	relative      string
	relativeKnown bool
	relativePosix string
	depth         int
	depthKnown    bool

	// readdirGroup coalesces concurrent async readdir calls for this
	// node into one in-flight FS call. Created lazily: most nodes never
	// issue an async readdir.
	readdirGroup *singleflight.Group
}

// Path is the public handle to a node. It is the type every exported
// query-surface method accepts and returns; internally it is nothing
// more than *node, the way a public FileInfo type can wrap an internal
// representation without exposing its fields.
type Path = node

func newRootNode(g *Graph, fullpath string) *node {
	n := &node{
		graph:         g,
		name:          fullpath,
		fullpath:      fullpath,
		fullpathKnown: true,
	}
	n.root = n
	n.matchName = matchKey(n.name, g.nocase)
	return n
}

func newChildNode(parent *node, name string) *node {
	n := &node{
		graph:     parent.graph,
		name:      name,
		matchName: matchKey(name, parent.graph.nocase),
		parent:    parent,
		root:      parent.root,
	}
	if !parent.state.canHaveChildren() {
		n.state = n.state.markENOENT()
	}
	if parent.fullpathKnown {
		sep := parent.graph.profile.Separator()
		if len(parent.fullpath) > 0 && parent.fullpath[len(parent.fullpath)-1] == sep {
			// Roots ("/", "C:\", "\\server\share\") already end in the
			// separator.
			n.fullpath = parent.fullpath + name
		} else {
			n.fullpath = parent.fullpath + string(sep) + name
		}
		n.fullpathKnown = true
	}
	return n
}

// Name returns the basename as observed. On a case-insensitive graph
// this may have been corrected to the filesystem's canonical spelling by
// a later readdir call.
func (n *node) Name() string { return n.name }

// Parent returns the parent node, or nil if n is a root.
func (n *node) Parent() *node { return n.parent }

// Root returns the root node reachable from n (itself, if n is a root).
func (n *node) Root() *node { return n.root }

// IsRoot reports whether n has no parent.
func (n *node) IsRoot() bool { return n.parent == nil }

// isNamed compares match keys rather than names directly: direct .name
// comparison would produce false negatives across Unicode-equivalent but
// differently-encoded spellings.
func (n *node) isNamed(s string) bool {
	return n.matchName == matchKey(s, n.graph.nocase)
}

// IsNamed is the exported form of isNamed.
func (n *node) IsNamed(s string) bool { return n.isNamed(s) }

// Stat returns the stat fields lstat last populated, zero-valued if
// LstatSync/Lstat has never succeeded for this node.
func (n *node) Stat() fsprovider.StatInfo { return n.stat }

// lockedMutate runs fn while holding the graph's mutation lock. The
// graph's own methods take g.mu directly rather than going through this
// helper; it has no callers inside the package.
func (n *node) lockedMutate(fn func()) {
	n.graph.mu.Lock()
	defer n.graph.mu.Unlock()
	fn()
}
