// Package pathscurry implements a cached filesystem path graph: a
// process-local, incrementally built in-memory representation of a
// directory tree that answers path-resolution, metadata, link-resolution,
// and recursive-walk queries with aggressive caching and bounded memory.
//
// The graph never mutates the filesystem and never invalidates itself on
// filesystem change — it is explicitly a snapshot that may be out of
// date. Clients that will query the same subtree many times (globbing,
// bulk indexing, watchers) get that snapshot's speed in exchange.
package pathscurry

import (
	"os"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jcesarmobile/path-scurry/pkg/eviction"
	"github.com/jcesarmobile/path-scurry/pkg/fsprovider"
	"github.com/jcesarmobile/path-scurry/pkg/platform"
	"github.com/jcesarmobile/path-scurry/pkg/util"
)

// Options configures a Graph at construction time.
type Options struct {
	// Cwd is the starting working directory, as an absolute path
	// string; New rejects a relative one. Defaults to the process's
	// working directory.
	Cwd string

	// Platform selects the path-parsing profile. Defaults to the host
	// platform (platform.Current()).
	Platform *platform.Profile

	// Nocase overrides the platform's case-sensitivity default when
	// non-nil.
	Nocase *bool

	// ChildrenCacheSize bounds the children-array LRU, in
	// children.size() units. Zero means DefaultChildrenCacheSize.
	ChildrenCacheSize int64

	// FS is the injected FS provider. Defaults to
	// fsprovider.NewOSProvider().
	FS fsprovider.Provider

	// ErrorLogger receives FS errors the core's state machine has no
	// dedicated bit for — an unclassified readdir or lstat failure —
	// they're absorbed the same as every other FS error ("state
	// unchanged"), but since an async call's error can't be handed back
	// to any caller, something must still see it. Defaults to
	// util.DefaultErrorLogger.
	ErrorLogger util.ErrorLogger
}

// Graph is a cached filesystem path graph. It is not safe for concurrent
// use by multiple goroutines without going through its own exported
// methods — which serialize all in-memory mutation behind Graph.mu,
// mirroring the single-threaded event-loop semantics this design is
// meant to offer a caller even though Go itself schedules goroutines
// preemptively. Blocking filesystem I/O issued by the async methods
// runs unlocked, so slow calls against different nodes can genuinely
// overlap; only the graph's own bookkeeping is serialized.
type Graph struct {
	mu sync.Mutex

	profile platform.Profile
	nocase  bool
	fs      fsprovider.Provider

	childrenCache *eviction.Cache[*node, *children]

	resolveCacheNative *eviction.Cache[string, string]
	resolveCachePosix  *eviction.Cache[string, string]

	roots map[string]*node
	cwd   *node

	errorLogger util.ErrorLogger
}

// New constructs a Graph. A malformed cwd is the only thing construction
// fails on; every other operation absorbs its own errors into node
// state instead of returning them.
func New(opts Options) (*Graph, error) {
	profile := platform.Current()
	if opts.Platform != nil {
		profile = *opts.Platform
	}
	nocase := profile.CaseSensitiveByDefault() == false
	if opts.Nocase != nil {
		nocase = *opts.Nocase
	}
	fs := opts.FS
	if fs == nil {
		fs = fsprovider.NewOSProvider()
	}
	cacheSize := opts.ChildrenCacheSize
	if cacheSize == 0 {
		cacheSize = DefaultChildrenCacheSize
	}
	errorLogger := opts.ErrorLogger
	if errorLogger == nil {
		errorLogger = util.DefaultErrorLogger
	}

	g := &Graph{
		profile:            profile,
		nocase:             nocase,
		fs:                 fs,
		childrenCache:      newChildrenCache(cacheSize),
		resolveCacheNative: newResolverCache(),
		resolveCachePosix:  newResolverCache(),
		roots:              make(map[string]*node),
		errorLogger:        errorLogger,
	}

	cwd := opts.Cwd
	if cwd == "" {
		var err error
		cwd, err = defaultCwd()
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "Failed to determine working directory: %v", err)
		}
	}
	if !g.profile.IsAbsolute(cwd) {
		return nil, status.Errorf(codes.InvalidArgument, "Cwd must be an absolute path, got %#v", cwd)
	}

	// g.cwd is nil at this point, so resolveLocked(nil, cwd) resolves
	// purely from cwd's own (absolute) root, which is exactly what
	// bootstrapping the graph's working directory needs.
	g.mu.Lock()
	g.cwd = g.resolveLocked(nil, cwd)
	setAsCwdLocked(g.cwd, nil)
	g.mu.Unlock()
	return g, nil
}

// rootFor returns the root node for the given root string (as SplitRoot
// returned it), looked up under its platform RootKey, allocating and
// registering a new one if it is not yet present. Callers must hold g.mu.
func (g *Graph) rootFor(root string) *node {
	key := g.profile.RootKey(root)
	if n, ok := g.roots[key]; ok {
		return n
	}
	n := newRootNode(g, root)
	g.roots[key] = n
	return n
}

func defaultCwd() (string, error) {
	return os.Getwd()
}

// Cwd returns the graph's current working directory node.
func (g *Graph) Cwd() *Path {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cwd
}
