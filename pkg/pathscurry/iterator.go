package pathscurry

import (
	"context"
	"sync"
)

// Iterator is the pull-based traversal surface: one entry per Next()
// call instead of a fully materialized slice. The traversal itself runs
// on its own goroutine; Next() blocks until the next entry is ready or
// the walk is exhausted.
type Iterator struct {
	values chan *Path
	stop   chan struct{}
	once   sync.Once
}

// IterateSync returns a pull-based Iterator over entry's subtree.
// Callers that stop consuming before exhaustion must call Close to let
// the producing goroutine unwind.
func (g *Graph) IterateSync(entry *Path, opts WalkOptions) *Iterator {
	it := &Iterator{
		values: make(chan *Path),
		stop:   make(chan struct{}),
	}
	go func() {
		defer close(it.values)
		g.walkCore(entry, opts, func(p *Path) bool {
			select {
			case it.values <- p:
				return true
			case <-it.stop:
				return false
			}
		})
	}()
	return it
}

// Next returns the next entry, or ok=false once the traversal has
// completed (or been Closed).
func (it *Iterator) Next() (entry *Path, ok bool) {
	select {
	case <-it.stop:
		return nil, false
	default:
	}
	entry, ok = <-it.values
	return entry, ok
}

// Close stops the traversal early. Safe to call multiple times, and
// safe to omit if the caller drains Next() to exhaustion.
func (it *Iterator) Close() {
	it.once.Do(func() { close(it.stop) })
}

// Iterate is the asynchronous, channel-native form of IterateSync,
// suited to a range-over-channel loop. Cancelling ctx stops the
// traversal early; the channel is closed once the walk is exhausted or
// ctx is done.
func (g *Graph) Iterate(ctx context.Context, entry *Path, opts WalkOptions) <-chan *Path {
	out := make(chan *Path)
	go func() {
		defer close(out)
		g.walkCore(entry, opts, func(p *Path) bool {
			select {
			case out <- p:
				return true
			case <-ctx.Done():
				return false
			}
		})
	}()
	return out
}
