package pathscurry

import "context"

// StreamItem is delivered by Stream/StreamSync. Err exists for parity
// with a Writable stream's "error" event; since the core absorbs every
// FS error into state bits rather than raising, Err is always nil in
// this implementation — the field is kept so a future provider that
// does choose to surface something hard-failing (a malformed filter
// panic recovered into an error, say) has somewhere to put it without an
// API break.
type StreamItem struct {
	Path *Path
	Err  error
}

// Stream is the backpressure-aware traversal surface: an unbuffered
// channel already gives the behavior a Writable stream's "pause on
// write() === false, resume on drain" protocol describes — the
// producing goroutine blocks on the channel send until the consumer is
// ready for the next item, and unblocks the instant it is.
func (g *Graph) Stream(ctx context.Context, entry *Path, opts WalkOptions) <-chan StreamItem {
	out := make(chan StreamItem)
	go func() {
		defer close(out)
		g.walkCore(entry, opts, func(p *Path) bool {
			select {
			case out <- StreamItem{Path: p}:
				return true
			case <-ctx.Done():
				return false
			}
		})
	}()
	return out
}

// StreamSync is the pull-based form of Stream, for callers that want a
// Next()-shaped loop instead of ranging over a channel.
type Stream struct {
	it *Iterator
}

func (g *Graph) StreamSync(entry *Path, opts WalkOptions) *Stream {
	return &Stream{it: g.IterateSync(entry, opts)}
}

func (s *Stream) Next() (StreamItem, bool) {
	p, ok := s.it.Next()
	if !ok {
		return StreamItem{}, false
	}
	return StreamItem{Path: p}, true
}

func (s *Stream) Close() { s.it.Close() }
