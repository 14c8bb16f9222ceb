//go:build linux

package fsprovider

import (
	"time"

	"golang.org/x/sys/unix"
)

// birthtime returns the zero Time on Linux: struct stat has no creation
// timestamp (only statx(2) with STATX_BTIME does, and not on every
// filesystem), so there is nothing cheap to report here. Graph.Lstat
// callers see a zero time and StatInfo.Sparse is unaffected by this —
// Sparse only distinguishes the portable os.FileInfo-backed provider
// from this one.
func birthtime(st *unix.Stat_t) time.Time {
	return time.Time{}
}
