//go:build solaris

package fsprovider

import (
	"time"

	"golang.org/x/sys/unix"
)

// birthtime is unavailable on Solaris's stat(2); see birthtime_linux.go.
func birthtime(st *unix.Stat_t) time.Time {
	return time.Time{}
}
