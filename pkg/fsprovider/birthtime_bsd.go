//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package fsprovider

import (
	"time"

	"golang.org/x/sys/unix"
)

// birthtime reports the filesystem's creation timestamp. Every BSD
// family stat(2) (including Darwin's) carries Birthtimespec; Linux does
// not, hence the separate build-tagged implementation in
// birthtime_linux.go.
func birthtime(st *unix.Stat_t) time.Time {
	return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
}
