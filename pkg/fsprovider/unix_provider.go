//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package fsprovider

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sys/unix"
)

// unixProvider is the POSIX-accelerated Provider. It uses
// golang.org/x/sys/unix's Fstatat/Readlinkat rather than the standard
// library so that it can report the full unix.Stat_t, including fields
// (dev/ino/nlink/uid/gid/rdev/blksize/blocks) os.FileInfo never exposes.
//
// This provider is not fd-relative for the top-level call — the path
// graph already resolves full paths through its node tree — but ReadDir
// opens the target directory once and stats its children
// fd-relative via Fstatat, a TOCTOU-safe pattern for avoiding a race
// between listing a directory and stat-ing each entry found in it.
type unixProvider struct{}

// NewUnixProvider returns a Provider that services lstat/readdir using
// golang.org/x/sys/unix directly, populating every field StatInfo
// carries. Prefer this over NewOSProvider on platforms where
// dev/ino/nlink/uid/gid are needed by callers.
func NewUnixProvider() Provider {
	return unixProvider{}
}

func (unixProvider) Lstat(fullpath string) (StatInfo, error) {
	var st unix.Stat_t
	if err := unix.Lstat(fullpath, &st); err != nil {
		return StatInfo{}, err
	}
	return statInfoFromUnix(&st), nil
}

func statInfoFromUnix(st *unix.Stat_t) StatInfo {
	mode := fs.FileMode(st.Mode & 0777)
	switch st.Mode & unix.S_IFMT {
	case unix.S_IFDIR:
		mode |= fs.ModeDir
	case unix.S_IFLNK:
		mode |= fs.ModeSymlink
	case unix.S_IFIFO:
		mode |= fs.ModeNamedPipe
	case unix.S_IFSOCK:
		mode |= fs.ModeSocket
	case unix.S_IFBLK:
		mode |= fs.ModeDevice
	case unix.S_IFCHR:
		mode |= fs.ModeDevice | fs.ModeCharDevice
	case unix.S_IFREG:
		// Regular files carry no extra mode bits.
	default:
		mode |= fs.ModeIrregular
	}
	return StatInfo{
		Mode:      mode,
		Dev:       uint64(st.Dev),
		Rdev:      uint64(st.Rdev),
		Ino:       st.Ino,
		Nlink:     uint64(st.Nlink),
		Uid:       st.Uid,
		Gid:       st.Gid,
		Size:      st.Size,
		Blksize:   int64(st.Blksize),
		Blocks:    st.Blocks,
		Atime:     timespecToTime(st.Atim),
		Mtime:     timespecToTime(st.Mtim),
		Ctime:     timespecToTime(st.Ctim),
		Birthtime: birthtime(st),
	}
}

func timespecToTime(ts unix.Timespec) time.Time {
	return time.Unix(ts.Sec, ts.Nsec)
}

// ReadDir mirrors local_directory_unix.go's ReadDir: open the directory
// once, list names via Readdirnames (which issues getdents under the
// hood on every unix GOOS supported by x/sys/unix), then Fstatat each
// name relative to that same fd so the type comes from the same
// directory snapshot the name listing did.
func (unixProvider) ReadDir(fullpath string) ([]DirEntry, error) {
	fd, err := unix.Open(fullpath, unix.O_DIRECTORY|unix.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	f := os.NewFile(uintptr(fd), fullpath)
	defer f.Close()
	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	entries := make([]DirEntry, 0, len(names))
	for _, name := range names {
		var st unix.Stat_t
		if err := unix.Fstatat(fd, name, &st, unix.AT_SYMLINK_NOFOLLOW); err != nil {
			if err == unix.ENOENT {
				// Removed between Readdirnames and Fstatat.
				continue
			}
			return nil, err
		}
		entries = append(entries, DirEntry{
			Name: name,
			Type: statInfoFromUnix(&st).Mode & fs.ModeType,
		})
	}
	return entries, nil
}

func (unixProvider) Readlink(fullpath string) (string, error) {
	for size := 128; ; size *= 2 {
		buf := make([]byte, size)
		n, err := unix.Readlink(fullpath, buf)
		if err != nil {
			return "", err
		}
		if n < size {
			return string(buf[:n]), nil
		}
	}
}

// Realpath has no single unix(2) syscall equivalent; the kernel resolves
// paths internally during namei() but never exposes the result short of
// /proc/self/root tricks that are Linux-only. filepath.EvalSymlinks
// performs the same component-by-component symlink expansion a libc
// realpath(3) does, so the accelerated provider defers to it here too.
func (unixProvider) Realpath(fullpath string) (string, error) {
	resolved, err := filepath.EvalSymlinks(fullpath)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
