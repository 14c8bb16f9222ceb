// Package fsprovider defines the filesystem contract the path graph
// consumes, and a couple of concrete implementations of it.
//
// lstat/readdir/readlink/realpath are external collaborators: the graph
// core never calls a filesystem API directly, it only calls through a
// Provider. This is the injection point test suites use to stub faults
// and latency, the same way a Directory-style interface lets
// platform-specific implementations swap in behind one contract.
package fsprovider

import (
	"io/fs"
	"time"
)

// DirEntry is the entry-type variant of a readdir result: a name plus
// enough of the inode type to populate a node's IFMT bits without a
// separate lstat call, the same shortcut os.ReadDir/fs.DirEntry takes.
type DirEntry struct {
	Name string
	Type fs.FileMode // ModeType bits only (ModeDir, ModeSymlink, ...); 0 means regular file.
}

// StatInfo carries a node's stat fields. Dev/Rdev/Ino/Nlink/
// Uid/Gid/Blksize/Blocks are only populated by providers that can obtain
// them cheaply (the unix-accelerated provider); Sparse reports whether
// they were left at zero because the underlying provider has no access
// to them (see DESIGN.md's Open Question on this).
type StatInfo struct {
	Mode    fs.FileMode
	Dev     uint64
	Rdev    uint64
	Ino     uint64
	Nlink   uint64
	Uid     uint32
	Gid     uint32
	Size    int64
	Blksize int64
	Blocks  int64

	Atime, Mtime, Ctime, Birthtime time.Time

	Sparse bool
}

// Provider bundles the four filesystem operations the path graph needs.
// Implementations must be safe to call from multiple goroutines
// concurrently; the graph itself serializes its own bookkeeping, but its
// async methods issue calls from worker goroutines.
type Provider interface {
	// Lstat is the equivalent of os.Lstat: it must not follow a
	// trailing symlink.
	Lstat(fullpath string) (StatInfo, error)
	// ReadDir is the entry-type variant of readdir: equivalent to
	// os.ReadDir, returning type bits without a full stat per entry.
	ReadDir(fullpath string) ([]DirEntry, error)
	// Readlink is the equivalent of os.Readlink.
	Readlink(fullpath string) (string, error)
	// Realpath fully dereferences fullpath, following every
	// intermediate and terminal symlink, the way filepath.EvalSymlinks
	// or POSIX realpath(3) does.
	Realpath(fullpath string) (string, error)
}
