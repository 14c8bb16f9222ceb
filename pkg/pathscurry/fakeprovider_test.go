package pathscurry_test

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/jcesarmobile/path-scurry/pkg/fsprovider"
)

// fakeProvider is a fully scripted, in-memory fsprovider.Provider, the
// injection point test suites use to control FS fault and latency
// precisely.
type fakeProvider struct {
	mu sync.Mutex

	dirs        map[string][]fsprovider.DirEntry
	dirErrs     map[string]error
	readdirHits map[string]int

	lstatInfo map[string]fsprovider.StatInfo
	lstatErrs map[string]error

	links     map[string]string
	linkErrs  map[string]error
	realpaths map[string]string
	realErrs  map[string]error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		dirs:        map[string][]fsprovider.DirEntry{},
		dirErrs:     map[string]error{},
		readdirHits: map[string]int{},
		lstatInfo:   map[string]fsprovider.StatInfo{},
		lstatErrs:   map[string]error{},
		links:       map[string]string{},
		linkErrs:    map[string]error{},
		realpaths:   map[string]string{},
		realErrs:    map[string]error{},
	}
}

func (f *fakeProvider) setDir(path string, entries ...fsprovider.DirEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirs[path] = entries
}

func (f *fakeProvider) hits(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readdirHits[path]
}

func (f *fakeProvider) ReadDir(path string) ([]fsprovider.DirEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readdirHits[path]++
	if err, ok := f.dirErrs[path]; ok {
		return nil, err
	}
	return f.dirs[path], nil
}

func (f *fakeProvider) Lstat(path string) (fsprovider.StatInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.lstatErrs[path]; ok {
		return fsprovider.StatInfo{}, err
	}
	return f.lstatInfo[path], nil
}

func (f *fakeProvider) Readlink(path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.linkErrs[path]; ok {
		return "", err
	}
	if target, ok := f.links[path]; ok {
		return target, nil
	}
	return "", fmt.Errorf("fakeProvider: no link registered for %s: %w", path, fs.ErrInvalid)
}

func (f *fakeProvider) Realpath(path string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.realErrs[path]; ok {
		return "", err
	}
	if target, ok := f.realpaths[path]; ok {
		return target, nil
	}
	return path, nil
}

func dirEntry(name string, dir bool) fsprovider.DirEntry {
	if dir {
		return fsprovider.DirEntry{Name: name, Type: fs.ModeDir}
	}
	return fsprovider.DirEntry{Name: name}
}

func symlinkEntry(name string) fsprovider.DirEntry {
	return fsprovider.DirEntry{Name: name, Type: fs.ModeSymlink}
}
