package fsprovider

import (
	"os"
	"path/filepath"
)

// osProvider is the portable default Provider, implemented entirely on
// top of the standard library the way a fallback implementation has to
// be: it works on every GOOS, at the cost of the richer stat fields only
// a platform-specific provider (see unix_provider.go) can cheaply supply.
type osProvider struct{}

// NewOSProvider returns the portable, standard-library-backed Provider.
// It is the default used by Graph when no Provider is supplied.
func NewOSProvider() Provider {
	return osProvider{}
}

func (osProvider) Lstat(fullpath string) (StatInfo, error) {
	fi, err := os.Lstat(fullpath)
	if err != nil {
		return StatInfo{}, err
	}
	return StatInfo{
		Mode:   fi.Mode(),
		Size:   fi.Size(),
		Mtime:  fi.ModTime(),
		Sparse: true,
	}, nil
}

func (osProvider) ReadDir(fullpath string) ([]DirEntry, error) {
	entries, err := os.ReadDir(fullpath)
	if err != nil {
		return nil, err
	}
	result := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, DirEntry{
			Name: e.Name(),
			Type: e.Type(),
		})
	}
	return result, nil
}

func (osProvider) Readlink(fullpath string) (string, error) {
	return os.Readlink(fullpath)
}

func (osProvider) Realpath(fullpath string) (string, error) {
	// filepath.EvalSymlinks walks every component exactly the way
	// POSIX realpath(3) does, resolving symlinks as it goes; it is the
	// standard library's only portable equivalent.
	resolved, err := filepath.EvalSymlinks(fullpath)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
