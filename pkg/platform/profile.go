// Package platform supplies the path-parsing primitives that the path
// graph needs and nothing else: how to recognize an absolute path, how to
// carve the root portion off the front of a string, what separator to
// split on, and what key a root should be registered under.
//
// This plays the same role as a resolve engine's own notion of a
// platform, but trimmed down to the handful of questions a path graph
// actually needs answered: "is this absolute?", "what is the root
// portion of this string?", "what separator do I emit?".
package platform

import "runtime"

// Kind identifies one of the three supported platform profiles.
type Kind int

const (
	// POSIX is the case-sensitive-by-default Unix profile.
	POSIX Kind = iota
	// Darwin is the POSIX profile with case-insensitive-by-default
	// matching. It shares every other rule with POSIX.
	Darwin
	// Windows is the drive-letter/UNC-aware, case-insensitive-by-default
	// profile.
	Windows
)

// Profile answers the handful of platform-specific questions the path
// graph needs in order to parse and key paths. It holds no state of its
// own beyond the case-sensitivity default, so a Profile value is safe to
// share across every Graph on a process.
type Profile struct {
	kind                   Kind
	caseSensitiveByDefault bool
}

// Current returns the profile matching the host the process is running
// on, the way a graph constructed without an explicit platform override
// would pick one.
func Current() Profile {
	switch runtime.GOOS {
	case "windows":
		return New(Windows)
	case "darwin", "ios":
		return New(Darwin)
	default:
		return New(POSIX)
	}
}

// New returns the profile for the given kind.
func New(kind Kind) Profile {
	return Profile{
		kind:                   kind,
		caseSensitiveByDefault: kind == POSIX,
	}
}

// Kind reports which profile this is.
func (p Profile) Kind() Kind {
	return p.kind
}

// CaseSensitiveByDefault reports whether name matching should be
// case-sensitive unless a graph explicitly overrides it.
func (p Profile) CaseSensitiveByDefault() bool {
	return p.caseSensitiveByDefault
}

// Separator returns the byte this profile emits between path components
// when building a native-form string.
func (p Profile) Separator() byte {
	if p.kind == Windows {
		return '\\'
	}
	return '/'
}

// IsPathSeparator reports whether b is a separator this profile accepts
// when splitting an input path into components.
func (p Profile) IsPathSeparator(b byte) bool {
	if p.kind == Windows {
		return b == '/' || b == '\\'
	}
	return b == '/'
}

// IsAbsolute reports whether p is an absolute path under this profile.
func (p Profile) IsAbsolute(s string) bool {
	if p.kind != Windows {
		return len(s) > 0 && s[0] == '/'
	}
	return windowsIsAbsolute(s)
}

// SplitRoot extracts the root portion of an absolute path (e.g. "/" on
// POSIX, "C:\" or a UNC share root on Windows) and returns the remainder
// that still needs to be split into components. ok is false if s is not
// absolute under this profile.
func (p Profile) SplitRoot(s string) (root, rest string, ok bool) {
	if p.kind != Windows {
		if len(s) == 0 || s[0] != '/' {
			return "", "", false
		}
		return "/", stripLeadingSeparators(p, s[1:]), true
	}
	return windowsSplitRoot(s)
}

// RootKey returns the canonical string a root should be registered under
// in a graph's root registry. On POSIX/Darwin this is the root
// unchanged; on Windows, UNC device forms such as `\\?\C:\` normalize to
// `C:\`, and the result is always upper-cased at the drive letter since
// Windows roots are matched case-insensitively.
func (p Profile) RootKey(root string) string {
	if p.kind != Windows {
		return root
	}
	return windowsRootKey(root)
}

// SplitComponents splits rest (as already stripped of its root by
// SplitRoot) into non-empty path components, collapsing runs of
// separators the way POSIX and Windows both do ("a//b" == "a/b").
func (p Profile) SplitComponents(rest string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(rest); i++ {
		if p.IsPathSeparator(rest[i]) {
			if i > start {
				parts = append(parts, rest[start:i])
			}
			start = i + 1
		}
	}
	if start < len(rest) {
		parts = append(parts, rest[start:])
	}
	return parts
}

func stripLeadingSeparators(p Profile, s string) string {
	for len(s) > 0 && p.IsPathSeparator(s[0]) {
		s = s[1:]
	}
	return s
}

// PosixForm converts a native absolute path string produced by this
// profile into the forward-slash form used by FullPathPosix. On
// POSIX/Darwin this is a no-op. On Windows, drive-lettered roots are
// prefixed with "//?/".
func (p Profile) PosixForm(fullpath string) string {
	if p.kind != Windows {
		return fullpath
	}
	return windowsPosixForm(fullpath)
}
