package platform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcesarmobile/path-scurry/pkg/platform"
)

func TestPosixProfile(t *testing.T) {
	p := platform.New(platform.POSIX)
	require.True(t, p.CaseSensitiveByDefault())
	require.Equal(t, byte('/'), p.Separator())
	require.True(t, p.IsAbsolute("/a/b"))
	require.False(t, p.IsAbsolute("a/b"))

	root, rest, ok := p.SplitRoot("/a//b/")
	require.True(t, ok)
	require.Equal(t, "/", root)
	require.Equal(t, []string{"a", "b"}, p.SplitComponents(rest))

	require.Equal(t, "/x", p.PosixForm("/x"))
}

func TestDarwinProfileIsCaseInsensitivePosix(t *testing.T) {
	p := platform.New(platform.Darwin)
	require.False(t, p.CaseSensitiveByDefault())
	require.Equal(t, byte('/'), p.Separator())
	require.True(t, p.IsAbsolute("/Users/x"))
}

func TestWindowsProfileDriveLetterRoot(t *testing.T) {
	p := platform.New(platform.Windows)
	require.True(t, p.CaseSensitiveByDefault() == false)
	require.True(t, p.IsAbsolute(`C:\Users`))
	require.True(t, p.IsAbsolute(`/Users`))

	root, rest, ok := p.SplitRoot(`C:\Users\x`)
	require.True(t, ok)
	require.Equal(t, `C:\`, root)
	require.Equal(t, []string{"Users", "x"}, p.SplitComponents(rest))

	require.Equal(t, "C:\\", p.RootKey(root))
}

func TestWindowsProfileUNCDevicePathCanonicalizes(t *testing.T) {
	p := platform.New(platform.Windows)

	root, _, ok := p.SplitRoot(`\\?\C:\Users`)
	require.True(t, ok)
	require.Equal(t, `C:\`, p.RootKey(root))
}

func TestWindowsProfileUNCShare(t *testing.T) {
	p := platform.New(platform.Windows)

	root, rest, ok := p.SplitRoot(`\\server\share\dir`)
	require.True(t, ok)
	require.Equal(t, []string{"dir"}, p.SplitComponents(rest))
	require.Contains(t, p.RootKey(root), "server")
}

func TestWindowsPosixFormPrefixesDriveLetters(t *testing.T) {
	p := platform.New(platform.Windows)
	posix := p.PosixForm(`C:\Users\x`)
	require.Contains(t, posix, "//?/")
}
