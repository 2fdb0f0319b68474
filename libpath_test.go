package mediainfo

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryNames(t *testing.T) {
	assert.Equal(t, []string{"libmediainfo.0.dylib", "libmediainfo.dylib"}, libraryNames("darwin"))
	assert.Equal(t, []string{"MediaInfo.dll"}, libraryNames("windows"))
	assert.Equal(t, []string{"libmediainfo.so.0", "libmediainfo.so"}, libraryNames("linux"))
	assert.Equal(t, []string{"libmediainfo.so.0", "libmediainfo.so"}, libraryNames("freebsd"))
}

func TestLibraryPaths_EnvFirst(t *testing.T) {
	env := map[string]string{
		EnvLibPath: "/opt/custom/libmediainfo.so",
		EnvLibDir:  "/opt/dir",
	}
	paths := libraryPathsFor("linux", func(k string) string { return env[k] })

	require.GreaterOrEqual(t, len(paths), 3)
	assert.Equal(t, "/opt/custom/libmediainfo.so", paths[0])
	assert.Equal(t, filepath.Join("/opt/dir", "libmediainfo.so.0"), paths[1])
	assert.Equal(t, filepath.Join("/opt/dir", "libmediainfo.so"), paths[2])
}

func TestLibraryPaths_NoEnv(t *testing.T) {
	paths := libraryPathsFor("linux", func(string) string { return "" })

	assert.Contains(t, paths, "libmediainfo.so.0")
	assert.Contains(t, paths, filepath.Join("/usr/lib", "libmediainfo.so.0"))

	// Bare names come before system directories.
	bare, system := -1, -1
	for i, p := range paths {
		switch p {
		case "libmediainfo.so.0":
			bare = i
		case filepath.Join("/usr/lib", "libmediainfo.so.0"):
			system = i
		}
	}
	assert.Less(t, bare, system)
}

func TestLibraryPaths_Darwin(t *testing.T) {
	paths := libraryPathsFor("darwin", func(string) string { return "" })
	assert.Contains(t, paths, filepath.Join("/opt/homebrew/lib", "libmediainfo.0.dylib"))
	assert.NotContains(t, paths, "libmediainfo.so.0")
}

func TestFindModuleRoot(t *testing.T) {
	root := findModuleRoot()
	require.NotEmpty(t, root)
	assert.FileExists(t, filepath.Join(root, "go.mod"))
}
