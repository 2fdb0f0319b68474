package mediainfo

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment variables consulted when searching for libmediainfo.
const (
	EnvLibPath = "MEDIAINFO_LIB_PATH" // full path to the shared library
	EnvLibDir  = "MEDIAINFO_LIB_DIR"  // directory containing the shared library
)

// libraryNames returns the file names libmediainfo ships under on goos,
// most specific first.
func libraryNames(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"libmediainfo.0.dylib", "libmediainfo.dylib"}
	case "windows":
		return []string{"MediaInfo.dll"}
	default:
		return []string{"libmediainfo.so.0", "libmediainfo.so"}
	}
}

// libraryPaths returns candidate locations for libmediainfo in search order.
func libraryPaths() []string {
	return libraryPathsFor(runtime.GOOS, os.Getenv)
}

func libraryPathsFor(goos string, getenv func(string) string) []string {
	names := libraryNames(goos)
	var paths []string

	// Environment variable overrides (highest priority)
	if p := getenv(EnvLibPath); p != "" {
		paths = append(paths, p)
	}
	if dir := getenv(EnvLibDir); dir != "" {
		for _, name := range names {
			paths = append(paths, filepath.Join(dir, name))
		}
	}

	var dirs []string
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		dirs = append(dirs, exeDir, filepath.Join(exeDir, "..", "lib"))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, filepath.Join(wd, "build"))
	}
	if root := findModuleRoot(); root != "" {
		dirs = append(dirs, filepath.Join(root, "build"))
	}
	for _, dir := range dirs {
		for _, name := range names {
			paths = append(paths, filepath.Join(dir, name))
		}
	}

	// Bare names go through the dynamic loader's own search path.
	paths = append(paths, names...)

	// System paths (lowest priority)
	var system []string
	switch goos {
	case "darwin":
		system = []string{"/usr/local/lib", "/opt/homebrew/lib", "/opt/local/lib"}
	case "linux":
		system = []string{"/usr/lib/x86_64-linux-gnu", "/usr/lib/aarch64-linux-gnu", "/usr/lib64", "/usr/lib", "/usr/local/lib"}
	}
	for _, dir := range system {
		for _, name := range names {
			paths = append(paths, filepath.Join(dir, name))
		}
	}

	return paths
}

// findModuleRoot walks up from the working directory to the first directory
// containing go.mod.
func findModuleRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
