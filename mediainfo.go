package mediainfo

import "sync"

var (
	stateMu sync.Mutex
	loaded  bool

	// staticMu serialises option calls on the null handle, whose result
	// buffer is shared by the whole library.
	staticMu sync.Mutex
)

// Load makes libmediainfo available and sets a UTF-8 locale. It is safe to
// call more than once; only the first successful call does any work.
//
// Without cgo the library is searched at runtime, see EnvLibPath and
// EnvLibDir. With cgo it is linked at build time and Load cannot fail on
// supported platforms.
func Load() error {
	stateMu.Lock()
	defer stateMu.Unlock()

	if loaded {
		return nil
	}
	if err := loadLibrary(); err != nil {
		return err
	}
	InitLocale()
	loaded = true
	return nil
}

// Unload releases the library. Handles still alive become unusable and must
// not be touched afterwards.
func Unload() {
	stateMu.Lock()
	defer stateMu.Unlock()

	if !loaded {
		return
	}
	unloadLibrary()
	loaded = false
}

// IsAvailable reports whether libmediainfo can be used, loading it if needed.
func IsAvailable() bool {
	return Load() == nil
}

func isLoaded() bool {
	stateMu.Lock()
	defer stateMu.Unlock()
	return loaded
}

// InitLocale sets the process locale to UTF-8 so the library decodes and
// returns text correctly. It is a no-op on Windows and may be called any
// number of times.
func InitLocale() {
	nativeSetLocale()
}

// Binding reports how the library is bound: "cgo", "purego" or "stub".
func Binding() string {
	return bindingName
}

// Version returns the library version string, e.g. "MediaInfoLib - v24.01".
// It returns "" when the library is not loaded.
func Version() string {
	return StaticOption("Info_Version", "")
}

// StaticOption gets or sets a library-wide option, one not bound to any
// handle. It returns "" when the library is not loaded.
func StaticOption(name, value string) string {
	if !isLoaded() {
		return ""
	}
	staticMu.Lock()
	defer staticMu.Unlock()
	return goStringFromWide(nativeOption(nil, wideString(name), wideString(value)))
}
