package mediainfo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotLoaded is returned when a handle is requested before Load succeeded.
	ErrNotLoaded = errors.New("mediainfo: library not loaded, call Load first")

	// ErrLibraryNotFound is returned by Load when libmediainfo cannot be found
	// or does not export the expected symbols.
	ErrLibraryNotFound = errors.New("mediainfo: libmediainfo not found")

	// ErrUnsupportedPlatform is returned on platforms without a binding.
	ErrUnsupportedPlatform = errors.New("mediainfo: platform not supported without cgo")

	// ErrHandleClosed is returned when a deleted handle is used.
	ErrHandleClosed = errors.New("mediainfo: handle deleted")

	// ErrOpenFailed is the error wrapped by OpenError.
	ErrOpenFailed = errors.New("mediainfo: can't open file")
)

// OpenError reports a file the library refused to open.
type OpenError struct {
	Path string
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%v: %s", ErrOpenFailed, e.Path)
}

// Unwrap allows errors.Is(err, ErrOpenFailed).
func (e *OpenError) Unwrap() error { return ErrOpenFailed }
