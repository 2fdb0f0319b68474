package mediainfo

import (
	"errors"
	"sync"
	"unsafe"
)

// Handle is one libmediainfo instance. Create it with New and release it
// with Delete.
//
// A Handle serialises its own calls so that the text the library returns is
// copied before the next call overwrites it. Strings returned by the library
// are only valid until the next call on the same instance.
type Handle struct {
	mu     sync.Mutex
	native unsafe.Pointer
}

// New creates a handle. Load must have succeeded first.
func New() (*Handle, error) {
	if !isLoaded() {
		return nil, ErrNotLoaded
	}
	native := nativeNew()
	if native == nil {
		return nil, errors.New("mediainfo: MediaInfo_New returned null")
	}
	log().Debug("mediainfo handle created")
	return &Handle{native: native}, nil
}

// WithHandle creates a handle, passes it to fn and deletes it afterwards,
// whatever fn returns.
func WithHandle(fn func(h *Handle) error) error {
	h, err := New()
	if err != nil {
		return err
	}
	defer h.Delete()
	return fn(h)
}

// Delete releases the native instance. Calling Delete more than once is safe;
// any other method on a deleted handle is a no-op.
func (h *Handle) Delete() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.native != nil {
		nativeDelete(h.native)
		h.native = nil
		log().Debug("mediainfo handle deleted")
	}
}

// Open parses the file at path. It returns an *OpenError when the library
// cannot open or recognise the file.
func (h *Handle) Open(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.native == nil {
		return ErrHandleClosed
	}
	if nativeOpen(h.native, widePath(path)) == 0 {
		return &OpenError{Path: path}
	}
	return nil
}

// Close releases the resources of the opened file. The handle stays usable.
func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.native != nil {
		nativeClose(h.native)
	}
}

// Get returns the text value of the field named name in the index-th stream
// of kind stream. ok is false when the library returns no string at all;
// unknown fields usually come back as an empty string with ok set.
func (h *Handle) Get(stream Stream, index int, name string) (value string, ok bool) {
	if index < 0 || !stream.Valid() {
		return "", false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.native == nil {
		return "", false
	}
	p := nativeGet(h.native, stream, uint64(index), wideString(name))
	if p == nil {
		return "", false
	}
	return goStringFromWide(p), true
}

// Option gets or sets a configuration option of this instance. The
// vocabulary is the library's own ("Inform", "ParseSpeed", "Info_Parameters",
// ...); the result is whatever the library answers.
func (h *Handle) Option(name, value string) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.native == nil {
		return ""
	}
	return goStringFromWide(nativeOption(h.native, wideString(name), wideString(value)))
}

// Inform returns the library's full report of the opened file, in the format
// selected with the "Inform" option (text by default).
func (h *Handle) Inform() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.native == nil {
		return ""
	}
	return goStringFromWide(nativeInform(h.native))
}

// Count returns the number of streams of the given kind in the opened file.
func (h *Handle) Count(stream Stream) int {
	if !stream.Valid() {
		return 0
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.native == nil {
		return 0
	}
	return int(nativeCountGet(h.native, stream, countAll))
}

// FieldCount returns the number of fields the library knows for the
// index-th stream of the given kind.
func (h *Handle) FieldCount(stream Stream, index int) int {
	if index < 0 || !stream.Valid() {
		return 0
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.native == nil {
		return 0
	}
	return int(nativeCountGet(h.native, stream, uint64(index)))
}
