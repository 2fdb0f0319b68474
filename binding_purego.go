//go:build (darwin || linux) && !cgo

// libmediainfo bindings loaded at runtime via purego.
//
// libmediainfo exports a plain C API (MediaInfoDLL.h) so the symbols are
// registered directly; no wrapper library is needed.

package mediainfo

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

const bindingName = "purego"

var (
	libMu     sync.Mutex
	libHandle uintptr
)

// libmediainfo function pointers
var (
	miNew      func() unsafe.Pointer
	miDelete   func(handle unsafe.Pointer)
	miOpen     func(handle, name unsafe.Pointer) uintptr
	miClose    func(handle unsafe.Pointer)
	miGet      func(handle unsafe.Pointer, stream int32, number uintptr, parameter unsafe.Pointer, kind, search int32) unsafe.Pointer
	miOption   func(handle, option, value unsafe.Pointer) unsafe.Pointer
	miInform   func(handle unsafe.Pointer, reserved uintptr) unsafe.Pointer
	miCountGet func(handle unsafe.Pointer, stream int32, number uintptr) uintptr
)

var mediaInfoSymbols = []struct {
	fptr any
	name string
}{
	{&miNew, "MediaInfo_New"},
	{&miDelete, "MediaInfo_Delete"},
	{&miOpen, "MediaInfo_Open"},
	{&miClose, "MediaInfo_Close"},
	{&miGet, "MediaInfo_Get"},
	{&miOption, "MediaInfo_Option"},
	{&miInform, "MediaInfo_Inform"},
	{&miCountGet, "MediaInfo_Count_Get"},
}

func loadLibrary() error {
	libMu.Lock()
	defer libMu.Unlock()

	if libHandle != 0 {
		return nil
	}

	var lastErr error
	for _, path := range libraryPaths() {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}
		if err := registerSymbols(handle); err != nil {
			purego.Dlclose(handle)
			log().WithError(err).WithField("path", path).Debug("libmediainfo rejected")
			lastErr = err
			continue
		}
		log().WithField("path", path).Debug("libmediainfo loaded")
		libHandle = handle
		return nil
	}

	if lastErr != nil {
		return fmt.Errorf("%w: %w", ErrLibraryNotFound, lastErr)
	}
	return ErrLibraryNotFound
}

// registerSymbols resolves every symbol before binding any of them so a
// partial library leaves the function pointers untouched.
func registerSymbols(handle uintptr) error {
	addrs := make([]uintptr, len(mediaInfoSymbols))
	for i, s := range mediaInfoSymbols {
		addr, err := purego.Dlsym(handle, s.name)
		if err != nil {
			return fmt.Errorf("symbol %s: %w", s.name, err)
		}
		addrs[i] = addr
	}
	for i, s := range mediaInfoSymbols {
		purego.RegisterFunc(s.fptr, addrs[i])
	}
	return nil
}

func unloadLibrary() {
	libMu.Lock()
	defer libMu.Unlock()

	if libHandle != 0 {
		purego.Dlclose(libHandle)
		libHandle = 0
	}
}

// libc setlocale, loaded on first use.
var (
	libcOnce      sync.Once
	libcSetlocale func(category int32, locale string) unsafe.Pointer
)

var utf8Locales = []string{"en_US.UTF-8", "C.UTF-8"}

func libcPath() string {
	if runtime.GOOS == "darwin" {
		return "/usr/lib/libSystem.B.dylib"
	}
	return "libc.so.6"
}

// lcAll is LC_ALL from <locale.h>.
func lcAll() int32 {
	if runtime.GOOS == "darwin" {
		return 0
	}
	return 6
}

func nativeSetLocale() {
	libcOnce.Do(func() {
		handle, err := purego.Dlopen(libcPath(), purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			log().WithError(err).Debug("libc not loadable, locale left unchanged")
			return
		}
		purego.RegisterLibFunc(&libcSetlocale, handle, "setlocale")
	})
	if libcSetlocale == nil {
		return
	}
	for _, name := range utf8Locales {
		if libcSetlocale(lcAll(), name) != nil {
			return
		}
	}
	log().Debug("no UTF-8 locale available")
}

func nativeNew() unsafe.Pointer {
	return miNew()
}

func nativeDelete(h unsafe.Pointer) {
	miDelete(h)
}

func nativeOpen(h unsafe.Pointer, path []wchar) uint64 {
	r := miOpen(h, unsafe.Pointer(&path[0]))
	runtime.KeepAlive(path)
	return uint64(r)
}

func nativeClose(h unsafe.Pointer) {
	miClose(h)
}

func nativeGet(h unsafe.Pointer, s Stream, index uint64, name []wchar) unsafe.Pointer {
	r := miGet(h, int32(s), uintptr(index), unsafe.Pointer(&name[0]), int32(infoText), int32(infoName))
	runtime.KeepAlive(name)
	return r
}

func nativeOption(h unsafe.Pointer, name, value []wchar) unsafe.Pointer {
	r := miOption(h, unsafe.Pointer(&name[0]), unsafe.Pointer(&value[0]))
	runtime.KeepAlive(name)
	runtime.KeepAlive(value)
	return r
}

func nativeInform(h unsafe.Pointer) unsafe.Pointer {
	return miInform(h, 0)
}

func nativeCountGet(h unsafe.Pointer, s Stream, index uint64) uint64 {
	return uint64(miCountGet(h, int32(s), uintptr(index)))
}
