//go:build cgo

// libmediainfo bindings linked at build time through the shim in clib/.

package mediainfo

/*
#cgo CFLAGS: -DUNICODE -D_UNICODE -I${SRCDIR}/clib
#cgo linux LDFLAGS: -lmediainfo
#cgo darwin LDFLAGS: -L/usr/local/lib -L/opt/homebrew/lib -lmediainfo
#cgo windows LDFLAGS: -lMediaInfo

#include "mediainfo_shim.h"
*/
import "C"

import "unsafe"

const bindingName = "cgo"

// loadLibrary has nothing to do: the dynamic linker resolved libmediainfo
// when the process started.
func loadLibrary() error {
	log().Debug("libmediainfo linked via cgo")
	return nil
}

func unloadLibrary() {}

func nativeSetLocale() {
	C.GoSetLocale()
}

func wptr(w []wchar) *C.wchar_t {
	return (*C.wchar_t)(unsafe.Pointer(&w[0]))
}

func nativeNew() unsafe.Pointer {
	return C.GoMediaInfo_New()
}

func nativeDelete(h unsafe.Pointer) {
	C.GoMediaInfo_Delete(h)
}

func nativeOpen(h unsafe.Pointer, path []wchar) uint64 {
	return uint64(C.GoMediaInfo_Open(h, wptr(path)))
}

func nativeClose(h unsafe.Pointer) {
	C.GoMediaInfo_Close(h)
}

func nativeGet(h unsafe.Pointer, s Stream, index uint64, name []wchar) unsafe.Pointer {
	return unsafe.Pointer(C.GoMediaInfo_Get(h, C.MediaInfo_stream_C(s), C.size_t(index), wptr(name)))
}

func nativeOption(h unsafe.Pointer, name, value []wchar) unsafe.Pointer {
	return unsafe.Pointer(C.GoMediaInfo_Option(h, wptr(name), wptr(value)))
}

func nativeInform(h unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.GoMediaInfo_Inform(h))
}

func nativeCountGet(h unsafe.Pointer, s Stream, index uint64) uint64 {
	return uint64(C.GoMediaInfo_Count_Get(h, C.MediaInfo_stream_C(s), C.size_t(index)))
}
