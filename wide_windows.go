//go:build windows

// wchar_t is 16 bits wide on Windows and holds UTF-16 code units.

package mediainfo

import (
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

type wchar = uint16

func wideString(s string) []wchar {
	return utf16.Encode([]rune(s + "\x00"))
}

// widePath converts a file path, switching to the 8.3 short form for paths
// that do not fit MAX_PATH.
func widePath(path string) []wchar {
	if len(path) < windows.MAX_PATH-1 {
		return wideString(path)
	}

	long := wideString(`\\?\` + path)
	short := make([]uint16, len(long))
	for {
		n, err := windows.GetShortPathName(&long[0], &short[0], uint32(len(short)))
		if err != nil {
			log().WithError(err).WithField("path", path).Debug("short path lookup failed")
			return long
		}
		if n < uint32(len(short)) {
			return short[:n+1]
		}
		short = make([]uint16, n)
	}
}

func goStringFromWide(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	return windows.UTF16PtrToString((*uint16)(p))
}
