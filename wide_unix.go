//go:build !windows

// wchar_t is 32 bits wide on Linux and macOS and holds UTF-32 code points.

package mediainfo

import (
	"strings"
	"unicode/utf8"
	"unsafe"
)

type wchar = int32

// maxWideLen bounds the scan of a library-owned buffer.
const maxWideLen = 1 << 26

// wideString converts s to a null-terminated wchar_t buffer.
func wideString(s string) []wchar {
	w := make([]wchar, 0, utf8.RuneCountInString(s)+1)
	for _, r := range s {
		w = append(w, r)
	}
	return append(w, 0)
}

// widePath converts a file path. Unix paths need no rewriting.
func widePath(path string) []wchar {
	return wideString(path)
}

// goStringFromWide copies a null-terminated wchar_t string owned by the
// library into a Go string.
func goStringFromWide(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < maxWideLen; i++ {
		c := *(*wchar)(unsafe.Add(p, i*int(unsafe.Sizeof(wchar(0)))))
		if c == 0 {
			break
		}
		if c < 0 || c > utf8.MaxRune {
			c = utf8.RuneError
		}
		sb.WriteRune(rune(c))
	}
	return sb.String()
}
