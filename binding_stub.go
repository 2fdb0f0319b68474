//go:build !cgo && !darwin && !linux

package mediainfo

import "unsafe"

const bindingName = "stub"

func loadLibrary() error { return ErrUnsupportedPlatform }

func unloadLibrary() {}

func nativeSetLocale() {}

func nativeNew() unsafe.Pointer { return nil }

func nativeDelete(unsafe.Pointer) {}

func nativeOpen(unsafe.Pointer, []wchar) uint64 { return 0 }

func nativeClose(unsafe.Pointer) {}

func nativeGet(unsafe.Pointer, Stream, uint64, []wchar) unsafe.Pointer { return nil }

func nativeOption(unsafe.Pointer, []wchar, []wchar) unsafe.Pointer { return nil }

func nativeInform(unsafe.Pointer) unsafe.Pointer { return nil }

func nativeCountGet(unsafe.Pointer, Stream, uint64) uint64 { return 0 }
