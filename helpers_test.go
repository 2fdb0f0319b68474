package mediainfo

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireLibrary skips the test when libmediainfo cannot be loaded.
func requireLibrary(tb testing.TB) {
	tb.Helper()
	if err := Load(); err != nil {
		tb.Skipf("libmediainfo not available: %v", err)
	}
}

// writeWAV writes a silent 16-bit mono PCM WAV file and returns its path.
func writeWAV(tb testing.TB, dir, name string, sampleRate uint32, seconds int) string {
	tb.Helper()

	const (
		channels      = 1
		bitsPerSample = 16
	)
	blockAlign := uint16(channels * bitsPerSample / 8)
	dataSize := sampleRate * uint32(seconds) * uint32(blockAlign)

	buf := make([]byte, 44+dataSize)
	copy(buf[0:], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:], 36+dataSize)
	copy(buf[8:], "WAVE")
	copy(buf[12:], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:], 16)
	binary.LittleEndian.PutUint16(buf[20:], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:], channels)
	binary.LittleEndian.PutUint32(buf[24:], sampleRate)
	binary.LittleEndian.PutUint32(buf[28:], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(buf[32:], blockAlign)
	binary.LittleEndian.PutUint16(buf[34:], bitsPerSample)
	copy(buf[36:], "data")
	binary.LittleEndian.PutUint32(buf[40:], dataSize)

	path := filepath.Join(dir, name)
	require.NoError(tb, os.WriteFile(path, buf, 0o644))
	return path
}
