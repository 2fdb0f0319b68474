package mediainfo

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Idempotent(t *testing.T) {
	requireLibrary(t)

	require.NoError(t, Load())
	require.NoError(t, Load())
	assert.True(t, IsAvailable())
	assert.Contains(t, []string{"cgo", "purego"}, Binding())
}

func TestNew_NotLoaded(t *testing.T) {
	Unload()
	defer Load()

	h, err := New()
	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.Empty(t, Version())
}

func TestInitLocale_Repeated(t *testing.T) {
	requireLibrary(t)

	InitLocale()
	InitLocale()
}

func TestVersion(t *testing.T) {
	requireLibrary(t)

	v := Version()
	t.Logf("libmediainfo version: %s", v)
	assert.True(t, strings.HasPrefix(v, "MediaInfoLib"), "unexpected version %q", v)
}

func TestHandle_CreateDelete(t *testing.T) {
	requireLibrary(t)

	h, err := New()
	require.NoError(t, err)

	h.Delete()
	h.Delete()

	_, ok := h.Get(StreamGeneral, 0, "Format")
	assert.False(t, ok)
	assert.Empty(t, h.Inform())
	assert.Empty(t, h.Option("Inform", "JSON"))
	assert.Zero(t, h.Count(StreamAudio))
	assert.ErrorIs(t, h.Open("whatever.wav"), ErrHandleClosed)
	h.Close()
}

func TestHandle_OpenMissing(t *testing.T) {
	requireLibrary(t)

	path := filepath.Join(t.TempDir(), "missing.mkv")
	err := WithHandle(func(h *Handle) error {
		return h.Open(path)
	})
	require.Error(t, err)

	var openErr *OpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, path, openErr.Path)
	assert.ErrorIs(t, err, ErrOpenFailed)
}

func TestHandle_WAV(t *testing.T) {
	requireLibrary(t)

	path := writeWAV(t, t.TempDir(), "tone.wav", 8000, 1)

	h, err := New()
	require.NoError(t, err)
	defer h.Delete()

	require.NoError(t, h.Open(path))
	defer h.Close()

	format, ok := h.Get(StreamGeneral, 0, "Format")
	assert.True(t, ok)
	assert.Equal(t, "Wave", format)

	rate, ok := h.Get(StreamAudio, 0, "SamplingRate")
	assert.True(t, ok)
	assert.Equal(t, "8000", rate)

	assert.Equal(t, 1, h.Count(StreamAudio))
	assert.Zero(t, h.Count(StreamVideo))
	assert.Positive(t, h.FieldCount(StreamGeneral, 0))

	_, ok = h.Get(StreamAudio, -1, "Format")
	assert.False(t, ok)
	_, ok = h.Get(StreamMax, 0, "Format")
	assert.False(t, ok)

	assert.NotEmpty(t, h.Inform())
}

func TestHandle_Option(t *testing.T) {
	requireLibrary(t)

	err := WithHandle(func(h *Handle) error {
		assert.NotEmpty(t, h.Option("Info_Parameters", ""))
		h.Option("Inform", "JSON")
		return nil
	})
	require.NoError(t, err)
}

func TestHandle_UnicodePath(t *testing.T) {
	requireLibrary(t)

	path := writeWAV(t, t.TempDir(), "тест 日本語 ✓.wav", 16000, 1)

	info, err := Inform(path)
	require.NoError(t, err)
	assert.Equal(t, path, info.General.CompleteName)
	require.Len(t, info.AudioTracks, 1)
	assert.Equal(t, uint(16000), info.AudioTracks[0].SamplingRate)
}

func TestHandle_ConcurrentHandles(t *testing.T) {
	requireLibrary(t)

	path := writeWAV(t, t.TempDir(), "shared.wav", 8000, 1)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- WithHandle(func(h *Handle) error {
				if err := h.Open(path); err != nil {
					return err
				}
				defer h.Close()
				if n := h.Count(StreamAudio); n != 1 {
					return errors.New("unexpected audio stream count")
				}
				return nil
			})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestInform_WAV(t *testing.T) {
	requireLibrary(t)

	path := writeWAV(t, t.TempDir(), "tone.wav", 8000, 2)

	info, err := Inform(path, WithParseSpeed(1))
	require.NoError(t, err)

	assert.Equal(t, "Wave", info.General.Format)
	assert.Equal(t, "wav", info.General.FileExtension)
	assert.Equal(t, uint(1), info.General.AudioCount)
	require.Len(t, info.AudioTracks, 1)

	a := info.AudioTracks[0]
	assert.Equal(t, "PCM", a.Format)
	assert.Equal(t, AudioCodecPCM, a.Codec())
	assert.Equal(t, uint(1), a.Channels)
	assert.Equal(t, uint(8000), a.SamplingRate)
	assert.InDelta(t, 2.0, a.Duration, 0.01)
	assert.Empty(t, info.VideoTracks)
	assert.Empty(t, info.MenuTracks)
}

func TestInform_Missing(t *testing.T) {
	requireLibrary(t)

	_, err := Inform(filepath.Join(t.TempDir(), "nope.mp4"))
	var openErr *OpenError
	assert.ErrorAs(t, err, &openErr)
}
