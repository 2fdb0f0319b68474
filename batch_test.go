package mediainfo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInformMany_Empty(t *testing.T) {
	infos, err := InformMany(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, infos)
}

func TestInformMany_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := InformMany(ctx, []string{"a.wav", "b.wav"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInformMany_Order(t *testing.T) {
	requireLibrary(t)

	dir := t.TempDir()
	rates := []uint32{8000, 16000, 22050, 44100, 48000}
	paths := make([]string, len(rates))
	for i, rate := range rates {
		paths[i] = writeWAV(t, dir, filepath.Base(t.Name())+"_"+string(rune('a'+i))+".wav", rate, 1)
	}

	infos, err := InformMany(context.Background(), paths, WithConcurrency(2))
	require.NoError(t, err)
	require.Len(t, infos, len(paths))

	for i, info := range infos {
		assert.Equal(t, paths[i], info.General.CompleteName)
		require.Len(t, info.AudioTracks, 1)
		assert.Equal(t, uint(rates[i]), info.AudioTracks[0].SamplingRate)
	}
}

func TestInformMany_Failure(t *testing.T) {
	requireLibrary(t)

	dir := t.TempDir()
	good := writeWAV(t, dir, "good.wav", 8000, 1)
	missing := filepath.Join(dir, "missing.wav")

	_, err := InformMany(context.Background(), []string{good, missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)

	var openErr *OpenError
	assert.ErrorAs(t, err, &openErr)
}
