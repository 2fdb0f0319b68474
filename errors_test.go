package mediainfo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenError(t *testing.T) {
	err := fmt.Errorf("movie.mkv: %w", &OpenError{Path: "/media/movie.mkv"})

	assert.ErrorIs(t, err, ErrOpenFailed)
	assert.EqualError(t, errors.Unwrap(err), "mediainfo: can't open file: /media/movie.mkv")

	var openErr *OpenError
	assert.ErrorAs(t, err, &openErr)
	assert.Equal(t, "/media/movie.mkv", openErr.Path)
}

func TestLibraryNotFoundWrap(t *testing.T) {
	err := fmt.Errorf("%w: %w", ErrLibraryNotFound, errors.New("dlopen failed"))
	assert.ErrorIs(t, err, ErrLibraryNotFound)
	assert.NotErrorIs(t, err, ErrUnsupportedPlatform)
}
