package mediainfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInformOptions(t *testing.T) {
	o := newInformOptions(nil)
	assert.Equal(t, runtime.NumCPU(), o.concurrency)
	assert.Empty(t, o.libOptions)

	o = newInformOptions([]Option{
		WithParseSpeed(0.25),
		WithOption("Language", "raw"),
		WithConcurrency(3),
		WithConcurrency(0),
	})
	assert.Equal(t, 3, o.concurrency)
	assert.Equal(t, []libOption{
		{"ParseSpeed", "0.25"},
		{"Language", "raw"},
	}, o.libOptions)
}

func TestWithParseSpeed_Format(t *testing.T) {
	tests := []struct {
		speed float64
		want  string
	}{
		{0, "0"},
		{1, "1"},
		{0.5, "0.5"},
		{-1, "-1"},
	}
	for _, tt := range tests {
		o := newInformOptions([]Option{WithParseSpeed(tt.speed)})
		assert.Equal(t, tt.want, o.libOptions[0].value)
	}
}
