package mediainfo

import (
	"runtime"
	"strconv"
)

// Option configures Inform and InformMany.
//
// Example:
//
//	info, err := mediainfo.Inform("movie.mkv",
//	    mediainfo.WithParseSpeed(0.5),
//	    mediainfo.WithOption("Language", "raw"),
//	)
type Option func(*informOptions)

type libOption struct {
	name, value string
}

type informOptions struct {
	libOptions  []libOption // applied to the handle before Open, in order
	concurrency int         // InformMany only
}

func newInformOptions(opts []Option) *informOptions {
	o := &informOptions{concurrency: runtime.NumCPU()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithOption sets a raw library option on the handle before the file is
// opened. Options are applied in the order given.
func WithOption(name, value string) Option {
	return func(o *informOptions) {
		o.libOptions = append(o.libOptions, libOption{name, value})
	}
}

// WithParseSpeed sets how much of the file the library reads, from 0 (headers
// only) to 1 (whole file). The library default is 0.5.
func WithParseSpeed(speed float64) Option {
	return WithOption("ParseSpeed", strconv.FormatFloat(speed, 'f', -1, 64))
}

// WithConcurrency limits how many files InformMany inspects at once.
// Values below 1 are ignored. Default is runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(o *informOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
