package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// config is the validated command line.
type config struct {
	Format      string   `validate:"oneof=text json schema"`
	Options     []string `validate:"dive,contains=="`
	ParseSpeed  float64  `validate:"eq=-1|gte=0,lte=1"` // -1 keeps the library default
	Concurrency int      `validate:"min=1"`
	CachePath   string
	CacheMaxAge time.Duration `validate:"gte=0s"`
	Verbose     bool
	Files       []string `validate:"required_unless=Format schema,dive,required"`
}

// optionList collects repeated -option flags.
type optionList []string

func (o *optionList) String() string { return strings.Join(*o, ",") }

func (o *optionList) Set(v string) error {
	*o = append(*o, v)
	return nil
}

func parseArgs(args []string, stderr io.Writer, defaultConcurrency int) (*config, error) {
	cfg := &config{}
	var options optionList

	fs := flag.NewFlagSet("mediainfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: mediainfo [flags] FILE...")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Format, "format", "text", "output format: text, json or schema")
	fs.Var(&options, "option", "library option as name=value (repeatable)")
	fs.Float64Var(&cfg.ParseSpeed, "parse-speed", -1, "fraction of each file to read, 0..1")
	fs.IntVar(&cfg.Concurrency, "j", defaultConcurrency, "files inspected in parallel (json)")
	fs.StringVar(&cfg.CachePath, "cache", "", "SQLite report cache (json)")
	fs.DurationVar(&cfg.CacheMaxAge, "cache-max-age", 0, "drop cached reports older than this on open, 0 keeps all")
	fs.BoolVar(&cfg.Verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Options = options
	// Left nil without arguments: required_unless only rejects nil slices.
	if fs.NArg() > 0 {
		cfg.Files = fs.Args()
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return cfg, nil
}

// libOptions splits the -option values into name/value pairs.
func (c *config) libOptions() [][2]string {
	pairs := make([][2]string, 0, len(c.Options))
	for _, o := range c.Options {
		name, value, _ := strings.Cut(o, "=")
		pairs = append(pairs, [2]string{name, value})
	}
	return pairs
}
