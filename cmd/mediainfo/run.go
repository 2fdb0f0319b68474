package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/sirupsen/logrus"

	"github.com/thesyncim/mediainfo"
	"github.com/thesyncim/mediainfo/internal/cache"
)

func run(ctx context.Context, cfg *config, out io.Writer, logger *logrus.Logger) error {
	mediainfo.SetLogger(logger)

	switch cfg.Format {
	case "schema":
		return writeSchema(out)
	case "json":
		return writeJSON(ctx, cfg, out, logger)
	default:
		return writeText(cfg, out, logger)
	}
}

func writeSchema(out io.Writer) error {
	reflector := jsonschema.Reflector{ExpandedStruct: true}
	schema := reflector.Reflect(&mediainfo.Info{})

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(schema)
}

func load(logger *logrus.Logger) error {
	if err := mediainfo.Load(); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"version": mediainfo.Version(),
		"binding": mediainfo.Binding(),
	}).Debug("libmediainfo ready")
	return nil
}

func informOptions(cfg *config) []mediainfo.Option {
	var opts []mediainfo.Option
	if cfg.ParseSpeed >= 0 {
		opts = append(opts, mediainfo.WithParseSpeed(cfg.ParseSpeed))
	}
	for _, kv := range cfg.libOptions() {
		opts = append(opts, mediainfo.WithOption(kv[0], kv[1]))
	}
	return append(opts, mediainfo.WithConcurrency(cfg.Concurrency))
}

// writeText prints the library's own report for every file.
func writeText(cfg *config, out io.Writer, logger *logrus.Logger) error {
	if err := load(logger); err != nil {
		return err
	}

	return mediainfo.WithHandle(func(h *mediainfo.Handle) error {
		if cfg.ParseSpeed >= 0 {
			h.Option("ParseSpeed", formatParseSpeed(cfg.ParseSpeed))
		}
		for _, kv := range cfg.libOptions() {
			h.Option(kv[0], kv[1])
		}

		for i, path := range cfg.Files {
			if err := h.Open(path); err != nil {
				return err
			}
			text := h.Inform()
			h.Close()

			if i > 0 {
				fmt.Fprintln(out)
			}
			if _, err := io.WriteString(out, text); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSON prints the structured reports as a JSON array, serving unchanged
// files from the cache when one is configured.
func writeJSON(ctx context.Context, cfg *config, out io.Writer, logger *logrus.Logger) error {
	infos := make([]mediainfo.Info, len(cfg.Files))
	keys := make([]cache.Key, len(cfg.Files))

	var store *cache.Store
	if cfg.CachePath != "" {
		var err error
		store, err = openCache(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	var missing []int
	for i, path := range cfg.Files {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		st, err := os.Stat(abs)
		if err != nil {
			return err
		}
		keys[i] = cache.Key{Path: abs, Size: st.Size(), ModTime: st.ModTime()}

		if store != nil {
			data, ok, err := store.Get(ctx, keys[i])
			if err != nil {
				return err
			}
			if ok && json.Unmarshal(data, &infos[i]) == nil {
				logger.WithField("path", abs).Debug("cache hit")
				continue
			}
		}
		missing = append(missing, i)
	}

	if len(missing) > 0 {
		if err := load(logger); err != nil {
			return err
		}

		paths := make([]string, len(missing))
		for j, i := range missing {
			paths[j] = keys[i].Path
		}
		parsed, err := mediainfo.InformMany(ctx, paths, informOptions(cfg)...)
		if err != nil {
			return err
		}

		for j, i := range missing {
			infos[i] = parsed[j]
			if store == nil {
				continue
			}
			data, err := json.Marshal(parsed[j])
			if err != nil {
				return err
			}
			if err := store.Put(ctx, keys[i], data); err != nil {
				logger.WithError(err).WithField("path", keys[i].Path).Warn("cache write failed")
			}
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}

// formatParseSpeed renders the -parse-speed value the way WithParseSpeed
// does, never in exponent form.
func formatParseSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'f', -1, 64)
}

// openCache opens the report cache and drops entries older than
// -cache-max-age.
func openCache(ctx context.Context, cfg *config, logger *logrus.Logger) (*cache.Store, error) {
	store, err := cache.Open(ctx, cfg.CachePath)
	if err != nil {
		return nil, err
	}

	if cfg.CacheMaxAge > 0 {
		n, err := store.Prune(ctx, time.Now().Add(-cfg.CacheMaxAge))
		if err != nil {
			store.Close()
			return nil, err
		}
		logger.WithField("removed", n).Debug("cache pruned")
	}

	if n, err := store.Len(ctx); err == nil {
		logger.WithFields(logrus.Fields{"path": cfg.CachePath, "entries": n}).Debug("cache opened")
	}
	return store, nil
}
