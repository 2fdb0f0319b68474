// Command mediainfo prints technical information about media files using
// libmediainfo.
//
// Usage:
//
//	mediainfo movie.mkv
//	mediainfo -format json -cache ~/.cache/mediainfo.db *.mkv
//	mediainfo -format schema
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"runtime"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := parseArgs(os.Args[1:], os.Stderr, runtime.NumCPU())
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		logger.Error(err)
		os.Exit(2)
	}
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, os.Stdout, logger)
	stop()
	if err != nil {
		logger.WithError(err).Error("mediainfo failed")
		os.Exit(1)
	}
}
