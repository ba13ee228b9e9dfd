// Command slpcheck validates Slippi replay files: envelope structure, event
// decoding, value ranges, and per-frame event ordering.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/danmuck/slpcheck/internal/config"
	"github.com/danmuck/slpcheck/internal/logging"
	"github.com/danmuck/slpcheck/internal/report"
	"github.com/danmuck/slpcheck/internal/slp"
)

func main() {
	var (
		configPath string
		reportPath string
		workers    int
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "", "TOML config file")
	flag.StringVar(&reportPath, "report", "", "sqlite database for batch results")
	flag.IntVar(&workers, "workers", 0, "concurrent validations for directory runs")
	flag.StringVar(&logLevel, "log-level", "", "trace, debug, info, warn, error, or disabled")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: slpcheck [flags] <replay.slp | directory>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slpcheck: %v\n", err)
		os.Exit(2)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if reportPath != "" {
		cfg.Report = reportPath
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	logger := logging.Init("slpcheck", cfg.Logging)
	if err := run(flag.Arg(0), cfg, logger); err != nil {
		logger.Error().Err(err).Msg("validation failed")
		os.Exit(1)
	}
}

func run(path string, cfg config.Config, logger zerolog.Logger) error {
	ctx := context.Background()

	var rep *report.Writer
	if cfg.Report != "" {
		var err error
		rep, err = report.Open(cfg.Report)
		if err != nil {
			return err
		}
		defer rep.Close()
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return runDir(ctx, path, cfg.Workers, logger, rep)
	}
	if !validateOne(ctx, path, logger, rep) {
		return fmt.Errorf("%s failed validation", path)
	}
	return nil
}

// runDir validates every .slp file directly under dir, at most workers at a
// time. All files are checked even when early ones fail.
func runDir(ctx context.Context, dir string, workers int, logger zerolog.Logger, rep *report.Writer) error {
	paths, err := replayPaths(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .slp files in %s", dir)
	}

	var failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(workers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if !validateOne(ctx, path, logger, rep) {
				failed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	logger.Info().Int("files", len(paths)).Int64("failed", failed.Load()).
		Msg("batch complete")
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d replays failed validation", n, len(paths))
	}
	return nil
}

// replayPaths lists the .slp files directly under dir, sorted by name.
func replayPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read replay directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".slp") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// validateOne checks a single replay, records the outcome, and reports
// whether the file passed.
func validateOne(ctx context.Context, path string, logger zerolog.Logger, rep *report.Writer) bool {
	flog := logger.With().Str("file", filepath.Base(path)).Logger()
	flog.Info().Msg("validating replay")

	res, err := slp.ValidateFile(path, flog)
	entry := report.Entry{
		Path:           path,
		Errors:         res.Errors,
		Warnings:       res.Warnings,
		ExpectedFrames: res.Expected,
		ObservedFrames: res.Observed,
		RolledBack:     res.RolledBack,
	}
	if res.Version != (slp.Version{}) {
		entry.Version = res.Version.String()
	}

	switch {
	case err != nil:
		entry.Fatal = err.Error()
		flog.Error().Err(err).Msg("replay is structurally broken")
	case res.Errors > 0:
		flog.Error().Int("errors", res.Errors).Int("warnings", res.Warnings).
			Msg("replay failed validation")
	default:
		entry.OK = true
		flog.Info().Int("warnings", res.Warnings).Msg("replay passed validation")
	}

	if rep != nil {
		if rerr := rep.Record(ctx, entry); rerr != nil {
			flog.Warn().Err(rerr).Msg("report write failed")
		}
	}
	return entry.OK
}
