package main

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"shelve/internal/category"
	"shelve/internal/config"
	"shelve/internal/logging"
	"shelve/internal/organizer"
	"shelve/internal/report"
	"shelve/internal/runlock"
)

type organizeOptions struct {
	dryRun    bool
	jsonOut   bool
	logLevel  string
	logFormat string
}

func runOrganize(cmd *cobra.Command, cctx *commandContext, dir string, opts *organizeOptions) error {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}

	target, err := config.ExpandPath(dir)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg, opts)
	if err != nil {
		return err
	}

	dryRun := opts.dryRun || cfg.Run.DryRun
	if cfg.Run.Lock && !dryRun {
		lock, err := runlock.Acquire(target)
		if err != nil {
			return err
		}
		defer func() {
			_ = lock.Release()
		}()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	org := organizer.New(category.Default(), logger)
	var rep *report.Report
	if dryRun {
		rep, err = org.Preview(ctx, target)
	} else {
		rep, err = org.Organize(ctx, target)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.jsonOut {
		if jsonErr := writeJSON(cmd, rep); jsonErr != nil {
			return jsonErr
		}
	} else {
		writeSummary(out, rep)
	}
	// An interrupted run still prints the partial summary but exits non-zero.
	return err
}

func buildLogger(cfg *config.Config, opts *organizeOptions) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	format := cfg.Logging.Format
	if opts.logFormat != "" {
		format = opts.logFormat
	}

	// JSON report mode keeps stdout clean for the report itself.
	outputs := []string{"stdout"}
	if opts.jsonOut {
		outputs = []string{"stderr"}
	}
	if cfg.Logging.LogDir != "" {
		outputs = append(outputs, filepath.Join(cfg.Logging.LogDir, "shelve.log"))
	}

	return logging.New(logging.Options{Level: level, Format: format, OutputPaths: outputs})
}
