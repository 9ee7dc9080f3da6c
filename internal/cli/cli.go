// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package cli defines the bindgen command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/castlebridge/bindgen/codegen"
	"github.com/castlebridge/bindgen/inspector"
	"github.com/castlebridge/bindgen/internal/load"
	"github.com/castlebridge/bindgen/internal/watch"
)

// CLI is the root command structure parsed by kong.
type CLI struct {
	Log struct {
		Level string `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	} `embed:"" prefix:"log."`
	Config string `help:"Path to a configuration file" type:"path"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate binding files for the matched packages"`
	Watch    WatchCmd    `cmd:"" help:"Regenerate whenever source files change"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// BuildInfo carries link-time version metadata from the main package.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// GenerateCmd runs a single generation pass.
type GenerateCmd struct {
	Patterns []string `arg:"" optional:"" help:"Package patterns to scan (default ./...)"`
	Dir      string   `help:"Working directory for pattern resolution"`
	Package  string   `help:"Override the package name of generated files"`
	Source   string   `help:"Source description recorded in generated headers"`
	DryRun   bool     `help:"Print generated files to stdout without writing"`
	Tables   bool     `negatable:"" default:"true" help:"Emit the registration-table files"`
}

// Run is called by kong when the generate command is executed.
func (c *GenerateCmd) Run(logger *zap.Logger) error {
	_, err := c.generate(context.Background(), logger)
	return err
}

// generate performs one full load-inspect-render-write pass and
// returns the directories that held annotated packages, for the watch
// command to monitor.
func (c *GenerateCmd) generate(ctx context.Context, logger *zap.Logger) ([]string, error) {
	pkgs, err := load.Load(ctx, load.Options{Dir: c.Dir, Patterns: c.Patterns})
	if err != nil {
		return nil, err
	}

	var dirs []string
	failed := 0
	for _, pkg := range pkgs {
		desc, diags := inspector.Inspect(pkg.Fset, pkg.Name, pkg.Files)
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		if inspector.HasErrors(diags) {
			failed++
			continue
		}
		if len(desc.Classes) == 0 && len(desc.Services) == 0 {
			continue
		}
		dirs = append(dirs, pkg.Dir)

		cfg := codegen.DefaultConfig()
		cfg.Tables = c.Tables
		cfg.Source = c.Source
		if c.Package != "" {
			cfg.PackageName = c.Package
		}
		out, err := codegen.New(desc, cfg).Generate()
		if err != nil {
			return nil, err
		}

		files := make([]string, 0, len(out.Files))
		for name := range out.Files {
			files = append(files, name)
		}
		slices.Sort(files)
		for _, name := range files {
			if c.DryRun {
				fmt.Printf("// --- %s ---\n%s", name, out.Files[name])
				continue
			}
			path := filepath.Join(pkg.Dir, name)
			if err := os.WriteFile(path, out.Files[name], 0o644); err != nil {
				return nil, errors.Wrapf(err, "write %s", path)
			}
			logger.Info("wrote binding file", zap.String("file", path))
		}
	}

	if failed > 0 {
		return dirs, errors.Newf("%d package(s) had binding errors", failed)
	}
	return dirs, nil
}

// WatchCmd regenerates continuously as source files change.
type WatchCmd struct {
	GenerateCmd `embed:""`
}

// Run is called by kong when the watch command is executed.
func (c *WatchCmd) Run(logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dirs, err := c.generate(ctx, logger)
	if err != nil {
		// Keep watching: the next edit may fix the problem.
		logger.Warn("initial generation failed", zap.Error(err))
	}
	if len(dirs) == 0 {
		return errors.New("no annotated packages matched the patterns")
	}

	err = watch.Run(ctx, logger, dirs, func() {
		if _, err := c.generate(ctx, logger); err != nil {
			logger.Warn("regeneration failed", zap.Error(err))
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// VersionCmd prints build metadata.
type VersionCmd struct{}

// Run is called by kong when the version command is executed.
func (VersionCmd) Run(info BuildInfo) error {
	fmt.Printf("bindgen %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)
	return nil
}

// NewLogger builds the process logger at the requested level.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", level)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}
