// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package watch triggers regeneration when source files change.
package watch

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Debounce is the quiet period after the last relevant event before
// the callback fires.
const Debounce = 250 * time.Millisecond

// Run watches dirs and invokes fn after each debounced burst of
// changes to non-generated .go files. Blocks until ctx is done.
func Run(ctx context.Context, logger *zap.Logger, dirs []string, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer w.Close()

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return errors.Wrapf(err, "watch %s", dir)
		}
		logger.Debug("watching", zap.String("dir", dir))
	}

	timer := time.NewTimer(Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			logger.Debug("source changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(Debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))

		case <-timer.C:
			fn()
		}
	}
}

// relevant reports whether an event should trigger regeneration.
// Generated files are excluded to avoid feedback loops.
func relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
		return false
	}
	name := ev.Name
	return strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, ".gen.go")
}
