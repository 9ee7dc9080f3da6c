// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package binding

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Safe command variants catch failures inside the wrapper: the error
// (or panic) is logged once, handed to the error handler once, and
// never propagated to the caller. Non-safe variants propagate
// unmodified; that distinction is the contract this family exists to
// provide. The name is the generated command property name, used as
// the structured logging label.

// NewSafeCommand wraps a parameterless synchronous callback in error
// handling.
func NewSafeCommand(name string, logger *zap.Logger, handler ErrorHandler, execute func(), canExecute func() bool) *Command {
	return NewCommand(func() {
		defer rescue(name, logger, handler)
		logger.Debug("command executing", zap.String("command", name))
		execute()
		logger.Debug("command completed", zap.String("command", name))
	}, canExecute)
}

// NewSafeTypedCommand wraps a parameterized synchronous callback in
// error handling.
func NewSafeTypedCommand[T any](name string, logger *zap.Logger, handler ErrorHandler, execute func(T), canExecute func(T) bool) *TypedCommand[T] {
	return NewTypedCommand(func(value T) {
		defer rescue(name, logger, handler)
		logger.Debug("command executing", zap.String("command", name))
		execute(value)
		logger.Debug("command completed", zap.String("command", name))
	}, canExecute)
}

// NewSafeAsyncCommand wraps a parameterless awaitable callback in
// error handling. The returned command's Execute never reports an
// error.
func NewSafeAsyncCommand(name string, logger *zap.Logger, handler ErrorHandler, execute func(context.Context) error, canExecute func() bool) *AsyncCommand {
	return NewAsyncCommand(func(ctx context.Context) error {
		defer rescue(name, logger, handler)
		logger.Debug("command executing", zap.String("command", name))
		if err := execute(ctx); err != nil {
			deliver(name, logger, handler, err)
			return nil
		}
		logger.Debug("command completed", zap.String("command", name))
		return nil
	}, canExecute)
}

// NewSafeTypedAsyncCommand wraps a parameterized awaitable callback
// in error handling.
func NewSafeTypedAsyncCommand[T any](name string, logger *zap.Logger, handler ErrorHandler, execute func(context.Context, T) error, canExecute func(T) bool) *TypedAsyncCommand[T] {
	return NewTypedAsyncCommand(func(ctx context.Context, value T) error {
		defer rescue(name, logger, handler)
		logger.Debug("command executing", zap.String("command", name))
		if err := execute(ctx, value); err != nil {
			deliver(name, logger, handler, err)
			return nil
		}
		logger.Debug("command completed", zap.String("command", name))
		return nil
	}, canExecute)
}

// rescue converts a panic inside a safe callback into a handled
// error. Must be invoked as the deferred function itself so recover
// applies.
func rescue(name string, logger *zap.Logger, handler ErrorHandler) {
	r := recover()
	if r == nil {
		return
	}
	deliver(name, logger, handler, errors.Newf("command %s panicked: %v", name, r))
}

func deliver(name string, logger *zap.Logger, handler ErrorHandler, err error) {
	logger.Error("command failed", zap.String("command", name), zap.Error(err))
	handler.Handle(err)
}
