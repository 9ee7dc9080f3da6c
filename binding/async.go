// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package binding

import (
	"context"
	"sync/atomic"
)

// AsyncCommand is the awaitable, parameterless command shape. The
// callback receives the caller's context for cancellation; while it
// runs the command reports not-executable and raises can-execute
// change notification around the run.
type AsyncCommand struct {
	changeNotifier
	execute    func(context.Context) error
	canExecute func() bool
	running    atomic.Bool
}

// NewAsyncCommand wraps an awaitable callback and an optional guard.
func NewAsyncCommand(execute func(context.Context) error, canExecute func() bool) *AsyncCommand {
	return &AsyncCommand{execute: execute, canExecute: canExecute}
}

// Running reports whether an execution is in flight.
func (c *AsyncCommand) Running() bool {
	return c.running.Load()
}

// CanExecute reports whether the command may execute. A running
// command is never executable.
func (c *AsyncCommand) CanExecute() bool {
	if c.running.Load() {
		return false
	}
	return c.canExecute == nil || c.canExecute()
}

// Execute runs the wrapped callback with ctx.
func (c *AsyncCommand) Execute(ctx context.Context) error {
	c.running.Store(true)
	c.RaiseCanExecuteChanged()
	defer func() {
		c.running.Store(false)
		c.RaiseCanExecuteChanged()
	}()
	return c.execute(ctx)
}

// TypedAsyncCommand is the awaitable command shape carrying one
// parameter.
type TypedAsyncCommand[T any] struct {
	changeNotifier
	execute    func(context.Context, T) error
	canExecute func(T) bool
	running    atomic.Bool
}

// NewTypedAsyncCommand wraps an awaitable parameterized callback and
// an optional guard.
func NewTypedAsyncCommand[T any](execute func(context.Context, T) error, canExecute func(T) bool) *TypedAsyncCommand[T] {
	return &TypedAsyncCommand[T]{execute: execute, canExecute: canExecute}
}

// Running reports whether an execution is in flight.
func (c *TypedAsyncCommand[T]) Running() bool {
	return c.running.Load()
}

// CanExecute reports whether the command may execute with value. A
// running command is never executable.
func (c *TypedAsyncCommand[T]) CanExecute(value T) bool {
	if c.running.Load() {
		return false
	}
	return c.canExecute == nil || c.canExecute(value)
}

// Execute runs the wrapped callback with ctx and value.
func (c *TypedAsyncCommand[T]) Execute(ctx context.Context, value T) error {
	c.running.Store(true)
	c.RaiseCanExecuteChanged()
	defer func() {
		c.running.Store(false)
		c.RaiseCanExecuteChanged()
	}()
	return c.execute(ctx, value)
}
