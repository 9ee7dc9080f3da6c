// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package binding

import "sync"

// changeNotifier is the shared can-execute notification machinery
// embedded by every command shape.
type changeNotifier struct {
	mu       sync.Mutex
	handlers map[int]func()
	nextID   int
}

// OnCanExecuteChanged registers a handler invoked whenever the
// command's executability may have changed. Returns an unsubscribe
// function.
func (n *changeNotifier) OnCanExecuteChanged(h func()) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.handlers == nil {
		n.handlers = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.handlers[id] = h
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.handlers, id)
	}
}

// RaiseCanExecuteChanged notifies all registered handlers.
func (n *changeNotifier) RaiseCanExecuteChanged() {
	n.mu.Lock()
	handlers := make([]func(), 0, len(n.handlers))
	for _, h := range n.handlers {
		handlers = append(handlers, h)
	}
	n.mu.Unlock()
	for _, h := range handlers {
		h()
	}
}

// Command is the plain synchronous, parameterless command shape.
type Command struct {
	changeNotifier
	execute    func()
	canExecute func() bool
}

// NewCommand wraps a callback and an optional guard. A nil guard
// means always executable.
func NewCommand(execute func(), canExecute func() bool) *Command {
	return &Command{execute: execute, canExecute: canExecute}
}

// CanExecute reports whether the command may execute.
func (c *Command) CanExecute() bool {
	return c.canExecute == nil || c.canExecute()
}

// Execute invokes the wrapped callback.
func (c *Command) Execute() {
	c.execute()
}

// TypedCommand is the synchronous command shape carrying one
// parameter.
type TypedCommand[T any] struct {
	changeNotifier
	execute    func(T)
	canExecute func(T) bool
}

// NewTypedCommand wraps a parameterized callback and an optional
// guard.
func NewTypedCommand[T any](execute func(T), canExecute func(T) bool) *TypedCommand[T] {
	return &TypedCommand[T]{execute: execute, canExecute: canExecute}
}

// CanExecute reports whether the command may execute with value.
func (c *TypedCommand[T]) CanExecute(value T) bool {
	return c.canExecute == nil || c.canExecute(value)
}

// Execute invokes the wrapped callback with value.
func (c *TypedCommand[T]) Execute(value T) {
	c.execute(value)
}
