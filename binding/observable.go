// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package binding is the runtime surface generated code conforms to:
// an observable base type with change notification, command wrappers
// in four shape variants plus "safe" (error-routing) variants, and an
// event aggregator.
package binding

import (
	"sync"

	"go.uber.org/zap"
)

// PropertyChangedHandler observes property change notifications.
type PropertyChangedHandler func(property string)

// Observable is the embeddable base for generated view models. The
// zero value is ready to use.
type Observable struct {
	mu       sync.Mutex
	handlers map[int]PropertyChangedHandler
	nextID   int
	hook     func(property string)
	commands map[string]any

	aggregator *Aggregator
	logger     *zap.Logger
	errors     ErrorHandler
}

// SubscribePropertyChanged registers a change handler and returns its
// unsubscribe function.
func (o *Observable) SubscribePropertyChanged(h PropertyChangedHandler) (unsubscribe func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.handlers == nil {
		o.handlers = make(map[int]PropertyChangedHandler)
	}
	id := o.nextID
	o.nextID++
	o.handlers[id] = h
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.handlers, id)
	}
}

// SetPropertyChangedHook installs the hook invoked after every raise,
// before subscribed handlers. It is the override point a derived type
// would use.
func (o *Observable) SetPropertyChangedHook(fn func(property string)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.hook = fn
}

// RaisePropertyChanged notifies the hook and all subscribed handlers
// that the named property changed.
func (o *Observable) RaisePropertyChanged(property string) {
	o.mu.Lock()
	hook := o.hook
	handlers := make([]PropertyChangedHandler, 0, len(o.handlers))
	for _, h := range o.handlers {
		handlers = append(handlers, h)
	}
	o.mu.Unlock()

	if hook != nil {
		hook(property)
	}
	for _, h := range handlers {
		h(property)
	}
}

// invalidatable is satisfied by every command shape.
type invalidatable interface {
	RaiseCanExecuteChanged()
}

// Lazy memoizes a command under its generated property name so that
// repeated accessor calls observe one identity-stable instance.
// Generated code routes every command accessor through here; the view
// model struct itself carries no generated fields.
//
// build runs outside the lock: generated build closures call back
// into the observable (SafetyLogger, SafetyHandler). Concurrent first
// accesses may build twice; the first insert wins and stays the
// single identity.
func Lazy[C invalidatable](o *Observable, name string, build func() C) C {
	o.mu.Lock()
	if c, ok := o.commands[name]; ok {
		o.mu.Unlock()
		return c.(C)
	}
	o.mu.Unlock()

	c := build()

	o.mu.Lock()
	defer o.mu.Unlock()
	if existing, ok := o.commands[name]; ok {
		return existing.(C)
	}
	if o.commands == nil {
		o.commands = make(map[string]any)
	}
	o.commands[name] = c
	return c
}

// InvalidateCommand raises can-execute change notification for the
// named command, if it has been materialized.
func (o *Observable) InvalidateCommand(name string) {
	o.mu.Lock()
	c, ok := o.commands[name]
	o.mu.Unlock()
	if !ok {
		return
	}
	c.(invalidatable).RaiseCanExecuteChanged()
}

// BindSafety wires the logging sink and error handler used by safe
// commands. Generated constructors call this when the class declares
// safe commands.
func (o *Observable) BindSafety(logger *zap.Logger, handler ErrorHandler) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.logger = logger
	o.errors = handler
}

// SafetyLogger returns the bound logger, or a no-op logger when
// safety was never wired.
func (o *Observable) SafetyLogger() *zap.Logger {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// SafetyHandler returns the bound error handler, or a no-op handler.
func (o *Observable) SafetyHandler() ErrorHandler {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.errors == nil {
		return NopHandler{}
	}
	return o.errors
}

// AttachAggregator connects the observable to an event aggregator.
// Publish is a no-op until an aggregator is attached.
func (o *Observable) AttachAggregator(a *Aggregator) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.aggregator = a
}

// Publish forwards an event value to the attached aggregator.
func (o *Observable) Publish(event any) {
	o.mu.Lock()
	a := o.aggregator
	o.mu.Unlock()
	if a != nil {
		a.Publish(event)
	}
}
