// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package binding

import "sync"

// Aggregator is a minimal synchronous event bus. View models marked
// as subscribers attach to it on construction; generated publish side
// effects route through it.
type Aggregator struct {
	mu       sync.Mutex
	handlers map[int]func(event any)
	nextID   int
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{handlers: make(map[int]func(any))}
}

// Subscribe registers a handler for every published event and returns
// its unsubscribe function.
func (a *Aggregator) Subscribe(h func(event any)) (unsubscribe func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := a.nextID
	a.nextID++
	a.handlers[id] = h
	return func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		delete(a.handlers, id)
	}
}

// Publish delivers event to all subscribed handlers synchronously.
func (a *Aggregator) Publish(event any) {
	a.mu.Lock()
	handlers := make([]func(any), 0, len(a.handlers))
	for _, h := range a.handlers {
		handlers = append(handlers, h)
	}
	a.mu.Unlock()
	for _, h := range handlers {
		h(event)
	}
}
