// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package di provides the named provider container the generated
// registration tables target.
package di

import (
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
)

// Container maps registration names to provider values, typically
// constructor functions. Safe for concurrent use.
type Container struct {
	mu        sync.RWMutex
	providers map[string]any
}

// New returns an empty container.
func New() *Container {
	return &Container{providers: make(map[string]any)}
}

// Provide registers a provider under name. Registering the same name
// twice is an error.
func (c *Container) Provide(name string, provider any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.providers[name]; exists {
		return errors.Newf("di: %q already registered", name)
	}
	c.providers[name] = provider
	return nil
}

// MustProvide registers a provider and panics on duplicates. Intended
// for wiring done once at startup.
func (c *Container) MustProvide(name string, provider any) {
	if err := c.Provide(name, provider); err != nil {
		panic(err)
	}
}

// Resolve returns the provider registered under name.
func (c *Container) Resolve(name string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.providers[name]
	return p, ok
}

// Names returns all registration names, sorted.
func (c *Container) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.providers))
	for name := range c.providers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registrations.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.providers)
}

// Reset clears the container (for testing).
func (c *Container) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.providers = make(map[string]any)
}
