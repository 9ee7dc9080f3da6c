// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvideAndResolve(t *testing.T) {
	c := New()

	ctor := func() string { return "user store" }
	require.NoError(t, c.Provide("UserService", ctor))

	got, ok := c.Resolve("UserService")
	require.True(t, ok)
	assert.Equal(t, "user store", got.(func() string)())

	_, ok = c.Resolve("Missing")
	assert.False(t, ok)
}

func TestProvideDuplicate(t *testing.T) {
	c := New()
	require.NoError(t, c.Provide("UserService", 1))
	err := c.Provide("UserService", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	// The original registration survives.
	got, _ := c.Resolve("UserService")
	assert.Equal(t, 1, got)
}

func TestMustProvidePanicsOnDuplicate(t *testing.T) {
	c := New()
	c.MustProvide("Clock", 1)
	assert.Panics(t, func() { c.MustProvide("Clock", 2) })
}

func TestNamesSorted(t *testing.T) {
	c := New()
	c.MustProvide("Zeta", 1)
	c.MustProvide("Alpha", 2)
	c.MustProvide("Mid", 3)
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, c.Names())
	assert.Equal(t, 3, c.Len())
}

func TestReset(t *testing.T) {
	c := New()
	c.MustProvide("UserService", 1)
	c.Reset()
	assert.Equal(t, 0, c.Len())
	require.NoError(t, c.Provide("UserService", 2))
}
