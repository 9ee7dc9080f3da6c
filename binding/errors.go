// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package binding

// ErrorHandler receives failures caught by safe commands. Safe
// commands never propagate errors past the wrapper; the handler is the
// single sink.
type ErrorHandler interface {
	Handle(err error)
}

// ErrorHandlerFunc adapts a function to ErrorHandler.
type ErrorHandlerFunc func(err error)

// Handle implements ErrorHandler.
func (f ErrorHandlerFunc) Handle(err error) {
	f(err)
}

// NopHandler discards every error.
type NopHandler struct{}

// Handle implements ErrorHandler.
func (NopHandler) Handle(error) {}
