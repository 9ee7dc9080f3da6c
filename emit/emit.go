// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package emit provides the indentation-tracking text writer shared by
// all feature generators.
//
// The writer has no decision logic: it mirrors balanced scope
// structure. The indentation counter is the only state generators
// share, so open/close must stay symmetric and the level never goes
// negative.
package emit

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer accumulates generated source text with tab indentation.
type Writer struct {
	buf    bytes.Buffer
	indent int
}

// NewWriter returns an empty writer at indentation level zero.
func NewWriter() *Writer {
	return &Writer{}
}

// Raw appends text without indentation or a line terminator.
func (w *Writer) Raw(s string) {
	w.buf.WriteString(s)
}

// Line appends an indented line. An empty string yields a bare
// newline with no indentation.
func (w *Writer) Line(s string) {
	if s != "" {
		w.buf.WriteString(strings.Repeat("\t", w.indent))
		w.buf.WriteString(s)
	}
	w.buf.WriteByte('\n')
}

// Linef appends a formatted indented line.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// Blank appends the blank separator line used between generated
// members.
func (w *Writer) Blank() {
	w.buf.WriteByte('\n')
}

// OpenScope appends "header {" and increases the indent.
func (w *Writer) OpenScope(header string) {
	w.Line(header + " {")
	w.indent++
}

// CloseScope decreases the indent and appends the closing brace.
func (w *Writer) CloseScope() {
	w.Outdent()
	w.Line("}")
}

// Indent increases the indentation level.
func (w *Writer) Indent() {
	w.indent++
}

// Outdent decreases the indentation level and reports whether the
// writer was already at the outermost level (zero or one) when
// invoked. The level never goes negative.
func (w *Writer) Outdent() bool {
	if w.indent <= 1 {
		w.indent = 0
		return true
	}
	w.indent--
	return false
}

// Level returns the current indentation level.
func (w *Writer) Level() int {
	return w.indent
}

// Len returns the number of accumulated bytes.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// String returns the accumulated text.
func (w *Writer) String() string {
	return w.buf.String()
}

// Bytes returns the accumulated text as bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}
