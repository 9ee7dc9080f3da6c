// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package inspector

import (
	"go/ast"
	"go/token"
	"strings"
)

// prefix marks a bindgen directive comment.
const prefix = "//bind:"

// directive is one parsed "//bind:NAME args..." comment line.
//
// Positional arguments are comma-split, so "//bind:notify A,B" and the
// pair "//bind:notify A" + "//bind:notify B" carry the same targets.
// key=value tokens become options; a bare key is a boolean flag.
type directive struct {
	name string
	args []string
	opts map[string]string
	pos  token.Position
}

// has reports whether a flag or option is present.
func (d directive) has(key string) bool {
	_, ok := d.opts[key]
	return ok
}

// opt returns an option value with a default.
func (d directive) opt(key, def string) string {
	if v, ok := d.opts[key]; ok && v != "" {
		return v
	}
	return def
}

// parseDirectives extracts bind directives from a doc comment, in
// declaration order. Non-directive comment lines are ignored.
func parseDirectives(fset *token.FileSet, doc *ast.CommentGroup) []directive {
	if doc == nil {
		return nil
	}
	var out []directive
	for _, c := range doc.List {
		text := c.Text
		if !strings.HasPrefix(text, prefix) {
			continue
		}
		rest := strings.TrimPrefix(text, prefix)
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		d := directive{
			name: fields[0],
			opts: make(map[string]string),
			pos:  fset.Position(c.Pos()),
		}
		for _, tok := range fields[1:] {
			if key, val, ok := strings.Cut(tok, "="); ok {
				d.opts[key] = val
				continue
			}
			// Known bare flags stay flags; everything else is a
			// positional argument.
			if isFlag(d.name, tok) {
				d.opts[tok] = ""
				continue
			}
			for _, a := range strings.Split(tok, ",") {
				if a != "" {
					d.args = append(d.args, a)
				}
			}
		}
		out = append(out, d)
	}
	return out
}

// isFlag reports whether a bare token is a flag for the directive
// rather than a positional argument.
func isFlag(directive, token string) bool {
	switch directive {
	case "viewmodel":
		return token == "constructor" || token == "factory" || token == "subscriber"
	case "property":
		return token == "readonly"
	case "command":
		return token == "safe"
	}
	return false
}
