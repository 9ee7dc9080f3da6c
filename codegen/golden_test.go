// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/castlebridge/bindgen/inspector"
	"github.com/castlebridge/bindgen/internal/testutil"
)

// generateFromSource runs the full inspect-and-render pipeline over
// one annotated source file, the way the golden archives exercise it.
func generateFromSource(input []byte, opts []string) (map[string][]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "input.go", input, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	pkg, diags := inspector.Inspect(fset, file.Name.Name, []*ast.File{file})
	if inspector.HasErrors(diags) {
		return nil, fmt.Errorf("diagnostics: %v", diags)
	}

	cfg := DefaultConfig()
	for _, o := range opts {
		if o == "no-tables" {
			cfg.Tables = false
		}
	}
	out, err := New(pkg, cfg).Generate()
	if err != nil {
		return nil, err
	}
	return out.Files, nil
}

func TestGolden(t *testing.T) {
	for _, tc := range testutil.LoadTestCases(t, "testdata") {
		t.Run(tc.Name, func(t *testing.T) {
			tc.Run(t, generateFromSource)
		})
	}
}
