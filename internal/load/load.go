// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package load resolves package patterns to parsed syntax for
// inspection.
package load

import (
	"context"
	"go/ast"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/packages"
)

// Options configures package loading.
type Options struct {
	// Dir is the working directory for pattern resolution.
	Dir string

	// Patterns are go/packages patterns (e.g. "./..."). Defaults to
	// "./..." when empty.
	Patterns []string
}

// Package is one loaded package ready for inspection.
type Package struct {
	// Name is the Go package name.
	Name string

	// Dir is the directory generated files are written into.
	Dir string

	// Fset owns the positions of Files.
	Fset *token.FileSet

	// Files holds the parsed syntax, with previously generated files
	// filtered out so regeneration stays idempotent.
	Files []*ast.File
}

// Load resolves patterns and parses the matched packages.
func Load(ctx context.Context, opts Options) ([]*Package, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:     opts.Dir,
		Fset:    fset,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "load packages")
	}

	var out []*Package
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, errors.Newf("package %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		if strings.HasSuffix(pkg.ID, ".test") {
			continue
		}

		p := &Package{Name: pkg.Name, Fset: fset}
		for _, file := range pkg.Syntax {
			name := fset.Position(file.Pos()).Filename
			if p.Dir == "" {
				p.Dir = filepath.Dir(name)
			}
			// Skip our own output; inspecting it would not add
			// descriptors but would defeat idempotence checks.
			if strings.HasSuffix(name, ".gen.go") {
				continue
			}
			p.Files = append(p.Files, file)
		}
		if len(p.Files) > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}
