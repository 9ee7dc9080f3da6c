// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"go/format"

	"github.com/cockroachdb/errors"

	"github.com/castlebridge/bindgen/emit"
	"github.com/castlebridge/bindgen/model"
)

// generateViewModelTable renders the registration table mapping every
// generated view model to its constructor.
func (g *Generator) generateViewModelTable() ([]byte, error) {
	w := emit.NewWriter()
	g.fileHeader(w)
	w.Linef("package %s", g.cfg.PackageName)
	w.Blank()
	w.Linef("import %q", g.cfg.DIImport)

	w.Blank()
	w.Line("// RegisterViewModels registers every generated view-model")
	w.Line("// constructor with the container.")
	w.OpenScope("func RegisterViewModels(c *di.Container) error")
	for _, class := range g.pkg.Classes {
		if !class.Constructor {
			continue
		}
		w.OpenScope(fmt.Sprintf("if err := c.Provide(%q, New%s); err != nil", class.Name, class.Name))
		w.Line("return err")
		w.CloseScope()
	}
	w.Line("return nil")
	w.CloseScope()

	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "format view-model table")
	}
	return src, nil
}

// generateServiceTable renders the dependency registration table. For
// every distinct dependency type required across all classes, the
// single service whose contract list contains that type is
// registered. Zero or multiple candidates are skipped silently:
// registration is an optional convenience, not a correctness
// requirement.
func (g *Generator) generateServiceTable() ([]byte, error) {
	w := emit.NewWriter()
	g.fileHeader(w)
	w.Linef("package %s", g.cfg.PackageName)
	w.Blank()
	w.Linef("import %q", g.cfg.DIImport)

	w.Blank()
	w.Line("// RegisterServices registers the unambiguous implementation for")
	w.Line("// each dependency contract required by the view models.")
	w.OpenScope("func RegisterServices(c *di.Container) error")
	for _, contract := range g.requiredContracts() {
		svc := g.singleCandidate(contract)
		if svc == nil {
			continue
		}
		w.OpenScope(fmt.Sprintf("if err := c.Provide(%q, %s); err != nil", contract, svc.Constructor))
		w.Line("return err")
		w.CloseScope()
	}
	w.Line("return nil")
	w.CloseScope()

	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "format service table")
	}
	return src, nil
}

// requiredContracts returns the distinct injected dependency types
// across all classes, in first-seen order.
func (g *Generator) requiredContracts() []string {
	seen := make(map[string]bool)
	var out []string
	for _, class := range g.pkg.Classes {
		for _, inj := range class.Injections {
			if seen[inj.Type] {
				continue
			}
			seen[inj.Type] = true
			out = append(out, inj.Type)
		}
	}
	return out
}

// singleCandidate returns the one service providing the contract, or
// nil when the match is absent or ambiguous.
func (g *Generator) singleCandidate(contract string) *model.Service {
	var found *model.Service
	for _, svc := range g.pkg.Services {
		if !svc.ProvidesContract(contract) {
			continue
		}
		if found != nil {
			return nil
		}
		found = svc
	}
	return found
}
