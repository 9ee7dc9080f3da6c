// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package codegen renders binding descriptors into Go source files.
//
// One file is generated per annotated class, plus two package-level
// registration tables. Within a class file the member order is fixed:
// constructor, command properties, plain properties, wrapped-model
// property, injection properties, invalidation-support method,
// factory. Later fragments reference names earlier fragments declare,
// so the order is a contract.
package codegen

import (
	"go/format"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/castlebridge/bindgen/emit"
	"github.com/castlebridge/bindgen/internal/names"
	"github.com/castlebridge/bindgen/model"
)

// Logical file names for the cross-cutting registration tables.
const (
	ViewModelTableFile = "bindgen_viewmodels.gen.go"
	ServiceTableFile   = "bindgen_services.gen.go"
)

// Config controls code generation behavior.
type Config struct {
	// PackageName overrides the package name of generated files.
	// Defaults to the inspected package's name.
	PackageName string

	// Source describes where the input came from (for the header
	// comment).
	Source string

	// Tables enables the two registration-table files. Default: true
	// via DefaultConfig.
	Tables bool

	// BindingImport is the import path of the runtime package.
	BindingImport string

	// DIImport is the import path of the container package.
	DIImport string
}

// DefaultConfig returns sensible defaults for code generation.
func DefaultConfig() Config {
	return Config{
		Tables:        true,
		BindingImport: "github.com/castlebridge/bindgen/binding",
		DIImport:      "github.com/castlebridge/bindgen/di",
	}
}

// Output contains generated files, keyed by file name.
type Output struct {
	Files map[string][]byte
}

// NewOutput creates an empty Output.
func NewOutput() *Output {
	return &Output{Files: make(map[string][]byte)}
}

// Add adds a file to the output.
func (o *Output) Add(name string, content []byte) {
	o.Files[name] = content
}

// Generator renders one inspected package.
type Generator struct {
	pkg *model.Package
	cfg Config
}

// New creates a Generator. Zero-valued config fields fall back to
// DefaultConfig values.
func New(pkg *model.Package, cfg Config) *Generator {
	def := DefaultConfig()
	if cfg.BindingImport == "" {
		cfg.BindingImport = def.BindingImport
	}
	if cfg.DIImport == "" {
		cfg.DIImport = def.DIImport
	}
	if cfg.PackageName == "" {
		cfg.PackageName = pkg.Name
	}
	return &Generator{pkg: pkg, cfg: cfg}
}

// Generate renders every class file and, when enabled, the two
// registration tables. Generation is deterministic: identical input
// yields byte-identical output.
func (g *Generator) Generate() (*Output, error) {
	out := NewOutput()

	for _, c := range g.pkg.Classes {
		src, err := g.generateClass(c)
		if err != nil {
			return nil, err
		}
		out.Add(names.BindingFileName(c.Name), src)
	}

	if g.cfg.Tables {
		vms, err := g.generateViewModelTable()
		if err != nil {
			return nil, err
		}
		out.Add(ViewModelTableFile, vms)

		svcs, err := g.generateServiceTable()
		if err != nil {
			return nil, err
		}
		out.Add(ServiceTableFile, svcs)
	}

	return out, nil
}

// generateClass renders one class file in the fixed member order.
func (g *Generator) generateClass(c *model.Class) ([]byte, error) {
	w := emit.NewWriter()

	g.fileHeader(w)
	w.Linef("package %s", g.cfg.PackageName)
	g.classImports(w, c)

	g.genConstructor(w, c)
	g.genCommands(w, c)
	g.genProperties(w, c)
	g.genWrappedModel(w, c)
	g.genInjections(w, c)
	g.genNotifySupport(w, c)
	g.genFactory(w, c)

	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "format generated code for %s", c.Name)
	}
	return src, nil
}

func (g *Generator) fileHeader(w *emit.Writer) {
	w.Line("// Code generated by bindgen. DO NOT EDIT.")
	if g.cfg.Source != "" {
		w.Linef("// Source: %s", g.cfg.Source)
	}
	w.Blank()
}

// classImports emits the import block a class file needs. Qualified
// descriptor types (property, parameter, wrapped-model and injection
// types) re-import the path their qualifier was bound to in the
// inspected source, so injecting e.g. *http.Client keeps the
// generated file compilable.
func (g *Generator) classImports(w *emit.Writer, c *model.Class) {
	needsBinding := len(c.Commands) > 0 || c.Subscriber
	paths := make(map[string]bool)

	for _, cmd := range c.Commands {
		// Only async guard closures reference context.Background();
		// async execute methods are passed as method values.
		if cmd.CanExecute != nil && cmd.CanExecute.Async {
			paths["context"] = true
		}
	}

	var typs []string
	for _, p := range c.Properties {
		typs = append(typs, p.Type)
	}
	for _, cmd := range c.Commands {
		if cmd.Execute.HasParam {
			typs = append(typs, cmd.Execute.ParamType)
		}
	}
	if c.Wrapped != nil {
		typs = append(typs, c.Wrapped.Type)
	}
	for _, inj := range c.Injections {
		typs = append(typs, inj.Type)
	}

	for _, typ := range typs {
		for _, q := range qualifiers(typ) {
			switch q {
			case "binding":
				needsBinding = true
			case "zap":
				// Synthesized logger injections exist even when the
				// inspected source never imported zap.
				if path, ok := g.pkg.Imports[q]; ok {
					paths[path] = true
				} else {
					paths["go.uber.org/zap"] = true
				}
			default:
				if path, ok := g.pkg.Imports[q]; ok {
					paths[path] = true
				}
			}
		}
	}
	if needsBinding {
		paths[g.cfg.BindingImport] = true
	}

	if len(paths) == 0 {
		return
	}

	// Two gofmt-stable groups: stdlib, then everything else.
	var std, ext []string
	for path := range paths {
		if strings.Contains(strings.SplitN(path, "/", 2)[0], ".") {
			ext = append(ext, path)
		} else {
			std = append(std, path)
		}
	}
	sort.Strings(std)
	sort.Strings(ext)

	w.Blank()
	w.Line("import (")
	w.Indent()
	for _, path := range std {
		w.Linef("%q", path)
	}
	if len(std) > 0 && len(ext) > 0 {
		w.Blank()
	}
	for _, path := range ext {
		w.Linef("%q", path)
	}
	w.Outdent()
	w.Line(")")
}

// qualifiers extracts the package qualifiers a type rendered as source
// references ("map[string]*http.Client" yields "http").
func qualifiers(typ string) []string {
	var out []string
	for i := 0; i < len(typ); {
		if !identByte(typ[i], true) {
			i++
			continue
		}
		j := i
		for j < len(typ) && identByte(typ[j], false) {
			j++
		}
		if j < len(typ) && typ[j] == '.' {
			out = append(out, typ[i:j])
			j++
			for j < len(typ) && identByte(typ[j], false) {
				j++
			}
		}
		i = j
	}
	return out
}

func identByte(b byte, start bool) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_':
		return true
	case b >= '0' && b <= '9':
		return !start
	default:
		return false
	}
}
