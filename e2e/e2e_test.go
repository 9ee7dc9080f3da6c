// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package e2e runs the whole pipeline, from annotated source files to
// generated binding files, over a realistic sample package.
package e2e

import (
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/castlebridge/bindgen/codegen"
	"github.com/castlebridge/bindgen/inspector"
)

// parseSample parses every non-generated .go file under
// testdata/sample, the same filtering the loader applies.
func parseSample(t *testing.T) (*token.FileSet, []*ast.File) {
	t.Helper()

	dir := filepath.Join("testdata", "sample")
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}

	fset := token.NewFileSet()
	var files []*ast.File
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, ".gen.go") {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		files = append(files, file)
	}
	if len(files) == 0 {
		t.Fatal("no sample sources found")
	}
	return fset, files
}

func generateSample(t *testing.T) map[string][]byte {
	t.Helper()

	fset, files := parseSample(t)
	pkg, diags := inspector.Inspect(fset, "sample", files)
	for _, d := range diags {
		if d.Severity == inspector.SeverityError {
			t.Errorf("diagnostic: %v", d)
		}
	}
	if t.Failed() {
		t.FailNow()
	}

	out, err := codegen.New(pkg, codegen.DefaultConfig()).Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return out.Files
}

func TestGenerateSamplePackage(t *testing.T) {
	files := generateSample(t)

	want := []string{
		"person_view_model_binding.gen.go",
		codegen.ViewModelTableFile,
		codegen.ServiceTableFile,
	}
	for _, name := range want {
		if _, ok := files[name]; !ok {
			t.Errorf("missing generated file %q", name)
		}
	}

	src := string(files["person_view_model_binding.gen.go"])
	fragments := []string{
		"func NewPersonViewModel(model Person, store PersonStore, logger *zap.Logger, errors binding.ErrorHandler, events *binding.Aggregator) *PersonViewModel {",
		"v.BindSafety(logger, errors)",
		"v.AttachAggregator(events)",
		`binding.NewSafeAsyncCommand("SaveCommand", v.SafetyLogger(), v.SafetyHandler(), v.Save, v.CanSave)`,
		"binding.NewCommand(v.Reset, nil)",
		"func (v *PersonViewModel) SetFirstName(value string) {",
		"v.Publish(PersonChanged{})",
		"v.refreshTitle()",
		`case "FirstName":`,
		`v.RaisePropertyChanged("FullName")`,
		`v.InvalidateCommand("SaveCommand")`,
		"type PersonViewModelFactory interface {",
	}
	for _, fragment := range fragments {
		if !strings.Contains(src, fragment) {
			t.Errorf("class file missing %q", fragment)
		}
	}

	tables := string(files[codegen.ViewModelTableFile])
	if !strings.Contains(tables, `c.Provide("PersonViewModel", NewPersonViewModel)`) {
		t.Error("view model not registered")
	}
	services := string(files[codegen.ServiceTableFile])
	if !strings.Contains(services, `c.Provide("PersonStore", NewSQLPersonStore)`) {
		t.Error("service not registered")
	}
}

func TestGeneratedFilesParseAndFormat(t *testing.T) {
	for name, content := range generateSample(t) {
		t.Run(name, func(t *testing.T) {
			fset := token.NewFileSet()
			if _, err := parser.ParseFile(fset, name, content, parser.ParseComments); err != nil {
				t.Fatalf("does not parse: %v", err)
			}
			formatted, err := format.Source(content)
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if string(formatted) != string(content) {
				t.Error("output is not gofmt-stable")
			}
		})
	}
}

func TestRegenerationIsIdempotent(t *testing.T) {
	first := generateSample(t)
	second := generateSample(t)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("regeneration differs (-first +second):\n%s", diff)
	}
}
