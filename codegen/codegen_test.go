// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen

import (
	"go/format"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/castlebridge/bindgen/model"
)

// personPackage builds a representative inspected package touching
// every generated member kind.
func personPackage() *model.Package {
	return &model.Package{
		Name: "sample",
		Classes: []*model.Class{
			{
				Name:        "PersonViewModel",
				Constructor: true,
				Subscriber:  true,
				Factory:     &model.Factory{Interface: "PersonViewModelFactory", Struct: "personViewModelFactory"},
				Properties: []*model.Property{
					{
						Name:  "FirstName",
						Field: "firstName",
						Type:  "string",
						Notify: []model.NotifyTarget{
							{Name: "FullName", Kind: model.NotifyProperty},
							{Name: "SaveCommand", Kind: model.NotifyCommand},
						},
						Publishes: []model.Publish{{Event: "PersonChanged", Guard: "ShouldPublish"}},
						Calls:     []string{"refreshTitle"},
					},
					{Name: "FullName", Field: "fullName", Type: "string", ReadOnly: true},
				},
				Commands: []*model.Command{
					{
						Name:       "SaveCommand",
						Execute:    model.Method{Name: "Save"},
						CanExecute: &model.Method{Name: "CanSave"},
						Safe:       true,
					},
					{
						Name:    "LoadCommand",
						Execute: model.Method{Name: "Load", Async: true},
					},
				},
				Injections: []*model.Injection{
					{Name: "Users", Field: "users", Type: "UserService"},
					{Name: "Logger", Type: "*zap.Logger", Kind: model.InjectLogger, Synthesized: true},
					{Name: "Errors", Type: "binding.ErrorHandler", Kind: model.InjectErrorHandler, Synthesized: true},
				},
				Wrapped: &model.Injection{Name: "Model", Field: "person", Type: "Person"},
			},
		},
		Services: []*model.Service{
			{Name: "SQLUserStore", Constructor: "NewSQLUserStore", Provides: []string{"UserService"}},
		},
	}
}

func generate(t *testing.T, pkg *model.Package, cfg Config) *Output {
	t.Helper()
	out, err := New(pkg, cfg).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return out
}

func TestGenerateFileNames(t *testing.T) {
	out := generate(t, personPackage(), Config{Tables: true})

	want := []string{
		"person_view_model_binding.gen.go",
		ViewModelTableFile,
		ServiceTableFile,
	}
	for _, name := range want {
		if _, ok := out.Files[name]; !ok {
			t.Errorf("missing output file %q", name)
		}
	}
	if len(out.Files) != len(want) {
		t.Errorf("got %d files, want %d", len(out.Files), len(want))
	}
}

func TestGenerateWithoutTables(t *testing.T) {
	out := generate(t, personPackage(), Config{Tables: false})
	if len(out.Files) != 1 {
		t.Errorf("got %d files, want just the class file", len(out.Files))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	pkg := personPackage()
	first := generate(t, pkg, Config{Tables: true})
	second := generate(t, pkg, Config{Tables: true})
	if diff := cmp.Diff(first.Files, second.Files); diff != "" {
		t.Errorf("repeated generation differs (-first +second):\n%s", diff)
	}
}

func TestGeneratedClassContent(t *testing.T) {
	out := generate(t, personPackage(), Config{Tables: false})
	src := string(out.Files["person_view_model_binding.gen.go"])

	fragments := []string{
		"// Code generated by bindgen. DO NOT EDIT.",
		"package sample",

		// Constructor wires model, injections, safety and the
		// aggregator, in that order.
		"func NewPersonViewModel(model Person, users UserService, logger *zap.Logger, errors binding.ErrorHandler, events *binding.Aggregator) *PersonViewModel {",
		"v.person = model",
		"v.users = users",
		"v.BindSafety(logger, errors)",
		"v.AttachAggregator(events)",

		// Commands are lazy and identity stable.
		"func (v *PersonViewModel) SaveCommand() *binding.Command {",
		`binding.Lazy(&v.Observable, "SaveCommand", func() *binding.Command {`,
		`binding.NewSafeCommand("SaveCommand", v.SafetyLogger(), v.SafetyHandler(), v.Save, v.CanSave)`,
		"func (v *PersonViewModel) LoadCommand() *binding.AsyncCommand {",
		"binding.NewAsyncCommand(v.Load, nil)",

		// Properties.
		"func (v *PersonViewModel) FirstName() string {",
		"func (v *PersonViewModel) SetFirstName(value string) {",
		"if v.firstName == value {",
		`v.notifyChanged("FirstName")`,
		"if v.ShouldPublish() {",
		"v.Publish(PersonChanged{})",
		"v.refreshTitle()",
		"func (v *PersonViewModel) FullName() string {",

		// Wrapped model and injection accessors.
		"func (v *PersonViewModel) Model() Person {",
		"func (v *PersonViewModel) Users() UserService {",

		// Invalidation fan-out.
		"func (v *PersonViewModel) notifyChanged(name string) {",
		"v.RaisePropertyChanged(name)",
		`case "FirstName":`,
		`v.RaisePropertyChanged("FullName")`,
		`v.InvalidateCommand("SaveCommand")`,

		// Factory.
		"type PersonViewModelFactory interface {",
		"func NewPersonViewModelFactory() PersonViewModelFactory {",
		"return NewPersonViewModel(model, users, logger, errors, events)",
	}
	for _, fragment := range fragments {
		if !strings.Contains(src, fragment) {
			t.Errorf("generated class file missing %q", fragment)
		}
	}

	if strings.Contains(src, "SetFullName") {
		t.Error("read-only property grew a setter")
	}
	if strings.Contains(src, "func (v *PersonViewModel) Logger()") {
		t.Error("synthesized injection grew an accessor")
	}
}

func TestViewModelTable(t *testing.T) {
	pkg := personPackage()
	pkg.Classes = append(pkg.Classes, &model.Class{Name: "AboutViewModel"})
	out := generate(t, pkg, Config{Tables: true})
	src := string(out.Files[ViewModelTableFile])

	if !strings.Contains(src, `c.Provide("PersonViewModel", NewPersonViewModel)`) {
		t.Error("constructor-bearing class not registered")
	}
	if strings.Contains(src, "AboutViewModel") {
		t.Error("class without constructor must not be registered")
	}
}

func TestServiceTable(t *testing.T) {
	t.Run("single provider registered", func(t *testing.T) {
		out := generate(t, personPackage(), Config{Tables: true})
		src := string(out.Files[ServiceTableFile])
		if !strings.Contains(src, `c.Provide("UserService", NewSQLUserStore)`) {
			t.Error("unambiguous provider not registered")
		}
	})

	t.Run("ambiguous contract skipped", func(t *testing.T) {
		pkg := personPackage()
		pkg.Services = append(pkg.Services, &model.Service{
			Name:        "MemoryUserStore",
			Constructor: "NewMemoryUserStore",
			Provides:    []string{"UserService"},
		})
		out := generate(t, pkg, Config{Tables: true})
		src := string(out.Files[ServiceTableFile])
		if strings.Contains(src, "NewSQLUserStore") || strings.Contains(src, "NewMemoryUserStore") {
			t.Error("ambiguous contract must not be registered")
		}
	})

	t.Run("unrequired contract skipped", func(t *testing.T) {
		pkg := personPackage()
		pkg.Services[0].Provides = []string{"Unreferenced"}
		out := generate(t, pkg, Config{Tables: true})
		src := string(out.Files[ServiceTableFile])
		if strings.Contains(src, "NewSQLUserStore") {
			t.Error("contract nobody injects must not be registered")
		}
	})
}

func TestQualifiers(t *testing.T) {
	tests := []struct {
		typ  string
		want []string
	}{
		{typ: "string", want: nil},
		{typ: "*http.Client", want: []string{"http"}},
		{typ: "map[string]*http.Client", want: []string{"http"}},
		{typ: "[]time.Duration", want: []string{"time"}},
		{typ: "chan sql.Result", want: []string{"sql"}},
		{typ: "map[http.Header]sql.Result", want: []string{"http", "sql"}},
		{typ: "*UserService", want: nil},
	}
	for _, tc := range tests {
		t.Run(tc.typ, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, qualifiers(tc.typ)); diff != "" {
				t.Errorf("qualifiers(%q) mismatch (-want +got):\n%s", tc.typ, diff)
			}
		})
	}
}

func TestClassImportsQualifiedTypes(t *testing.T) {
	pkg := &model.Package{
		Name:    "sample",
		Imports: map[string]string{"http": "net/http", "time": "time"},
		Classes: []*model.Class{
			{
				Name:        "ApiViewModel",
				Constructor: true,
				Properties: []*model.Property{
					{Name: "Timeout", Field: "timeout", Type: "time.Duration"},
				},
				Injections: []*model.Injection{
					{Name: "Client", Field: "client", Type: "*http.Client"},
				},
			},
		},
	}

	out := generate(t, pkg, Config{Tables: false})
	src := string(out.Files["api_view_model_binding.gen.go"])

	for _, path := range []string{`"net/http"`, `"time"`} {
		if !strings.Contains(src, path) {
			t.Errorf("generated file missing import %s", path)
		}
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "api.go", src, parser.ParseComments); err != nil {
		t.Fatalf("generated file does not parse: %v", err)
	}
	formatted, err := format.Source([]byte(src))
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if string(formatted) != src {
		t.Error("generated file is not gofmt-stable")
	}
}

func TestGeneratedOutputIsFormatted(t *testing.T) {
	out := generate(t, personPackage(), Config{Tables: true})
	for name, content := range out.Files {
		t.Run(name, func(t *testing.T) {
			fset := token.NewFileSet()
			if _, err := parser.ParseFile(fset, name, content, parser.ParseComments); err != nil {
				t.Fatalf("generated file does not parse: %v", err)
			}
			formatted, err := format.Source(content)
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if string(formatted) != string(content) {
				t.Error("generated file is not gofmt-stable")
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	pkg := &model.Package{Name: "sample"}
	g := New(pkg, Config{})
	if g.cfg.PackageName != "sample" {
		t.Errorf("package name default = %q, want sample", g.cfg.PackageName)
	}
	def := DefaultConfig()
	if g.cfg.BindingImport != def.BindingImport || g.cfg.DIImport != def.DIImport {
		t.Errorf("import defaults not applied: %+v", g.cfg)
	}
}

func TestSourceHeader(t *testing.T) {
	out := generate(t, personPackage(), Config{Source: "./sample"})
	src := string(out.Files["person_view_model_binding.gen.go"])
	if !strings.Contains(src, "// Source: ./sample") {
		t.Error("source line missing from header")
	}
}
