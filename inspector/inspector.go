// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package inspector extracts binding descriptors from annotated Go
// source.
//
// The inspector is a pure function from parsed syntax to the
// descriptor model: it performs no emission and no I/O. Each annotated
// type is processed in two passes. The first pass collects property,
// command and injection descriptors; the second resolves the
// invalidation graph (notify targets must name existing properties or
// commands) so that emission can run single-pass without
// backtracking. A class that produces any error-severity diagnostic
// is dropped entirely; there is no partial output.
package inspector

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/castlebridge/bindgen/internal/names"
	"github.com/castlebridge/bindgen/model"
)

// Inspect walks the files of one package and returns the descriptors
// for every annotated type, along with all diagnostics produced.
// Classes and services that produced error diagnostics are omitted
// from the returned package.
func Inspect(fset *token.FileSet, pkgName string, files []*ast.File) (*model.Package, []Diagnostic) {
	in := &inspection{fset: fset, files: files}
	pkg := &model.Package{Name: pkgName, Imports: make(map[string]string)}

	for _, file := range files {
		collectImports(pkg.Imports, file)
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}
				dirs := parseDirectives(fset, doc)
				if len(dirs) == 0 {
					continue
				}
				switch dirs[0].name {
				case "viewmodel":
					if c := in.class(ts, dirs); c != nil {
						pkg.Classes = append(pkg.Classes, c)
					}
				case "service":
					if s := in.service(ts, dirs); s != nil {
						pkg.Services = append(pkg.Services, s)
					}
				default:
					in.report(errorf(dirs[0].pos, CodeUnknownDirective,
						"unknown type-level directive %q", dirs[0].name))
				}
			}
		}
	}

	return pkg, in.diags
}

// collectImports records the file's imports keyed by the qualifier
// source code uses (the declared alias, or the last path segment).
// Blank and dot imports contribute no qualifier.
func collectImports(imports map[string]string, file *ast.File) {
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		name := path
		if i := strings.LastIndex(path, "/"); i >= 0 {
			name = path[i+1:]
		}
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				continue
			}
			name = imp.Name.Name
		}
		imports[name] = path
	}
}

type inspection struct {
	fset  *token.FileSet
	files []*ast.File
	diags []Diagnostic
}

func (in *inspection) report(d Diagnostic) {
	in.diags = append(in.diags, d)
}

func (in *inspection) pos(n ast.Node) token.Position {
	return in.fset.Position(n.Pos())
}

// errorsSince reports whether an error diagnostic was added after the
// given mark.
func (in *inspection) errorsSince(mark int) bool {
	return HasErrors(in.diags[mark:])
}

// class builds a Class descriptor from an annotated type declaration.
// Returns nil when any error diagnostic was produced for the class.
func (in *inspection) class(ts *ast.TypeSpec, dirs []directive) *model.Class {
	mark := len(in.diags)

	c := &model.Class{
		Name: ts.Name.Name,
		Pos:  in.pos(ts),
	}

	vm := dirs[0]
	c.Constructor = vm.has("constructor")
	c.Subscriber = vm.has("subscriber")
	if vm.has("factory") {
		iface := vm.opt("factory", c.Name+"Factory")
		c.Factory = &model.Factory{
			Interface: iface,
			Struct:    names.Uncapitalize(iface),
		}
	}
	for _, d := range dirs[1:] {
		in.report(errorf(d.pos, CodeOrphanDirective,
			"directive %q is not valid on a viewmodel type", d.name))
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		in.report(errorf(c.Pos, CodeNotStruct,
			"%s: //bind:viewmodel requires a struct type", c.Name))
		return nil
	}

	for _, field := range st.Fields.List {
		in.field(c, field)
	}
	for _, fn := range in.methodsOf(c.Name) {
		in.command(c, fn)
	}

	in.resolveNotify(c)
	in.ensureSafety(c)

	// A constructor is also needed whenever there is anything for it
	// to wire.
	if len(c.Injections) > 0 || c.Wrapped != nil || c.Subscriber || c.Factory != nil {
		c.Constructor = true
	}

	if in.errorsSince(mark) {
		return nil
	}
	return c
}

// field processes one struct field and attaches property, injection or
// wrapped-model descriptors to the class.
func (in *inspection) field(c *model.Class, field *ast.Field) {
	dirs := parseDirectives(in.fset, field.Doc)
	if len(dirs) == 0 {
		return
	}

	pos := in.pos(field)
	if len(field.Names) != 1 {
		in.report(errorf(pos, CodeBadField,
			"annotated fields must declare exactly one name"))
		return
	}
	name := field.Names[0].Name
	typ := types.ExprString(field.Type)

	switch dirs[0].name {
	case "property":
		in.property(c, dirs, name, typ, pos)
	case "inject":
		c.Injections = append(c.Injections, &model.Injection{
			Name:  dirs[0].opt("name", names.PropertyName(name)),
			Field: name,
			Type:  typ,
			Kind:  injectionKind(typ),
			Pos:   pos,
		})
		in.rejectTrailing(dirs[1:])
	case "model":
		if c.Wrapped != nil {
			in.report(errorf(pos, CodeBadField,
				"%s declares more than one //bind:model field", c.Name))
			return
		}
		c.Wrapped = &model.Injection{
			Name:  dirs[0].opt("name", "Model"),
			Field: name,
			Type:  typ,
			Pos:   pos,
		}
		in.rejectTrailing(dirs[1:])
	case "notify", "publish", "call":
		in.report(errorf(dirs[0].pos, CodeOrphanDirective,
			"//bind:%s must follow //bind:property on the same field", dirs[0].name))
	default:
		in.report(errorf(dirs[0].pos, CodeUnknownDirective,
			"unknown field directive %q", dirs[0].name))
	}
}

// property builds a Property from the leading property directive and
// its trailing notify/publish/call companions.
func (in *inspection) property(c *model.Class, dirs []directive, field, typ string, pos token.Position) {
	p := &model.Property{
		Name:     dirs[0].opt("name", names.PropertyName(field)),
		Field:    field,
		Type:     typ,
		ReadOnly: dirs[0].has("readonly"),
		Pos:      pos,
	}

	// Fields are processed before methods, so only an earlier property
	// can take the name here; command collisions are caught when the
	// command is built.
	if c.FindProperty(p.Name) != nil {
		in.report(errorf(pos, CodeDuplicateProperty,
			"generated name %s is already taken on %s", p.Name, c.Name))
		return
	}

	for _, d := range dirs[1:] {
		switch d.name {
		case "notify":
			for _, target := range d.args {
				// Kind is provisional until resolveNotify runs.
				p.Notify = append(p.Notify, model.NotifyTarget{Name: target, Kind: model.NotifyProperty})
			}
		case "publish":
			if len(d.args) != 1 {
				in.report(errorf(d.pos, CodeBadOption,
					"//bind:publish takes exactly one event type"))
				continue
			}
			pub := model.Publish{Event: d.args[0], Guard: d.opt("if", "")}
			if pub.Guard != "" && in.findMethod(c.Name, pub.Guard) == nil {
				in.report(errorf(d.pos, CodeMissingMethod,
					"publish guard %s.%s does not exist", c.Name, pub.Guard))
				continue
			}
			p.Publishes = append(p.Publishes, pub)
		case "call":
			for _, m := range d.args {
				if in.findMethod(c.Name, m) == nil {
					in.report(errorf(d.pos, CodeMissingMethod,
						"change callback %s.%s does not exist", c.Name, m))
					continue
				}
				p.Calls = append(p.Calls, m)
			}
		default:
			in.report(errorf(d.pos, CodeUnknownDirective,
				"unknown property directive %q", d.name))
		}
	}

	c.Properties = append(c.Properties, p)
}

// command builds a Command from an annotated method.
func (in *inspection) command(c *model.Class, fn *ast.FuncDecl) {
	dirs := parseDirectives(in.fset, fn.Doc)
	var cd *directive
	for i := range dirs {
		switch {
		case dirs[i].name != "command":
			in.report(errorf(dirs[i].pos, CodeUnknownDirective,
				"directive %q is not valid on a method", dirs[i].name))
		case cd != nil:
			in.report(errorf(dirs[i].pos, CodeOrphanDirective,
				"duplicate //bind:command on %s", fn.Name.Name))
		default:
			cd = &dirs[i]
		}
	}
	if cd == nil {
		return
	}

	pos := in.pos(fn)
	exec, ok := in.methodShape(fn, false)
	if !ok {
		return
	}

	cmd := &model.Command{
		Name:    cd.opt("name", fn.Name.Name+"Command"),
		Execute: exec,
		Safe:    cd.has("safe"),
		Pos:     pos,
	}

	if guardName := cd.opt("can", ""); guardName != "" {
		guardDecl := in.findMethod(c.Name, guardName)
		if guardDecl == nil {
			in.report(errorf(pos, CodeMissingMethod,
				"can-execute method %s.%s does not exist", c.Name, guardName))
			return
		}
		guard, ok := in.methodShape(guardDecl, true)
		if !ok {
			return
		}
		if guard.HasParam && !exec.HasParam {
			in.report(errorf(pos, CodeBadSignature,
				"guard %s takes a parameter but command %s does not", guardName, fn.Name.Name))
			return
		}
		if guard.HasParam && guard.ParamType != exec.ParamType {
			in.report(errorf(pos, CodeBadSignature,
				"guard %s parameter type %s does not match command parameter type %s",
				guardName, guard.ParamType, exec.ParamType))
			return
		}
		cmd.CanExecute = &guard
	}

	if c.FindCommand(cmd.Name) != nil || c.FindProperty(cmd.Name) != nil {
		in.report(errorf(pos, CodeDuplicateCommand,
			"generated name %s is already taken on %s", cmd.Name, c.Name))
		return
	}

	c.Commands = append(c.Commands, cmd)
}

// methodShape classifies a method by the two independent booleans that
// select the command shape: asynchronous (leading context.Context
// parameter) and parameterized (one non-context parameter). Guards
// must return bool; execute methods return error when asynchronous and
// nothing otherwise.
func (in *inspection) methodShape(fn *ast.FuncDecl, guard bool) (model.Method, bool) {
	pos := in.pos(fn)
	m := model.Method{Name: fn.Name.Name}

	params := flatten(fn.Type.Params)
	if len(params) > 0 && params[0] == "context.Context" {
		m.Async = true
		params = params[1:]
	}
	switch len(params) {
	case 0:
	case 1:
		m.HasParam = true
		m.ParamType = params[0]
	default:
		in.report(errorf(pos, CodeBadSignature,
			"%s: at most one parameter besides context.Context is allowed", m.Name))
		return m, false
	}

	results := flatten(fn.Type.Results)
	switch {
	case guard:
		if len(results) != 1 || results[0] != "bool" {
			in.report(errorf(pos, CodeBadSignature,
				"can-execute method %s must return exactly bool", m.Name))
			return m, false
		}
	case m.Async:
		if len(results) != 1 || results[0] != "error" {
			in.report(errorf(pos, CodeBadSignature,
				"asynchronous command method %s must return exactly error", m.Name))
			return m, false
		}
	default:
		if len(results) != 0 {
			in.report(errorf(pos, CodeBadSignature,
				"command method %s must not return values", m.Name))
			return m, false
		}
	}

	return m, true
}

// resolveNotify is the second inspector pass: every notify target must
// name another property (re-notified) or a command (can-execute
// invalidated) on the same class. Emission relies on the graph being
// fully resolved, so unknown targets are errors, not best-effort.
func (in *inspection) resolveNotify(c *model.Class) {
	for _, p := range c.Properties {
		for i, t := range p.Notify {
			switch {
			case t.Name == p.Name:
				in.report(errorf(p.Pos, CodeBadNotifyTarget,
					"property %s cannot notify itself", p.Name))
			case c.FindProperty(t.Name) != nil:
				p.Notify[i].Kind = model.NotifyProperty
			case c.FindCommand(t.Name) != nil:
				p.Notify[i].Kind = model.NotifyCommand
			default:
				in.report(errorf(p.Pos, CodeBadNotifyTarget,
					"notify target %q names no property or command on %s", t.Name, c.Name))
			}
		}
		if p.ReadOnly && (len(p.Notify) > 0 || len(p.Publishes) > 0 || len(p.Calls) > 0) {
			in.report(warnf(p.Pos, CodeReadOnlyNotify,
				"read-only property %s has change side effects that will never fire", p.Name))
		}
	}
}

// ensureSafety enforces the safe-command invariant: when any command
// is safe, the injection list holds exactly one logger and one error
// handler before the constructor is generated. Missing entries are
// synthesized rather than reported.
func (in *inspection) ensureSafety(c *model.Class) {
	if !c.SafeCommands() {
		return
	}

	var loggers, handlers int
	for _, inj := range c.Injections {
		switch inj.Kind {
		case model.InjectLogger:
			loggers++
		case model.InjectErrorHandler:
			handlers++
		}
	}

	if loggers > 1 || handlers > 1 {
		in.report(errorf(c.Pos, CodeBadField,
			"%s: safe commands allow at most one logger and one error handler injection", c.Name))
		return
	}
	if loggers == 0 {
		c.Injections = append(c.Injections, &model.Injection{
			Name:        "Logger",
			Type:        "*zap.Logger",
			Kind:        model.InjectLogger,
			Synthesized: true,
		})
	}
	if handlers == 0 {
		c.Injections = append(c.Injections, &model.Injection{
			Name:        "Errors",
			Type:        "binding.ErrorHandler",
			Kind:        model.InjectErrorHandler,
			Synthesized: true,
		})
	}
}

// service builds a Service descriptor from an annotated type.
func (in *inspection) service(ts *ast.TypeSpec, dirs []directive) *model.Service {
	mark := len(in.diags)
	d := dirs[0]
	in.rejectTrailing(dirs[1:])
	provides := d.opt("provides", "")
	if provides == "" {
		in.report(errorf(d.pos, CodeBadOption,
			"//bind:service requires provides=Contract[,Contract...]"))
		return nil
	}
	s := &model.Service{
		Name:        ts.Name.Name,
		Constructor: d.opt("ctor", "New"+ts.Name.Name),
		Pos:         in.pos(ts),
	}
	for _, p := range strings.Split(provides, ",") {
		if p != "" {
			s.Provides = append(s.Provides, p)
		}
	}
	if in.errorsSince(mark) {
		return nil
	}
	return s
}

func (in *inspection) rejectTrailing(dirs []directive) {
	for _, d := range dirs {
		in.report(errorf(d.pos, CodeOrphanDirective,
			"directive %q is not valid here", d.name))
	}
}

// methodsOf returns the methods declared on *T or T, in source order.
func (in *inspection) methodsOf(typeName string) []*ast.FuncDecl {
	var out []*ast.FuncDecl
	for _, file := range in.files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil {
				continue
			}
			if receiverName(fn) == typeName {
				out = append(out, fn)
			}
		}
	}
	return out
}

func (in *inspection) findMethod(typeName, method string) *ast.FuncDecl {
	for _, fn := range in.methodsOf(typeName) {
		if fn.Name.Name == method {
			return fn
		}
	}
	return nil
}

func receiverName(fn *ast.FuncDecl) string {
	if len(fn.Recv.List) != 1 {
		return ""
	}
	t := fn.Recv.List[0].Type
	if star, ok := t.(*ast.StarExpr); ok {
		t = star.X
	}
	if ident, ok := t.(*ast.Ident); ok {
		return ident.Name
	}
	return ""
}

// flatten expands a parameter or result list into one type string per
// declared value ("a, b int" contributes two entries).
func flatten(fields *ast.FieldList) []string {
	if fields == nil {
		return nil
	}
	var out []string
	for _, f := range fields.List {
		typ := types.ExprString(f.Type)
		n := len(f.Names)
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			out = append(out, typ)
		}
	}
	return out
}

// injectionKind classifies a declared injection by its type: loggers
// and error handlers participate in safe-command wiring.
func injectionKind(typ string) model.InjectionKind {
	switch {
	case typ == "*zap.Logger" || strings.HasSuffix(typ, "zap.Logger"):
		return model.InjectLogger
	case strings.HasSuffix(typ, "ErrorHandler"):
		return model.InjectErrorHandler
	default:
		return model.InjectDependency
	}
}
