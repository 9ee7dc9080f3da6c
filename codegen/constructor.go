// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"strings"

	"github.com/castlebridge/bindgen/emit"
	"github.com/castlebridge/bindgen/internal/names"
	"github.com/castlebridge/bindgen/model"
)

// param is one constructor parameter.
type param struct {
	name string
	typ  string
}

// constructorParams returns the parameter list shared by the
// constructor and the factory: wrapped model first, then declared
// injections in field order, then synthesized injections, then the
// aggregator for subscriber classes.
func constructorParams(c *model.Class) []param {
	var out []param
	if c.Wrapped != nil {
		out = append(out, param{names.ParamName(c.Wrapped.Name), c.Wrapped.Type})
	}
	for _, inj := range c.Injections {
		out = append(out, param{names.ParamName(inj.Name), inj.Type})
	}
	if c.Subscriber {
		out = append(out, param{"events", "*binding.Aggregator"})
	}
	return out
}

func paramList(params []param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.name+" "+p.typ)
	}
	return strings.Join(parts, ", ")
}

func argList(params []param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.name)
	}
	return strings.Join(parts, ", ")
}

// genConstructor emits the dependency-injected constructor.
func (g *Generator) genConstructor(w *emit.Writer, c *model.Class) {
	if !c.Constructor {
		return
	}

	params := constructorParams(c)

	w.Blank()
	w.Linef("// New%s constructs a %s with its dependencies.", c.Name, c.Name)
	w.OpenScope(fmt.Sprintf("func New%s(%s) *%s", c.Name, paramList(params), c.Name))
	w.Linef("v := &%s{}", c.Name)
	if c.Wrapped != nil {
		w.Linef("v.%s = %s", c.Wrapped.Field, names.ParamName(c.Wrapped.Name))
	}
	for _, inj := range c.Injections {
		if inj.Synthesized {
			continue
		}
		w.Linef("v.%s = %s", inj.Field, names.ParamName(inj.Name))
	}
	if c.SafeCommands() {
		w.Linef("v.BindSafety(%s, %s)", safetyArg(c, model.InjectLogger), safetyArg(c, model.InjectErrorHandler))
	}
	if c.Subscriber {
		w.Line("v.AttachAggregator(events)")
	}
	w.Line("return v")
	w.CloseScope()
}

// safetyArg returns the constructor parameter name carrying the
// logger or error handler. ensureSafety guarantees exactly one entry
// of each kind exists when safe commands are present.
func safetyArg(c *model.Class, kind model.InjectionKind) string {
	for _, inj := range c.Injections {
		if inj.Kind == kind {
			return names.ParamName(inj.Name)
		}
	}
	return "nil"
}
