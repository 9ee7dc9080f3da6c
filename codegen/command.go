// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen

import (
	"fmt"

	"github.com/castlebridge/bindgen/emit"
	"github.com/castlebridge/bindgen/model"
)

// commandType selects the runtime command type from the exhaustive
// {async, parameterized} cross-product. Every combination is handled;
// the trailing panic documents that no shape may fall through.
func commandType(cmd *model.Command) string {
	e := cmd.Execute
	switch {
	case e.Async && e.HasParam:
		return "*binding.TypedAsyncCommand[" + e.ParamType + "]"
	case e.Async && !e.HasParam:
		return "*binding.AsyncCommand"
	case !e.Async && e.HasParam:
		return "*binding.TypedCommand[" + e.ParamType + "]"
	case !e.Async && !e.HasParam:
		return "*binding.Command"
	}
	panic("codegen: unhandled command shape")
}

// commandConstructor selects the runtime constructor for the command,
// folding in the safe variant.
func commandConstructor(cmd *model.Command) string {
	e := cmd.Execute
	name := "New"
	if cmd.Safe {
		name += "Safe"
	}
	switch {
	case e.Async && e.HasParam:
		name += "TypedAsyncCommand"
	case e.Async && !e.HasParam:
		name += "AsyncCommand"
	case !e.Async && e.HasParam:
		name += "TypedCommand"
	case !e.Async && !e.HasParam:
		name += "Command"
	default:
		panic("codegen: unhandled command shape")
	}
	return "binding." + name
}

// guardExpr adapts the can-execute method to the guard signature the
// command shape expects. The guard's own shape is independent of the
// execute shape; these closure-wrapping forms are a contract:
//
//	sync guard with param:     passed directly
//	sync guard without param:  func(_ T) bool { return v.M() }
//	async guard with param:    func(x T) bool { return v.M(context.Background(), x) }
//	async guard without param: func(_ T) bool { return v.M(context.Background()) }
//
// For unparameterized commands the parameter is dropped and only the
// sync no-param guard passes directly.
func guardExpr(cmd *model.Command) string {
	guard := cmd.CanExecute
	if guard == nil {
		return "nil"
	}
	e := cmd.Execute

	if e.HasParam {
		switch {
		case !guard.Async && guard.HasParam:
			return "v." + guard.Name
		case !guard.Async && !guard.HasParam:
			return fmt.Sprintf("func(_ %s) bool { return v.%s() }", e.ParamType, guard.Name)
		case guard.Async && guard.HasParam:
			return fmt.Sprintf("func(x %s) bool { return v.%s(context.Background(), x) }", e.ParamType, guard.Name)
		case guard.Async && !guard.HasParam:
			return fmt.Sprintf("func(_ %s) bool { return v.%s(context.Background()) }", e.ParamType, guard.Name)
		}
		panic("codegen: unhandled guard shape")
	}

	// The inspector rejects parameterized guards on unparameterized
	// commands, so only the async bit varies here.
	if guard.Async {
		return fmt.Sprintf("func() bool { return v.%s(context.Background()) }", guard.Name)
	}
	return "v." + guard.Name
}

// constructorArgs renders the argument list for the command
// constructor call. Safe variants thread the diagnostic label, the
// logger and the error handler ahead of the callback.
func constructorArgs(cmd *model.Command) string {
	execute := "v." + cmd.Execute.Name
	guard := guardExpr(cmd)
	if cmd.Safe {
		return fmt.Sprintf("%q, v.SafetyLogger(), v.SafetyHandler(), %s, %s", cmd.Name, execute, guard)
	}
	return fmt.Sprintf("%s, %s", execute, guard)
}

// genCommands emits one lazy, identity-stable accessor per command.
func (g *Generator) genCommands(w *emit.Writer, c *model.Class) {
	for _, cmd := range c.Commands {
		typ := commandType(cmd)

		w.Blank()
		w.Linef("// %s is the generated command property for %s.", cmd.Name, cmd.Execute.Name)
		w.OpenScope(fmt.Sprintf("func (v *%s) %s() %s", c.Name, cmd.Name, typ))
		w.OpenScope(fmt.Sprintf("return binding.Lazy(&v.Observable, %q, func() %s", cmd.Name, typ))
		w.Linef("return %s(%s)", commandConstructor(cmd), constructorArgs(cmd))
		w.Outdent()
		w.Line("})")
		w.CloseScope()
	}
}
