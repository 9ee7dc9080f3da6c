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

// genFactory emits the companion factory: an interface, an unexported
// implementation and its constructor. The factory's New mirrors the
// generated constructor's parameter list.
func (g *Generator) genFactory(w *emit.Writer, c *model.Class) {
	if c.Factory == nil {
		return
	}

	params := constructorParams(c)

	w.Blank()
	w.Linef("// %s creates %s instances.", c.Factory.Interface, c.Name)
	w.OpenScope(fmt.Sprintf("type %s interface", c.Factory.Interface))
	w.Linef("New(%s) *%s", paramList(params), c.Name)
	w.CloseScope()

	w.Blank()
	w.Linef("type %s struct{}", c.Factory.Struct)

	w.Blank()
	w.Linef("// New%s returns the default factory backed by New%s.", c.Factory.Interface, c.Name)
	w.OpenScope(fmt.Sprintf("func New%s() %s", c.Factory.Interface, c.Factory.Interface))
	w.Linef("return %s{}", c.Factory.Struct)
	w.CloseScope()

	w.Blank()
	w.OpenScope(fmt.Sprintf("func (%s) New(%s) *%s", c.Factory.Struct, paramList(params), c.Name))
	w.Linef("return New%s(%s)", c.Name, argList(params))
	w.CloseScope()
}
