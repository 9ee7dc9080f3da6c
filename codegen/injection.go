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

// genWrappedModel emits the read accessor for the wrapped domain
// model.
func (g *Generator) genWrappedModel(w *emit.Writer, c *model.Class) {
	if c.Wrapped == nil {
		return
	}
	w.Blank()
	w.Linef("// %s returns the wrapped %s.", c.Wrapped.Name, c.Wrapped.Type)
	w.OpenScope(fmt.Sprintf("func (v *%s) %s() %s", c.Name, c.Wrapped.Name, c.Wrapped.Type))
	w.Linef("return v.%s", c.Wrapped.Field)
	w.CloseScope()
}

// genInjections emits read accessors for injected dependencies.
// Write access stays construction-only; synthesized entries have no
// backing field and get no accessor.
func (g *Generator) genInjections(w *emit.Writer, c *model.Class) {
	for _, inj := range c.Injections {
		if inj.Synthesized {
			continue
		}
		w.Blank()
		w.Linef("// %s returns the injected %s.", inj.Name, inj.Type)
		w.OpenScope(fmt.Sprintf("func (v *%s) %s() %s", c.Name, inj.Name, inj.Type))
		w.Linef("return v.%s", inj.Field)
		w.CloseScope()
	}
}
