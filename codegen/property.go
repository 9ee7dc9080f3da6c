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

// genProperties emits the getter and, for writable properties, the
// change-notifying setter. Setters route notification through the
// generated invalidation-support method; publish and call side
// effects stay inline, in declared order.
func (g *Generator) genProperties(w *emit.Writer, c *model.Class) {
	for _, p := range c.Properties {
		w.Blank()
		w.Linef("// %s returns the %s property value.", p.Name, p.Name)
		w.OpenScope(fmt.Sprintf("func (v *%s) %s() %s", c.Name, p.Name, p.Type))
		w.Linef("return v.%s", p.Field)
		w.CloseScope()

		if p.ReadOnly {
			continue
		}

		w.Blank()
		w.Linef("// Set%s updates %s and raises change notification.", p.Name, p.Field)
		w.OpenScope(fmt.Sprintf("func (v *%s) Set%s(value %s)", c.Name, p.Name, p.Type))
		w.OpenScope(fmt.Sprintf("if v.%s == value", p.Field))
		w.Line("return")
		w.CloseScope()
		w.Linef("v.%s = value", p.Field)
		w.Linef("v.notifyChanged(%q)", p.Name)
		for _, pub := range p.Publishes {
			if pub.Guard != "" {
				w.OpenScope(fmt.Sprintf("if v.%s()", pub.Guard))
				w.Linef("v.Publish(%s{})", pub.Event)
				w.CloseScope()
			} else {
				w.Linef("v.Publish(%s{})", pub.Event)
			}
		}
		for _, call := range p.Calls {
			w.Linef("v.%s()", call)
		}
		w.CloseScope()
	}
}

// genNotifySupport emits the invalidation-support method fanning one
// property change out to its dependents. The invalidation graph was
// fully resolved by the inspector before emission started, so this is
// a straight transcription: properties re-notify, commands invalidate.
func (g *Generator) genNotifySupport(w *emit.Writer, c *model.Class) {
	if !writableProperties(c) {
		return
	}

	w.Blank()
	w.Line("// notifyChanged raises change notification for the named property")
	w.Line("// and re-notifies its dependents.")
	w.OpenScope(fmt.Sprintf("func (v *%s) notifyChanged(name string)", c.Name))
	w.Line("v.RaisePropertyChanged(name)")

	if dependents(c) {
		w.OpenScope("switch name")
		for _, p := range c.Properties {
			if !p.HasDependents() {
				continue
			}
			w.Outdent()
			w.Linef("case %q:", p.Name)
			w.Indent()
			for _, t := range p.Notify {
				switch t.Kind {
				case model.NotifyProperty:
					w.Linef("v.RaisePropertyChanged(%q)", t.Name)
				case model.NotifyCommand:
					w.Linef("v.InvalidateCommand(%q)", t.Name)
				}
			}
		}
		w.CloseScope()
	}
	w.CloseScope()
}

func writableProperties(c *model.Class) bool {
	for _, p := range c.Properties {
		if !p.ReadOnly {
			return true
		}
	}
	return false
}

func dependents(c *model.Class) bool {
	for _, p := range c.Properties {
		if p.HasDependents() {
			return true
		}
	}
	return false
}
