// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMethodShape(t *testing.T) {
	tests := []struct {
		name     string
		method   Method
		expected string
	}{
		{name: "plain", method: Method{Name: "Save"}, expected: "plain"},
		{name: "param", method: Method{Name: "Remove", HasParam: true, ParamType: "string"}, expected: "param"},
		{name: "async", method: Method{Name: "Load", Async: true}, expected: "async"},
		{name: "async param", method: Method{Name: "Fetch", Async: true, HasParam: true, ParamType: "int"}, expected: "async+param"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.method.Shape(); got != tc.expected {
				t.Errorf("Shape() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestClassSafeCommands(t *testing.T) {
	c := &Class{
		Commands: []*Command{
			{Name: "SaveCommand"},
			{Name: "DeleteCommand"},
		},
	}
	if c.SafeCommands() {
		t.Error("SafeCommands() = true for class without safe commands")
	}
	c.Commands[1].Safe = true
	if !c.SafeCommands() {
		t.Error("SafeCommands() = false for class with a safe command")
	}
}

func TestClassCommandNames(t *testing.T) {
	c := &Class{
		Commands: []*Command{
			{Name: "SaveCommand"},
			{Name: "DeleteCommand"},
		},
	}
	want := []string{"SaveCommand", "DeleteCommand"}
	if diff := cmp.Diff(want, c.CommandNames()); diff != "" {
		t.Errorf("CommandNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestClassLookups(t *testing.T) {
	c := &Class{
		Properties: []*Property{{Name: "FirstName"}},
		Commands:   []*Command{{Name: "SaveCommand"}},
	}

	if c.FindProperty("FirstName") == nil {
		t.Error("FindProperty missed an existing property")
	}
	if c.FindProperty("SaveCommand") != nil {
		t.Error("FindProperty matched a command name")
	}
	if c.FindCommand("SaveCommand") == nil {
		t.Error("FindCommand missed an existing command")
	}
	if c.FindCommand("FirstName") != nil {
		t.Error("FindCommand matched a property name")
	}
}

func TestPropertyHasDependents(t *testing.T) {
	p := &Property{Name: "FirstName"}
	if p.HasDependents() {
		t.Error("HasDependents() = true with empty notify list")
	}
	p.Notify = append(p.Notify, NotifyTarget{Name: "FullName", Kind: NotifyProperty})
	if !p.HasDependents() {
		t.Error("HasDependents() = false with a notify target")
	}
}

func TestServiceProvidesContract(t *testing.T) {
	s := &Service{
		Name:     "SQLUserStore",
		Provides: []string{"UserReader", "UserWriter"},
	}
	if !s.ProvidesContract("UserReader") {
		t.Error("ProvidesContract missed a declared contract")
	}
	if s.ProvidesContract("UserDeleter") {
		t.Error("ProvidesContract matched an undeclared contract")
	}
}
