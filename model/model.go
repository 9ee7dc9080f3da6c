// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the descriptor types produced by the inspector
// and consumed by code generation.
//
// Descriptors are plain data: they capture what must be generated for
// one annotated type without saying anything about how the text is
// rendered. A Class exclusively owns its nested descriptor slices;
// descriptors are never shared between two Classes.
package model

import "go/token"

// Package holds every descriptor discovered in one Go package.
type Package struct {
	// Name is the Go package name the generated files belong to.
	Name string

	// Classes lists the annotated view-model types in source order.
	Classes []*Class

	// Services lists the registration candidates in source order.
	Services []*Service

	// Imports maps package qualifiers to import paths, collected from
	// the inspected files. Generated files re-import the entries their
	// descriptor types reference.
	Imports map[string]string
}

// Class describes one annotated view-model type.
type Class struct {
	// Name is the view-model type name (e.g. "PersonViewModel").
	Name string

	// Properties lists generated observable properties in field order.
	Properties []*Property

	// Commands lists generated command properties in method order.
	Commands []*Command

	// Injections lists constructor-injected dependencies in field
	// order. Synthesized entries (logger, error handler required by
	// safe commands) are appended after the declared ones.
	Injections []*Injection

	// Wrapped is the wrapped domain model, if any.
	Wrapped *Injection

	// Factory is the optional companion factory.
	Factory *Factory

	// Constructor reports whether a constructor is generated.
	Constructor bool

	// Subscriber reports whether the type attaches to the event
	// aggregator on construction.
	Subscriber bool

	// Pos locates the type declaration, for diagnostics.
	Pos token.Position
}

// NotifyKind distinguishes the two kinds of invalidation targets.
type NotifyKind int

const (
	// NotifyProperty re-raises change notification for a property.
	NotifyProperty NotifyKind = iota

	// NotifyCommand re-raises can-execute notification for a command.
	NotifyCommand
)

// NotifyTarget is one resolved entry of a property's invalidation list.
type NotifyTarget struct {
	// Name is the generated property or command property name.
	Name string

	// Kind selects property versus command invalidation.
	Kind NotifyKind
}

// Publish describes an event published when a property changes.
type Publish struct {
	// Event is the event type name.
	Event string

	// Guard is an optional boolean method gating the publish.
	Guard string
}

// Property describes one generated observable property.
type Property struct {
	// Name is the generated property name (e.g. "FirstName").
	Name string

	// Field is the backing struct field (e.g. "firstName").
	Field string

	// Type is the Go type of the backing field, rendered as source.
	Type string

	// ReadOnly suppresses the setter.
	ReadOnly bool

	// Notify lists dependents to re-notify on change, in the order
	// the annotations were declared. Resolved in a second inspector
	// pass; every entry names an existing property or command.
	Notify []NotifyTarget

	// Publishes lists events to publish on change, in declared order.
	Publishes []Publish

	// Calls lists sibling methods to invoke on change, in declared
	// order.
	Calls []string

	// Pos locates the backing field, for diagnostics.
	Pos token.Position
}

// HasDependents reports whether the property re-notifies anything
// beyond itself when it changes.
func (p *Property) HasDependents() bool {
	return len(p.Notify) > 0
}

// Method describes the shape of a callback method referenced by a
// command: the execute method or its can-execute guard.
type Method struct {
	// Name is the method name on the view-model type.
	Name string

	// Async reports whether the method takes a context.Context.
	Async bool

	// HasParam reports whether the method takes one non-context
	// parameter.
	HasParam bool

	// ParamType is the parameter's Go type when HasParam is set.
	ParamType string
}

// Shape renders the {async, parameterized} classification for
// diagnostics and logging.
func (m Method) Shape() string {
	switch {
	case m.Async && m.HasParam:
		return "async+param"
	case m.Async:
		return "async"
	case m.HasParam:
		return "param"
	default:
		return "plain"
	}
}

// Command describes one generated command property.
type Command struct {
	// Name is the generated command property name (e.g.
	// "SaveCommand"). Unique within the owning Class.
	Name string

	// Execute is the wrapped method.
	Execute Method

	// CanExecute is the optional guard method.
	CanExecute *Method

	// Safe wraps execution in error handling: failures are logged and
	// routed to the injected error handler instead of propagating.
	Safe bool

	// Pos locates the method declaration, for diagnostics.
	Pos token.Position
}

// InjectionKind classifies an injected dependency.
type InjectionKind int

const (
	// InjectDependency is an ordinary constructor-injected value.
	InjectDependency InjectionKind = iota

	// InjectLogger is the logging sink required by safe commands.
	InjectLogger

	// InjectErrorHandler is the error sink required by safe commands.
	InjectErrorHandler
)

// Injection describes one constructor-injected dependency.
type Injection struct {
	// Name is the generated read-accessor name (e.g. "Users").
	Name string

	// Field is the backing struct field. Empty for synthesized
	// entries, which exist only as constructor parameters.
	Field string

	// Type is the declared Go type, rendered as source.
	Type string

	// Kind classifies the dependency.
	Kind InjectionKind

	// Synthesized marks entries the inspector added because safe
	// commands require them.
	Synthesized bool

	// Pos locates the backing field. Zero for synthesized entries.
	Pos token.Position
}

// Factory describes the optional companion factory type.
type Factory struct {
	// Interface is the factory interface name.
	Interface string

	// Struct is the unexported implementation name.
	Struct string
}

// Service describes one registration candidate discovered alongside
// the view models.
type Service struct {
	// Name is the concrete type name.
	Name string

	// Constructor is the constructor function registered for the
	// service.
	Constructor string

	// Provides lists the contract (interface) names the service
	// declares it implements.
	Provides []string

	// Pos locates the type declaration.
	Pos token.Position
}

// SafeCommands reports whether any command on the class is safe, which
// forces logger and error-handler injections to exist.
func (c *Class) SafeCommands() bool {
	for _, cmd := range c.Commands {
		if cmd.Safe {
			return true
		}
	}
	return false
}

// CommandNames returns the generated command property names in order.
func (c *Class) CommandNames() []string {
	names := make([]string, 0, len(c.Commands))
	for _, cmd := range c.Commands {
		names = append(names, cmd.Name)
	}
	return names
}

// FindProperty returns the property with the given generated name.
func (c *Class) FindProperty(name string) *Property {
	for _, p := range c.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// FindCommand returns the command with the given property name.
func (c *Class) FindCommand(name string) *Command {
	for _, cmd := range c.Commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

// ProvidesContract reports whether the service declares the given
// contract.
func (s *Service) ProvidesContract(name string) bool {
	for _, p := range s.Provides {
		if p == name {
			return true
		}
	}
	return false
}
