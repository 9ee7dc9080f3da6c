// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package names holds the naming conventions shared by the inspector
// and the code generators.
package names

import (
	"strings"
	"unicode"
)

// Capitalize returns name with the first letter uppercased.
// Returns empty string for empty input.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Uncapitalize returns name with the first letter lowercased.
func Uncapitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// PropertyName derives a public property name from a backing field:
// leading underscores are stripped, then the first letter is
// uppercased ("_firstName" -> "FirstName").
func PropertyName(field string) string {
	return Capitalize(strings.TrimLeft(field, "_"))
}

// ParamName derives a constructor parameter name from an accessor
// name ("Users" -> "users"). Names that would collide with a keyword
// get a trailing underscore.
func ParamName(accessor string) string {
	p := Uncapitalize(accessor)
	switch p {
	case "type", "func", "var", "const", "map", "chan", "range", "select":
		return p + "_"
	}
	return p
}

// CamelToSnake converts a CamelCase name to snake_case.
// Fully uppercase names (like "URI") are lowered as a single word.
func CamelToSnake(name string) string {
	allUpper := true
	for _, r := range name {
		if !unicode.IsUpper(r) && unicode.IsLetter(r) {
			allUpper = false
			break
		}
	}
	if allUpper {
		return strings.ToLower(name)
	}

	var result strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// BindingFileName returns the generated file name for a class
// ("PersonViewModel" -> "person_view_model_binding.gen.go").
func BindingFileName(class string) string {
	return CamelToSnake(class) + "_binding.gen.go"
}
