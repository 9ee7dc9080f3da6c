// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package inspector

import (
	"fmt"
	"go/token"
)

// Severity classifies a diagnostic.
type Severity int

const (
	// SeverityError aborts generation for the offending class.
	SeverityError Severity = iota

	// SeverityWarning is reported but does not abort generation.
	SeverityWarning
)

// Diagnostic codes.
const (
	CodeUnknownDirective  = "unknown-directive"
	CodeBadOption         = "bad-option"
	CodeNotStruct         = "not-a-struct"
	CodeBadField          = "bad-field"
	CodeBadSignature      = "bad-signature"
	CodeMissingMethod     = "missing-method"
	CodeDuplicateCommand  = "duplicate-command"
	CodeDuplicateProperty = "duplicate-property"
	CodeBadNotifyTarget   = "bad-notify-target"
	CodeOrphanDirective   = "orphan-directive"
	CodeReadOnlyNotify    = "readonly-notify"
)

// Diagnostic is a compile-time finding attributable to a source
// location. Error-severity diagnostics abort generation for the class
// they belong to; there is no partial output.
type Diagnostic struct {
	Pos      token.Position
	Code     string
	Severity Severity
	Message  string
}

// Error implements error with the conventional file:line:col prefix.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Pos, d.Code, d.Message)
}

// HasErrors reports whether any diagnostic in diags is error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

func errorf(pos token.Position, code, format string, args ...any) Diagnostic {
	return Diagnostic{Pos: pos, Code: code, Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

func warnf(pos token.Position, code, format string, args ...any) Diagnostic {
	return Diagnostic{Pos: pos, Code: code, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}
