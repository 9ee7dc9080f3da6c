// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package testutil provides the txtar golden-file harness for
// generator tests.
package testutil

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// Case is one parsed golden test case.
type Case struct {
	// Name is the case name, the archive filename without extension.
	Name string

	// Description is the comment block before the first file.
	Description string

	// Options holds values parsed from an "Options: a, b" line in the
	// description, e.g. "no-tables".
	Options []string

	// Input is the contents of "input.go", the annotated source.
	Input []byte

	// Want maps generated file names to expected content.
	Want map[string][]byte
}

// ParseCase parses a txtar archive holding an "input.go" file and one
// or more "want/<filename>" files.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Want:        make(map[string][]byte),
	}
	c.parseOptions()

	for _, f := range ar.Files {
		switch {
		case f.Name == "input.go":
			c.Input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected input.go or want/*)", f.Name)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing input.go in archive")
	}
	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}
	return c, nil
}

// parseOptions extracts values from an "Options: ..." line in the
// description.
func (c *Case) parseOptions() {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Options:") {
			continue
		}
		for _, o := range strings.Split(strings.TrimPrefix(line, "Options:"), ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.Options = append(c.Options, o)
			}
		}
		break
	}
}

// HasOption reports whether the case description named the option.
func (c *Case) HasOption(name string) bool {
	for _, o := range c.Options {
		if o == name {
			return true
		}
	}
	return false
}

// GenerateFunc produces generated files from annotated source.
type GenerateFunc func(input []byte, opts []string) (map[string][]byte, error)

// Run generates from the case input and compares the result against
// the want/* files.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, err := generate(c.Input, c.Options)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}
	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue
		}
		if diff := cmp.Diff(normalizeContent(wantContent), normalizeContent(gotContent)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// normalizeContent trims trailing whitespace per line and trailing
// newlines so editor churn in archives does not fail comparisons.
func normalizeContent(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive rebuilds an archive with freshly generated want/*
// content, keeping the comment and input.go. Used with an -update
// flag in golden tests.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{Comment: ar.Comment}
	for _, f := range ar.Files {
		if f.Name == "input.go" {
			result.Files = append(result.Files, f)
			break
		}
	}

	var names []string
	for name := range got {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		content := got[name]
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{Name: "want/" + name, Data: content})
	}
	return result
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}

// LoadTestCases loads every *.txtar case from dir, sorted by name.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}
		cases = append(cases, c)
	}

	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases
}

// StripHeader removes the leading comment header from generated code
// so tests compare just the meaningful declarations.
func StripHeader(content []byte) []byte {
	lines := bytes.Split(content, []byte("\n"))
	var result [][]byte
	inHeader := true
	for _, line := range lines {
		if inHeader {
			s := string(line)
			if strings.HasPrefix(s, "//") || s == "" {
				continue
			}
			inHeader = false
		}
		result = append(result, line)
	}
	return bytes.Join(result, []byte("\n"))
}
