// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command bindgen generates view-model binding code from annotated
// Go source.
//
// Usage:
//
//	bindgen generate [patterns ...]
//	bindgen watch [patterns ...]
//	bindgen version
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/castlebridge/bindgen/internal/cli"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configCandidates(userCfg)

	var root cli.CLI
	ctx := kong.Parse(&root,
		kong.Name("bindgen"),
		kong.Description("View-model binding code generator"),
		kong.UsageOnError(),
		// Flags and env override values loaded from config files.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, err := cli.NewLogger(root.Log.Level)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to set up logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	ctx.Bind(logger)
	ctx.Bind(cli.BuildInfo{Version: version, Commit: commit, Date: date})

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

// configCandidates builds per-format candidate paths. An explicit
// user path is routed to the matching loader by extension and takes
// priority over the working-directory defaults.
func configCandidates(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userPath)
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
		}
	}

	wd, _ := os.Getwd()
	jsonPaths = append(jsonPaths, filepath.Join(wd, ".bindgen.json"))
	yamlPaths = append(yamlPaths,
		filepath.Join(wd, ".bindgen.yaml"),
		filepath.Join(wd, ".bindgen.yml"))
	tomlPaths = append(tomlPaths, filepath.Join(wd, ".bindgen.toml"))
	return
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("BINDGEN_CONFIG")
}
