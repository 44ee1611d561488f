// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"dver.dev/x/dver/pkg/assistantconfig"
)

const settingsPage = "dver_configuration"

// setting is one row of the configuration reference. YamlKey is empty for
// environment-only settings.
type setting struct {
	EnvVar      string
	YamlKey     string
	Default     string
	Description string
}

var settings = []setting{
	{
		EnvVar:      assistantconfig.DverHomeEnvVar,
		Default:     "$HOME/.dver (%APPDATA%\\dver on windows)",
		Description: "Directory holding " + assistantconfig.DverConfigFileName + " and the install lock.",
	},
	{
		EnvVar:      assistantconfig.LogLevelEnvVar,
		Default:     "info",
		Description: "One of debug, info, warn, error.",
	},
	{
		EnvVar:      assistantconfig.LogFormatEnvVar,
		Default:     "text",
		Description: "One of text, json.",
	},
	{
		EnvVar:      assistantconfig.DotnetPathEnvVar,
		YamlKey:     "dotnet-path",
		Default:     assistantconfig.DefaultDotnetPath,
		Description: "dotnet executable that is queried for installed SDKs.",
	},
	{
		EnvVar:      assistantconfig.InstallScriptUrlEnvVar,
		YamlKey:     "install-script-url",
		Default:     assistantconfig.InstallScriptBaseUrl + "dotnet-install.{sh,ps1}",
		Description: "Where the dotnet-install script is downloaded from.",
	},
	{
		EnvVar:      assistantconfig.ReleasesIndexUrlEnvVar,
		YamlKey:     "releases-index-url",
		Default:     assistantconfig.DefaultReleasesIndexUrl,
		Description: "releases-index.json used by `dver remote`.",
	},
	{
		EnvVar:      assistantconfig.NetrcPathEnvVar,
		YamlKey:     "netrc-path",
		Default:     "$HOME/.netrc when it exists",
		Description: "netrc file whose machine entries authenticate downloads.",
	},
	{
		EnvVar:      assistantconfig.InstallDirEnvVar,
		YamlKey:     "install-dir",
		Description: "Default for `dver install --install-path`.",
	},
	{
		EnvVar:      assistantconfig.NoColorEnvVar,
		YamlKey:     "no-color",
		Default:     "false",
		Description: "Disables colored output.",
	},
}

func writeSettingsMarkdown(w io.Writer, rows []setting) error {
	var b strings.Builder
	b.WriteString("Settings are read from `" + assistantconfig.DverConfigFileName + "` in the dver home directory. ")
	b.WriteString("An environment variable takes precedence over the matching key.\n\n")
	b.WriteString("| Environment variable | " + assistantconfig.DverConfigFileName + " key | Default | Description |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, s := range rows {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n",
			s.EnvVar, orDash(s.YamlKey, "`%s`"), orDash(s.Default, "`%s`"), strings.ReplaceAll(s.Description, "|", "\\|"))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSettingsRst(w io.Writer, rows []setting) error {
	var b strings.Builder
	b.WriteString("Settings are read from ``" + assistantconfig.DverConfigFileName + "`` in the dver home directory. ")
	b.WriteString("An environment variable takes precedence over the matching key.\n\n")
	for _, s := range rows {
		fmt.Fprintf(&b, "``%s``\n", s.EnvVar)
		fmt.Fprintf(&b, "   %s\n\n", strings.ReplaceAll(s.Description, "`", "``"))
		if s.YamlKey != "" {
			fmt.Fprintf(&b, "   Key: ``%s``\n\n", s.YamlKey)
		}
		if s.Default != "" {
			fmt.Fprintf(&b, "   Default: ``%s``\n\n", s.Default)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func orDash(v, format string) string {
	if v == "" {
		return "-"
	}
	return fmt.Sprintf(format, v)
}
