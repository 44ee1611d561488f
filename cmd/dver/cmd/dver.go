// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"dver.dev/x/dver/cmd/dver/cmd/current"
	"dver.dev/x/dver/cmd/dver/cmd/doctor"
	"dver.dev/x/dver/cmd/dver/cmd/install"
	"dver.dev/x/dver/cmd/dver/cmd/list"
	"dver.dev/x/dver/cmd/dver/cmd/remote"
	"dver.dev/x/dver/cmd/dver/cmd/uninstall"
	"dver.dev/x/dver/cmd/dver/cmd/use"
	"dver.dev/x/dver/pkg/assistant"
	"dver.dev/x/dver/pkg/assistantconfig"
	"dver.dev/x/dver/pkg/assistantversion"
	"dver.dev/x/dver/pkg/builtincommand"
	"dver.dev/x/dver/pkg/logging"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

const DverName = "dver"

func RootCmd(da *assistant.DotnetAssistant) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   DverName,
		Short: "a simple .NET SDK version manager",
	}

	defer da.SetOutputStreams(cmd)

	if err := da.Validate(); err != nil {
		return nil, err
	}
	cmd.SetArgs(da.Args())

	if err := logging.InitLogging(); err != nil {
		return nil, err
	}

	config, err := assistantconfig.Get()
	if err != nil {
		return nil, err
	}
	if builtincommand.ShouldEnsureHome(da.OsArgs) {
		if err := config.EnsureDirs(); err != nil {
			return nil, err
		}
	}
	if config.NoColor {
		color.NoColor = true
	}

	cmd.AddCommand(
		current.Cmd(config),
		list.Cmd(config),
		use.Cmd(config),
		install.Cmd(config),
		uninstall.Cmd(config),
		doctor.Cmd(config),
		remote.Cmd(config),
	)

	version, err := yaml.Marshal(assistantversion.Get())
	if err != nil {
		return nil, err
	}
	cmd.Version = string(version)
	cmd.SetVersionTemplate("{{.Version}}")

	return cmd, nil
}
