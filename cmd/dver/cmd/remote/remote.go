// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package remote

import (
	"fmt"

	"dver.dev/x/dver/pkg/assistantconfig"
	"dver.dev/x/dver/pkg/builtincommand"
	"dver.dev/x/dver/pkg/dotnet"
	"dver.dev/x/dver/pkg/fetch"
	"dver.dev/x/dver/pkg/inventory"
	"dver.dev/x/dver/pkg/releases"
	"dver.dev/x/dver/pkg/versions"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func Cmd(config *assistantconfig.Config) *cobra.Command {
	var lts bool
	var output string

	cmd := &cobra.Command{
		Use:   string(builtincommand.Remote),
		Short: "list SDK versions published by Microsoft",
		Long: `list SDK versions published by Microsoft

	versions are tagged with their channel and release type.
	installed versions are listed last, the active one is marked with '*'.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			client, err := fetch.NewFromConfig(config)
			if err != nil {
				return err
			}

			channels, err := releases.List(cmd.Context(), client, config.ReleasesIndexUrl, lts)
			if err != nil {
				return err
			}
			for _, c := range channels {
				if c.Err != nil {
					cmd.PrintErrln(color.YellowString("Failed to fetch %s: %s", c.Channel.ReleasesJson, c.Err))
				}
			}

			// installed and active versions are best effort, dotnet may not be installed yet
			var installed []string
			tool := dotnet.New(config.DotnetPath)
			if sdks, err := tool.ListSdks(cmd.Context()); err == nil {
				installed = inventory.Versions(sdks)
			}
			active, _ := tool.Version(cmd.Context())

			out, err := versions.New(active, installed, versions.RemoteTags(channels)).Format(output)
			if err != nil {
				return fmt.Errorf("failed to render remote versions: %w", err)
			}
			if out != "" {
				cmd.Println(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&lts, "lts", false, "show only LTS versions")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: json, table, plain")
	return cmd
}
