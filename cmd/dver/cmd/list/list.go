// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"dver.dev/x/dver/pkg/assistantconfig"
	"dver.dev/x/dver/pkg/builtincommand"
	"dver.dev/x/dver/pkg/dotnet"
	"dver.dev/x/dver/pkg/inventory"
	"dver.dev/x/dver/pkg/versions"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func Cmd(config *assistantconfig.Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   string(builtincommand.List),
		Short: "list installed dotnet SDK versions",
		Long: `list installed dotnet SDK versions

	the active version, as reported by 'dotnet --version', is marked with '*'.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			tool := dotnet.New(config.DotnetPath)
			sdks, err := tool.ListSdks(cmd.Context())
			if err != nil {
				return err
			}
			installed := inventory.Versions(sdks)
			if len(installed) == 0 && output != "json" {
				cmd.PrintErrln("No SDKs installed.")
				return nil
			}

			// only mark the active version when it is one of the listed ones
			active, _ := tool.Version(cmd.Context())
			if !lo.Contains(installed, active) {
				active = ""
			}

			out, err := versions.New(active, installed, nil).Format(output)
			if err != nil {
				return err
			}
			if out != "" {
				cmd.Println(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: json, table, plain")
	return cmd
}
