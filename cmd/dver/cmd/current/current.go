// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package current

import (
	"dver.dev/x/dver/pkg/assistantconfig"
	"dver.dev/x/dver/pkg/builtincommand"
	"dver.dev/x/dver/pkg/dotnet"
	"dver.dev/x/dver/pkg/globaljson"
	"github.com/spf13/cobra"
)

func Cmd(config *assistantconfig.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(builtincommand.Current),
		Short: "show the active dotnet SDK version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			version, err := dotnet.New(config.DotnetPath).Version(cmd.Context())
			if err != nil {
				cmd.PrintErrf("Failed to get current dotnet version: %s\n", err)
			} else {
				cmd.Printf("Current dotnet version: %s\n", version)
			}

			doc, ok, err := globaljson.Read(config.WorkingDir)
			if err != nil {
				cmd.PrintErrf("Could not read %s: %s\n", globaljson.FileName, err)
				return nil
			}
			if ok && doc.Sdk.Version != "" {
				cmd.Printf("Pinned by %s: %s\n", globaljson.FileName, doc.Sdk.Version)
			}
			return nil
		},
	}

	return cmd
}
