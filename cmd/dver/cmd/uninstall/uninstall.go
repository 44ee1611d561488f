// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package uninstall

import (
	"fmt"

	"dver.dev/x/dver/pkg/assistantconfig"
	"dver.dev/x/dver/pkg/builtincommand"
	"dver.dev/x/dver/pkg/dotnet"
	"dver.dev/x/dver/pkg/sdkremove"
	"dver.dev/x/dver/pkg/sdkselector"
	"dver.dev/x/dver/pkg/utils"
	"github.com/spf13/cobra"
)

func Cmd(config *assistantconfig.Config) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [version]", string(builtincommand.UnInstall)),
		Short: "uninstall dotnet SDK versions",
		Long: `uninstall dotnet SDK versions

	version is either a full version (8.0.406) or a major version (8),
	which removes every SDK of that major version. --all removes every SDK.
	only directories beneath the SDK roots reported by dotnet are removed.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			version := ""
			if len(args) == 1 {
				version = args[0]
			}
			selector := sdkselector.New(version, all)

			return utils.WithInstallLock(cmd.Context(), config.LockFilePath, func() error {
				sdks, err := dotnet.New(config.DotnetPath).ListSdks(cmd.Context())
				if err != nil {
					return err
				}

				sdkremove.Remove(sdks, selector).Print(cmd)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "remove all SDKs")
	return cmd
}
