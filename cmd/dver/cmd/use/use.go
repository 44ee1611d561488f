// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package use

import (
	"fmt"

	"dver.dev/x/dver/pkg/assistantconfig"
	"dver.dev/x/dver/pkg/builtincommand"
	"dver.dev/x/dver/pkg/globaljson"
	"github.com/spf13/cobra"
)

func Cmd(config *assistantconfig.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <version>", string(builtincommand.Use)),
		Short: "pin the SDK version of the working directory via global.json",
		Long: `pin the SDK version of the working directory via global.json

	an existing global.json is copied to global.json.bak first.
	the version is written as given; it is not checked against installed SDKs.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			result, err := globaljson.Write(config.WorkingDir, args[0])
			if err != nil {
				return err
			}

			cmd.Printf("SDK version set to %s in %q\n", args[0], result.Path)
			return nil
		},
	}

	return cmd
}
