// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"encoding/json"
	"fmt"
	"os"

	"dver.dev/x/dver/pkg/assistantconfig"
	"dver.dev/x/dver/pkg/builtincommand"
	"dver.dev/x/dver/pkg/doctor"
	"dver.dev/x/dver/pkg/dotnet"
	"github.com/spf13/cobra"
)

func Cmd(config *assistantconfig.Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   string(builtincommand.Doctor),
		Short: "check for common issues",
		Long: `check for common issues

	problems are reported but never make the command fail.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			report := doctor.Run(cmd.Context(), &doctor.Env{
				Tool:       dotnet.New(config.DotnetPath),
				DotnetPath: config.DotnetPath,
				PathEnv:    os.Getenv("PATH"),
				HomeDir:    config.UserHomeDir,
				WorkingDir: config.WorkingDir,
			})

			switch output {
			case "text":
				report.Print(cmd)
			case "json":
				data, err := json.MarshalIndent(report, "", "    ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
			default:
				return fmt.Errorf("output format not supported: %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: json, text")
	return cmd
}
