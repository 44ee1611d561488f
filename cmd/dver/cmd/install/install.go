// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package install

import (
	"errors"
	"fmt"
	"strings"

	"dver.dev/x/dver/pkg/assistantconfig"
	"dver.dev/x/dver/pkg/builtincommand"
	"dver.dev/x/dver/pkg/dotnet"
	"dver.dev/x/dver/pkg/fetch"
	"dver.dev/x/dver/pkg/installscript"
	"dver.dev/x/dver/pkg/utils"
	"github.com/spf13/cobra"
)

func Cmd(config *assistantconfig.Config) *cobra.Command {
	var lts bool
	var version, installPath string

	cmd := &cobra.Command{
		Use:   string(builtincommand.Install),
		Short: "install dotnet if it is not installed yet",
		Long: `install dotnet if it is not installed yet

	the official dotnet-install script is downloaded and run.
	--lts takes precedence over --version.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if current, err := dotnet.New(config.DotnetPath).Version(cmd.Context()); err == nil {
				cmd.Println("dotnet is already installed.")
				cmd.Printf("Current version: %s\n", current)
				return nil
			}

			opts := installscript.Options{
				LTS:        lts,
				Version:    version,
				InstallDir: installDir(config, installPath),
			}

			client, err := fetch.NewFromConfig(config)
			if err != nil {
				return err
			}
			installer := installscript.New(config, client)

			cmd.Println("Installing dotnet...")
			var out string
			err = utils.WithInstallLock(cmd.Context(), config.LockFilePath, func() error {
				var err error
				out, err = installer.Install(cmd.Context(), opts)
				return err
			})
			if err != nil {
				var installErr *installscript.InstallError
				if errors.As(err, &installErr) {
					printInstallError(cmd, installErr)
				}
				return fmt.Errorf("failed to install dotnet: %w", err)
			}

			if out = strings.TrimSpace(out); out != "" {
				cmd.Println(out)
			}
			cmd.Println("dotnet installation completed.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&lts, "lts", false, "install the latest LTS version")
	cmd.Flags().StringVar(&version, "version", "", "specific version to install")
	cmd.Flags().StringVar(&installPath, "install-path", "", "the path to install the SDK to")
	return cmd
}

// installDir is --install-path, else the configured install-dir, relative to the working dir
func installDir(config *assistantconfig.Config, flag string) string {
	p := flag
	if p == "" {
		p = config.InstallDir
	}
	if p == "" {
		return ""
	}
	return utils.ResolvePath(config.WorkingDir, p)
}

func printInstallError(p utils.RawPrinter, err *installscript.InstallError) {
	p.PrintErrf("dotnet-install script failed with status: %d\n", err.ExitCode)
	if stderr := strings.TrimSpace(err.Stderr); stderr != "" {
		p.PrintErrln(stderr)
	}
	if stdout := strings.TrimSpace(err.Stdout); stdout != "" {
		p.PrintErrln(stdout)
	}
}
