// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package assistant

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type DotnetAssistant struct {
	Stderr, Stdout, Stdin *os.File
	ExitFn                func(exitCode int)
	// must contain at least one argument, namely the dver binary name, similar to os.Args
	OsArgs []string
}

func (da *DotnetAssistant) Validate() error {
	if len(da.OsArgs) == 0 {
		return fmt.Errorf("DotnetAssistant.OsArgs must contain at least one entry similar to os.Args")
	}
	return nil
}

// Args are the command line arguments without the binary name
func (da *DotnetAssistant) Args() []string {
	if len(da.OsArgs) == 0 {
		return nil
	}
	return da.OsArgs[1:]
}

func (da *DotnetAssistant) SetOutputStreams(cmd *cobra.Command) {
	cmd.SetOut(da.Stdout)
	cmd.SetErr(da.Stderr)
	cmd.SetIn(da.Stdin)

	lo.ForEach(cmd.Commands(), func(sub *cobra.Command, _ int) {
		da.SetOutputStreams(sub)
	})
}
