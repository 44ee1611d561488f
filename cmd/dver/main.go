// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	dver "dver.dev/x/dver/cmd/dver/cmd"
	"dver.dev/x/dver/pkg/assistant"
)

func main() {
	ctx, cancelFn := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancelFn()

	da := assistant.DotnetAssistant{
		Stderr: os.Stderr,
		Stdout: os.Stdout,
		Stdin:  os.Stdin,
		ExitFn: os.Exit,
		OsArgs: os.Args,
	}
	cmd, err := dver.RootCmd(&da)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		da.ExitFn(1)
	}
	if err := cmd.ExecuteContext(ctx); err != nil {
		da.ExitFn(1)
	}
}
