// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package dotnet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"dver.dev/x/dver/pkg/inventory"
)

var ErrListSdks = errors.New("failed to list SDKs")

// Tool is what dver needs from the dotnet CLI
type Tool interface {
	// Version returns the output of `dotnet --version`, trimmed
	Version(ctx context.Context) (string, error)
	// ListSdks returns the installed SDKs reported by `dotnet --list-sdks`
	ListSdks(ctx context.Context) ([]inventory.InstalledSdk, error)
}

// CommandError is returned when dotnet ran but exited unsuccessfully
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("dotnet %s exited with code %d", strings.Join(e.Args, " "), e.ExitCode)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// CLI runs the dotnet executable at Path
type CLI struct {
	Path string
}

func New(path string) *CLI {
	return &CLI{Path: path}
}

func (c *CLI) Version(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (c *CLI) ListSdks(ctx context.Context) ([]inventory.InstalledSdk, error) {
	out, err := c.run(ctx, "--list-sdks")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListSdks, err)
	}
	return inventory.Parse(out), nil
}

func (c *CLI) run(ctx context.Context, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running dotnet", "path", c.Path, "args", args)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return "", err
	}
	return stdout.String(), nil
}

var _ Tool = (*CLI)(nil)
