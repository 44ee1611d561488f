// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package installscript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"dver.dev/x/dver/pkg/assistantconfig"
	"dver.dev/x/dver/pkg/fetch"
)

var ErrInstallFailed = errors.New("dotnet installation failed")

// Options are forwarded to dotnet-install as -Channel/-Version/-InstallDir
type Options struct {
	LTS        bool
	Version    string
	InstallDir string
}

// Args returns the dotnet-install arguments. LTS wins over Version.
func (o Options) Args() []string {
	var args []string
	if o.LTS {
		args = append(args, "-Channel", "LTS")
	} else if o.Version != "" {
		args = append(args, "-Version", o.Version)
	}
	if o.InstallDir != "" {
		args = append(args, "-InstallDir", o.InstallDir)
	}
	return args
}

// InstallError carries everything the installer printed when it failed
type InstallError struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("dotnet-install script failed with status %d", e.ExitCode)
}

func (e *InstallError) Unwrap() error {
	return ErrInstallFailed
}

type Installer struct {
	Client *fetch.Client
	// ScriptUrl is where dotnet-install is downloaded from
	ScriptUrl string
	TempDir   string
	GOOS      string
}

func New(config *assistantconfig.Config, client *fetch.Client) *Installer {
	return &Installer{
		Client:    client,
		ScriptUrl: config.InstallScriptUrlFor(runtime.GOOS),
		TempDir:   config.TempDir,
		GOOS:      runtime.GOOS,
	}
}

// Download saves the install script into TempDir under a name unique to this process
func (i *Installer) Download(ctx context.Context) (string, error) {
	content, err := i.Client.Get(ctx, i.ScriptUrl)
	if err != nil {
		return "", fmt.Errorf("failed to download installer script: %w", err)
	}

	scriptPath := filepath.Join(i.TempDir, fmt.Sprintf("%s_%d", assistantconfig.InstallScriptName(i.GOOS), os.Getpid()))
	if err := os.WriteFile(scriptPath, content, 0o644); err != nil {
		return "", err
	}

	if i.GOOS != "windows" {
		if err := os.Chmod(scriptPath, 0o755); err != nil {
			_ = os.Remove(scriptPath)
			return "", err
		}
	}
	return scriptPath, nil
}

// Command returns the interpreter invocation of the script for i.GOOS
func (i *Installer) Command(ctx context.Context, scriptPath string, opts Options) *exec.Cmd {
	var args []string
	var interpreter string
	if i.GOOS == "windows" {
		interpreter = "powershell"
		args = []string{"-NoLogo", "-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-File", scriptPath}
	} else {
		interpreter = "bash"
		args = []string{scriptPath}
	}
	return exec.CommandContext(ctx, interpreter, append(args, opts.Args()...)...)
}

// Install downloads and runs dotnet-install, returning what the script printed.
// The downloaded script is removed whatever the outcome.
func (i *Installer) Install(ctx context.Context, opts Options) (string, error) {
	scriptPath, err := i.Download(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(scriptPath); err != nil {
			slog.Debug("could not remove installer script", "path", scriptPath, "err", err)
		}
	}()

	var stdout, stderr bytes.Buffer
	cmd := i.Command(ctx, scriptPath, opts)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("running installer", "cmd", cmd.String())
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("failed to run installer script: %w", err)
		}
		return "", &InstallError{
			ExitCode: exitErr.ExitCode(),
			Stdout:   strings.TrimSpace(stdout.String()),
			Stderr:   strings.TrimSpace(stderr.String()),
		}
	}
	return stdout.String(), nil
}
