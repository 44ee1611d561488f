// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package installscript

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"dver.dev/x/dver/pkg/fetch"
	"dver.dev/x/dver/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"nothing", Options{}, nil},
		{"lts", Options{LTS: true}, []string{"-Channel", "LTS"}},
		{"version", Options{Version: "8.0.406"}, []string{"-Version", "8.0.406"}},
		{"lts wins over version", Options{LTS: true, Version: "8.0.406"}, []string{"-Channel", "LTS"}},
		{"install dir", Options{Version: "9.0.100", InstallDir: "/opt/dotnet"}, []string{"-Version", "9.0.100", "-InstallDir", "/opt/dotnet"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.opts.Args())
		})
	}
}

func TestCommand(t *testing.T) {
	ctx := testutil.Context(t)

	unix := (&Installer{GOOS: "linux"}).Command(ctx, "/tmp/dotnet-install.sh_1", Options{LTS: true})
	assert.Equal(t, "bash", filepath.Base(unix.Path))
	assert.Equal(t, []string{"bash", "/tmp/dotnet-install.sh_1", "-Channel", "LTS"}, unix.Args)

	windows := (&Installer{GOOS: "windows"}).Command(ctx, `C:\Temp\dotnet-install.ps1_1`, Options{Version: "8.0.406"})
	assert.Equal(t, []string{
		"powershell", "-NoLogo", "-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass",
		"-File", `C:\Temp\dotnet-install.ps1_1`, "-Version", "8.0.406",
	}, windows.Args)
}

func scriptServer(t *testing.T, script string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(script))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newInstaller(t *testing.T, url string) *Installer {
	return &Installer{
		Client:    fetch.New(http.DefaultClient, "test"),
		ScriptUrl: url,
		TempDir:   t.TempDir(),
		GOOS:      "linux",
	}
}

func TestDownload(t *testing.T) {
	testutil.SkipOnWindows(t)
	ctx := testutil.Context(t)
	srv := scriptServer(t, "#!/bin/bash\n")

	i := newInstaller(t, srv.URL)
	p, err := i.Download(ctx)
	require.NoError(t, err)

	assert.Equal(t, i.TempDir, filepath.Dir(p))
	assert.Equal(t, fmt.Sprintf("dotnet-install.sh_%d", os.Getpid()), filepath.Base(p))
	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestDownloadHttpError(t *testing.T) {
	ctx := testutil.Context(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	_, err := newInstaller(t, srv.URL).Download(ctx)
	var statusErr *fetch.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func requireBash(t *testing.T) {
	testutil.SkipOnWindows(t)
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available")
	}
}

func TestInstallSuccess(t *testing.T) {
	requireBash(t)
	ctx := testutil.Context(t)
	srv := scriptServer(t, "echo \"installing with $*\"\n")

	i := newInstaller(t, srv.URL)
	out, err := i.Install(ctx, Options{Version: "9.0.100", InstallDir: "/opt/dotnet"})
	require.NoError(t, err)
	assert.Equal(t, "installing with -Version 9.0.100 -InstallDir /opt/dotnet", strings.TrimSpace(out))

	entries, err := os.ReadDir(i.TempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "installer script should be removed")
}

func TestInstallFailure(t *testing.T) {
	requireBash(t)
	ctx := testutil.Context(t)
	srv := scriptServer(t, "echo partial\necho 'Could not find version' >&2\nexit 3\n")

	i := newInstaller(t, srv.URL)
	_, err := i.Install(ctx, Options{Version: "1.2.3"})

	var installErr *InstallError
	require.ErrorAs(t, err, &installErr)
	assert.ErrorIs(t, err, ErrInstallFailed)
	assert.Equal(t, 3, installErr.ExitCode)
	assert.Equal(t, "partial", installErr.Stdout)
	assert.Equal(t, "Could not find version", installErr.Stderr)

	entries, err := os.ReadDir(i.TempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "installer script should be removed on failure too")
}
