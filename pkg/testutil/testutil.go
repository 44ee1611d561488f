// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"dver.dev/x/dver/pkg/assistantconfig"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// FakeDotnetOpts describes how the fake dotnet executable answers
type FakeDotnetOpts struct {
	Version         string
	VersionExitCode int
	VersionStderr   string

	ListSdks         string
	ListSdksExitCode int
}

const fakeDotnetScript = `#!/bin/sh
dir=$(dirname "$0")
case "$1" in
  --version)
    cat "$dir/version.out"
    cat "$dir/version.err" >&2
    exit %d
    ;;
  --list-sdks)
    cat "$dir/list-sdks.out"
    exit %d
    ;;
esac
echo "unexpected arguments: $*" >&2
exit 64
`

// FakeDotnet writes a shell script standing in for the dotnet CLI and returns its path.
// Tests using it are skipped on windows.
func FakeDotnet(t *testing.T, opts FakeDotnetOpts) string {
	SkipOnWindows(t)

	dir := t.TempDir()
	files := map[string]string{
		"version.out":   opts.Version + "\n",
		"version.err":   opts.VersionStderr,
		"list-sdks.out": opts.ListSdks,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	p := filepath.Join(dir, "dotnet")
	script := fmt.Sprintf(fakeDotnetScript, opts.VersionExitCode, opts.ListSdksExitCode)
	require.NoError(t, os.WriteFile(p, []byte(script), 0o755))
	return p
}

// MissingDotnet returns a path where no dotnet executable exists
func MissingDotnet(t *testing.T) string {
	return filepath.Join(t.TempDir(), "no-such-dotnet")
}

func SkipOnWindows(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a /bin/sh script")
	}
}

// SdkTree creates <tmp>/dotnet/sdk/<version> for every version and returns the sdk dir
func SdkTree(t *testing.T, versions ...string) string {
	sdkDir := filepath.Join(t.TempDir(), "dotnet", "sdk")
	for _, v := range versions {
		dir := filepath.Join(sdkDir, v)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "dotnet.dll"), []byte(v), 0o644))
	}
	return sdkDir
}

// ListSdksOutput renders versions the way `dotnet --list-sdks` does
func ListSdksOutput(base string, versions ...string) string {
	out := ""
	for _, v := range versions {
		out += fmt.Sprintf("%s [%s]\n", v, base)
	}
	return out
}

type CommonSetupSuite struct {
	suite.Suite
	WorkingDir string
}

func (suite *CommonSetupSuite) SetupTest() {
	// point DVER_HOME and the working dir at fresh temp dirs before every test,
	// otherwise tests would share ~/.dver and write global.json into the source tree.
	t := suite.T()
	t.Setenv(assistantconfig.DverHomeEnvVar, t.TempDir())
	t.Setenv(assistantconfig.NetrcPathEnvVar, filepath.Join(t.TempDir(), "no-netrc"))

	suite.WorkingDir = t.TempDir()
	t.Chdir(suite.WorkingDir)

	color.NoColor = true
}

func Context(t *testing.T) context.Context {
	ctx, stopFn := context.WithCancel(context.Background())
	t.Cleanup(stopFn)
	return ctx
}
