// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"dver.dev/x/dver/pkg/globaljson"
	"dver.dev/x/dver/pkg/inventory"
	"dver.dev/x/dver/pkg/testutil"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

type fakeTool struct {
	version    string
	versionErr error
	sdks       []inventory.InstalledSdk
	sdksErr    error
}

func (f *fakeTool) Version(context.Context) (string, error) {
	return f.version, f.versionErr
}

func (f *fakeTool) ListSdks(context.Context) ([]inventory.InstalledSdk, error) {
	return f.sdks, f.sdksErr
}

func sdks(versions ...string) []inventory.InstalledSdk {
	return lo.Map(versions, func(v string, _ int) inventory.InstalledSdk {
		return inventory.InstalledSdk{Version: v, InstallPath: filepath.Join("/usr/share/dotnet/sdk", v)}
	})
}

func stubDiskSpace(t *testing.T, result CheckResult) {
	orig := DiskSpaceChecker
	t.Cleanup(func() { DiskSpaceChecker = orig })
	DiskSpaceChecker = func(string) CheckResult { return result }
}

func stubLookPath(t *testing.T) {
	orig := LookPath
	t.Cleanup(func() { LookPath = orig })
	LookPath = func(file string) (string, error) { return "/usr/bin/" + file, nil }
}

func statuses(r *Report) map[string]Status {
	return lo.SliceToMap(r.Checks, func(c CheckResult) (string, Status) {
		return c.Name, c.Status
	})
}

func TestRunDotnetMissing(t *testing.T) {
	report := Run(testutil.Context(t), &Env{
		Tool:       &fakeTool{versionErr: errors.New("exec: not found")},
		DotnetPath: "dotnet",
	})

	assert.False(t, report.Healthy)
	require.Len(t, report.Checks, 1)
	assert.Equal(t, StatusError, report.Checks[0].Status)
	assert.Contains(t, report.Checks[0].Detail, "dotnet command not found")
}

func TestRunHealthy(t *testing.T) {
	stubLookPath(t)
	stubDiskSpace(t, CheckResult{Name: "Disk", Status: StatusOk, Detail: "50.0 GB free"})

	home := t.TempDir()
	wd := t.TempDir()
	_, err := globaljson.Write(wd, "8.0.406")
	require.NoError(t, err)

	report := Run(testutil.Context(t), &Env{
		Tool:       &fakeTool{version: "8.0.406", sdks: sdks("8.0.406", "9.0.100")},
		DotnetPath: "dotnet",
		PathEnv:    strings.Join([]string{filepath.Join(home, "bin"), filepath.Join(home, ".dotnet")}, string(filepath.ListSeparator)),
		HomeDir:    home,
		WorkingDir: wd,
	})

	assert.True(t, report.Healthy)
	assert.Equal(t, map[string]Status{
		"dotnet":      StatusOk,
		"PATH":        StatusOk,
		"SDKs":        StatusOk,
		"global.json": StatusOk,
		"Disk":        StatusOk,
	}, statuses(report))
	assert.Equal(t, "/usr/bin/dotnet (8.0.406)", report.Checks[0].Detail)
	assert.Equal(t, "2 installed", report.Checks[2].Detail)
	assert.Equal(t, "8.0.406", report.Checks[3].Detail)
}

func TestRunWarnings(t *testing.T) {
	stubLookPath(t)
	stubDiskSpace(t, CheckResult{Name: "Disk", Status: StatusWarning, Detail: "0.1 GB free"})

	wd := t.TempDir()
	_, err := globaljson.Write(wd, "7.0.100")
	require.NoError(t, err)

	report := Run(testutil.Context(t), &Env{
		Tool:       &fakeTool{version: "8.0.406"},
		DotnetPath: "dotnet",
		PathEnv:    "/usr/bin",
		HomeDir:    t.TempDir(),
		WorkingDir: wd,
	})

	assert.True(t, report.Healthy)
	assert.Equal(t, map[string]Status{
		"dotnet":      StatusOk,
		"PATH":        StatusWarning,
		"SDKs":        StatusWarning,
		"global.json": StatusWarning,
		"Disk":        StatusWarning,
	}, statuses(report))
	assert.Equal(t, "7.0.100 (not installed)", report.Checks[3].Detail)
}

func TestRunListFailureIsWarning(t *testing.T) {
	stubLookPath(t)
	stubDiskSpace(t, CheckResult{Name: "Disk", Status: StatusOk})

	report := Run(testutil.Context(t), &Env{
		Tool:       &fakeTool{version: "8.0.406", sdksErr: errors.New("boom")},
		DotnetPath: "dotnet",
		WorkingDir: t.TempDir(),
	})

	assert.True(t, report.Healthy)
	assert.Equal(t, StatusWarning, statuses(report)["SDKs"])
	// no pin, nothing to compare against
	assert.Equal(t, StatusOk, statuses(report)["global.json"])
}

func TestDiskSpaceResult(t *testing.T) {
	assert.Equal(t, StatusWarning, diskSpaceResult("/tmp", 512<<20).Status)
	assert.Equal(t, StatusOk, diskSpaceResult("/tmp", 2<<30).Status)
	assert.Equal(t, "2.0 GB free in /tmp", diskSpaceResult("/tmp", 2<<30).Detail)
}

func TestDiskSpaceTarget(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, diskSpaceTarget(dir))
	assert.Equal(t, dir, diskSpaceTarget(filepath.Join(dir, "missing")))
}

func TestPrint(t *testing.T) {
	report := &Report{
		Healthy: false,
		Checks: []CheckResult{
			{Name: "dotnet", Status: StatusOk, Detail: "/usr/bin/dotnet (8.0.406)"},
			{Name: "PATH", Status: StatusWarning, Detail: "not in PATH"},
			{Name: "Disk", Status: StatusError, Detail: "broken"},
		},
	}

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	report.Print(cmd)

	assert.Contains(t, out.String(), "Checking for common issues...")
	assert.Contains(t, out.String(), "  ✓ dotnet       /usr/bin/dotnet (8.0.406)\n")
	assert.Contains(t, out.String(), "  ⚠ PATH         not in PATH\n")
	assert.Contains(t, out.String(), "  ✗ Disk         broken\n")
	assert.Contains(t, out.String(), "Problems found (1 error, 1 warning).")
}

func TestPrintAllGood(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	(&Report{Healthy: true, Checks: []CheckResult{{Name: "dotnet", Status: StatusOk}}}).Print(cmd)
	assert.Contains(t, out.String(), "Everything looks good.")
}
