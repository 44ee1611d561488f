// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sdkremove

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"dver.dev/x/dver/pkg/inventory"
	"dver.dev/x/dver/pkg/sdkselector"
	"dver.dev/x/dver/pkg/testutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func printed(r *Report) (string, string) {
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	r.Print(cmd)
	return stdout.String(), stderr.String()
}

func TestRemoveMajorPrefix(t *testing.T) {
	sdkDir := testutil.SdkTree(t, "8.0.406", "9.0.100")
	sdks := inventory.Parse(testutil.ListSdksOutput(sdkDir, "8.0.406", "9.0.100"))

	report := Remove(sdks, sdkselector.New("8", false))

	assert.Equal(t, []string{sdkDir}, report.Roots)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, Removed, report.Outcomes[0].Status)
	assert.NoDirExists(t, filepath.Join(sdkDir, "8.0.406"))
	assert.DirExists(t, filepath.Join(sdkDir, "9.0.100"))

	stdout, stderr := printed(report)
	assert.Equal(t, "Removed 8.0.406\n", stdout)
	assert.Empty(t, stderr)
}

func TestRemoveWithoutSelectorIsNoop(t *testing.T) {
	sdkDir := testutil.SdkTree(t, "8.0.406", "9.0.100")
	sdks := inventory.Parse(testutil.ListSdksOutput(sdkDir, "8.0.406", "9.0.100"))

	report := Remove(sdks, sdkselector.New("", false))

	assert.True(t, report.NothingMatched())
	assert.DirExists(t, filepath.Join(sdkDir, "8.0.406"))
	assert.DirExists(t, filepath.Join(sdkDir, "9.0.100"))

	stdout, stderr := printed(report)
	assert.Equal(t, NoMatchNotice+"\n", stdout)
	assert.Equal(t, MissingSelectorNotice+"\n", stderr)
}

func TestRemoveNoMatch(t *testing.T) {
	sdkDir := testutil.SdkTree(t, "8.0.406")
	sdks := inventory.Parse(testutil.ListSdksOutput(sdkDir, "8.0.406"))

	report := Remove(sdks, sdkselector.New("8.0", false))

	assert.True(t, report.NothingMatched())
	assert.DirExists(t, filepath.Join(sdkDir, "8.0.406"))
	stdout, stderr := printed(report)
	assert.Equal(t, NoMatchNotice+"\n", stdout)
	assert.Empty(t, stderr)
}

func TestRemoveAlreadyAbsentIsNotFound(t *testing.T) {
	sdkDir := testutil.SdkTree(t, "9.0.100")
	sdks := inventory.Parse(testutil.ListSdksOutput(sdkDir, "8.0.406", "9.0.100"))

	report := Remove(sdks, sdkselector.New("", true))

	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, NotFound, report.Outcomes[0].Status)
	assert.Equal(t, Removed, report.Outcomes[1].Status)
	assert.Equal(t, 1, report.Count(Removed))
	assert.NoDirExists(t, filepath.Join(sdkDir, "9.0.100"))

	stdout, _ := printed(report)
	assert.Equal(t, "Directory for 8.0.406 not found\nRemoved 9.0.100\n", stdout)

	// running it again removes nothing and still doesn't fail
	again := Remove(sdks, sdkselector.New("", true))
	assert.Equal(t, 2, again.Count(NotFound))
}

func TestRemoveDuplicateEntries(t *testing.T) {
	sdkDir := testutil.SdkTree(t, "8.0.406")
	sdks := inventory.Parse(testutil.ListSdksOutput(sdkDir, "8.0.406", "8.0.406"))

	report := Remove(sdks, sdkselector.New("8.0.406", false))

	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, Removed, report.Outcomes[0].Status)
	assert.Equal(t, NotFound, report.Outcomes[1].Status)
}

func TestRootsCoverWholeInventory(t *testing.T) {
	first := testutil.SdkTree(t, "8.0.406")
	second := testutil.SdkTree(t, "9.0.100")
	sdks := append(
		inventory.Parse(testutil.ListSdksOutput(first, "8.0.406")),
		inventory.Parse(testutil.ListSdksOutput(second, "9.0.100"))...,
	)

	report := Remove(sdks, sdkselector.New("8", false))

	assert.ElementsMatch(t, []string{first, second}, report.Roots)
	assert.DirExists(t, filepath.Join(second, "9.0.100"))
}

func TestTargetOutsideRootsIsSkipped(t *testing.T) {
	sdkDir := testutil.SdkTree(t, "8.0.406")
	outside := testutil.SdkTree(t, "6.0.428")
	targets := []inventory.InstalledSdk{
		{Version: "6.0.428", InstallPath: filepath.Join(outside, "6.0.428")},
		{Version: "8.0.406", InstallPath: filepath.Join(sdkDir, "8.0.406")},
	}

	outcomes := removeTargets(targets, []string{sdkDir})

	require.Len(t, outcomes, 2)
	assert.Equal(t, Skipped, outcomes[0].Status)
	assert.Equal(t, Removed, outcomes[1].Status)
	assert.DirExists(t, filepath.Join(outside, "6.0.428"))

	_, stderr := printed(&Report{Outcomes: outcomes, Selector: sdkselector.New("", true)})
	assert.Contains(t, stderr, "Skipping 6.0.428")
	assert.Contains(t, stderr, "outside known SDK roots")
}

func TestFailureDoesNotStopBatch(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("relies on unix permissions, which root ignores")
	}
	sdkDir := testutil.SdkTree(t, "8.0.406", "8.0.407")
	locked := filepath.Join(sdkDir, "8.0.406")
	nested := filepath.Join(locked, "nested")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "f"), nil, 0o644))
	require.NoError(t, os.Chmod(nested, 0o555))
	t.Cleanup(func() { _ = os.Chmod(nested, 0o755) })

	sdks := inventory.Parse(testutil.ListSdksOutput(sdkDir, "8.0.406", "8.0.407"))
	report := Remove(sdks, sdkselector.New("8", false))

	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, Failed, report.Outcomes[0].Status)
	assert.Error(t, report.Outcomes[0].Err)
	assert.Equal(t, Removed, report.Outcomes[1].Status)

	_, stderr := printed(report)
	assert.Contains(t, stderr, "Failed to remove 8.0.406")
}

func TestRegularFileAtInstallPathFails(t *testing.T) {
	sdkDir := testutil.SdkTree(t, "8.0.407")
	file := filepath.Join(sdkDir, "8.0.406")
	require.NoError(t, os.WriteFile(file, []byte("not an sdk"), 0o644))

	sdks := inventory.Parse(testutil.ListSdksOutput(sdkDir, "8.0.406", "8.0.407"))
	report := Remove(sdks, sdkselector.New("8", false))

	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, Failed, report.Outcomes[0].Status)
	assert.ErrorIs(t, report.Outcomes[0].Err, ErrNotDirectory)
	assert.FileExists(t, file)
	assert.Equal(t, Removed, report.Outcomes[1].Status)

	stdout, stderr := printed(report)
	assert.Contains(t, stderr, "Failed to remove 8.0.406: not a directory")
	assert.NotContains(t, stdout, "Directory for 8.0.406 not found")
}
