// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"dver.dev/x/dver/pkg/dotnet"
	"dver.dev/x/dver/pkg/globaljson"
	"dver.dev/x/dver/pkg/inventory"
	"dver.dev/x/dver/pkg/utils"
	"github.com/fatih/color"
	"github.com/samber/lo"
)

type Status string

const (
	StatusOk      Status = "ok"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

const minFreeBytes = 1 << 30

type CheckResult struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Detail string `json:"detail"`
}

type Report struct {
	Healthy bool          `json:"healthy"`
	Checks  []CheckResult `json:"checks"`
}

// Env is what the checks look at
type Env struct {
	Tool       dotnet.Tool
	DotnetPath string
	PathEnv    string
	HomeDir    string
	WorkingDir string
}

// replaceable in tests
var (
	LookPath         = exec.LookPath
	DiskSpaceChecker = checkDiskSpace
)

// Run runs all checks. When dotnet itself is unusable the remaining checks are skipped.
func Run(ctx context.Context, env *Env) *Report {
	checks := []CheckResult{checkDotnet(ctx, env)}

	if checks[0].Status == StatusOk {
		sdksCheck, sdks := checkSdks(ctx, env)
		checks = append(checks,
			checkPath(env),
			sdksCheck,
			checkPin(env, sdks),
			DiskSpaceChecker(env.HomeDir),
		)
	}

	return &Report{
		Healthy: !lo.ContainsBy(checks, func(c CheckResult) bool { return c.Status == StatusError }),
		Checks:  checks,
	}
}

func checkDotnet(ctx context.Context, env *Env) CheckResult {
	version, err := env.Tool.Version(ctx)
	if err != nil {
		return CheckResult{
			Name:   "dotnet",
			Status: StatusError,
			Detail: "dotnet command not found. Please install .NET and ensure PATH is correct.",
		}
	}

	location := env.DotnetPath
	if p, err := LookPath(env.DotnetPath); err == nil {
		location = p
	}
	return CheckResult{
		Name:   "dotnet",
		Status: StatusOk,
		Detail: fmt.Sprintf("%s (%s)", location, version),
	}
}

func checkPath(env *Env) CheckResult {
	dotnetDir := filepath.Join(env.HomeDir, ".dotnet")
	inPath := lo.ContainsBy(filepath.SplitList(env.PathEnv), func(p string) bool {
		return p != "" && filepath.Clean(p) == dotnetDir
	})

	if !inPath {
		return CheckResult{
			Name:   "PATH",
			Status: StatusWarning,
			Detail: ".NET SDK installation directory (~/.dotnet) might not be in PATH",
		}
	}
	return CheckResult{
		Name:   "PATH",
		Status: StatusOk,
		Detail: ".NET SDK installation directory is in PATH",
	}
}

func checkSdks(ctx context.Context, env *Env) (CheckResult, []inventory.InstalledSdk) {
	installed, err := env.Tool.ListSdks(ctx)
	if err != nil {
		return CheckResult{
			Name:   "SDKs",
			Status: StatusWarning,
			Detail: fmt.Sprintf("could not list: %s", err),
		}, nil
	}

	count := len(inventory.Versions(installed))
	if count == 0 {
		return CheckResult{Name: "SDKs", Status: StatusWarning, Detail: "0 installed"}, installed
	}
	return CheckResult{Name: "SDKs", Status: StatusOk, Detail: fmt.Sprintf("%d installed", count)}, installed
}

func checkPin(env *Env, sdks []inventory.InstalledSdk) CheckResult {
	doc, ok, err := globaljson.Read(env.WorkingDir)
	switch {
	case err != nil:
		return CheckResult{
			Name:   "global.json",
			Status: StatusWarning,
			Detail: fmt.Sprintf("could not read: %s", err),
		}
	case !ok || doc.Sdk.Version == "":
		return CheckResult{Name: "global.json", Status: StatusOk, Detail: "no pin in working directory"}
	case !lo.Contains(inventory.Versions(sdks), doc.Sdk.Version):
		return CheckResult{
			Name:   "global.json",
			Status: StatusWarning,
			Detail: fmt.Sprintf("%s (not installed)", doc.Sdk.Version),
		}
	default:
		return CheckResult{Name: "global.json", Status: StatusOk, Detail: doc.Sdk.Version}
	}
}

func diskSpaceResult(path string, freeBytes uint64) CheckResult {
	status := StatusOk
	if freeBytes < minFreeBytes {
		status = StatusWarning
	}
	return CheckResult{
		Name:   "Disk",
		Status: status,
		Detail: fmt.Sprintf("%.1f GB free in %s", float64(freeBytes)/(1<<30), path),
	}
}

func diskSpaceTarget(dir string) string {
	if ok, _ := utils.DirExists(dir); ok {
		return dir
	}
	return filepath.Dir(dir)
}

// Print writes the human readable report
func (r *Report) Print(p utils.RawPrinter) {
	p.Println("Checking for common issues...")

	var warnings, errs int
	for _, c := range r.Checks {
		symbol := color.GreenString("✓")
		switch c.Status {
		case StatusWarning:
			symbol = color.YellowString("⚠")
			warnings++
		case StatusError:
			symbol = color.RedString("✗")
			errs++
		}
		p.Printf("  %s %-12s %s\n", symbol, c.Name, c.Detail)
	}

	p.Println()
	switch {
	case errs > 0:
		parts := []string{pluralize(errs, "error")}
		if warnings > 0 {
			parts = append(parts, pluralize(warnings, "warning"))
		}
		p.Printf("Problems found (%s).\n", strings.Join(parts, ", "))
	case warnings > 0:
		p.Printf("Everything looks good (%s).\n", pluralize(warnings, "warning"))
	default:
		p.Println("Everything looks good.")
	}
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
