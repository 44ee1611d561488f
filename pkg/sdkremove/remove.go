// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sdkremove

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"dver.dev/x/dver/pkg/inventory"
	"dver.dev/x/dver/pkg/sdkselector"
	"dver.dev/x/dver/pkg/utils"
	"github.com/fatih/color"
	"github.com/samber/lo"
)

var ErrNotDirectory = errors.New("not a directory")

type Status string

const (
	Removed  Status = "removed"
	Skipped  Status = "skipped"
	NotFound Status = "not-found"
	Failed   Status = "failed"
)

const (
	MissingSelectorNotice = "Provide a version or --all to uninstall."
	NoMatchNotice         = "No matching SDKs found."
)

// Outcome is the result of removing a single SDK
type Outcome struct {
	Sdk    inventory.InstalledSdk
	Status Status
	Err    error
}

type Report struct {
	Selector sdkselector.Selector
	// Roots are the directories deletion was confined to
	Roots    []string
	Outcomes []Outcome
}

// NothingMatched is true when the selector picked no SDKs (including when there was no selector)
func (r *Report) NothingMatched() bool {
	return len(r.Outcomes) == 0
}

// Count returns the number of outcomes with the given status
func (r *Report) Count(status Status) int {
	return lo.CountBy(r.Outcomes, func(o Outcome) bool {
		return o.Status == status
	})
}

// Remove deletes the install directory of every SDK picked by selector.
//
// Roots are computed from the whole inventory before filtering, and a target is only
// deleted when its path lies within one of them. Targets are processed in order and
// a failure on one never stops the others; Remove itself never fails.
func Remove(sdks []inventory.InstalledSdk, selector sdkselector.Selector) *Report {
	roots := inventory.Roots(sdks)
	return &Report{
		Selector: selector,
		Roots:    roots,
		Outcomes: removeTargets(selector.Select(sdks), roots),
	}
}

func removeTargets(targets []inventory.InstalledSdk, roots []string) []Outcome {
	return lo.Map(targets, func(sdk inventory.InstalledSdk, _ int) Outcome {
		return removeOne(sdk, roots)
	})
}

func removeOne(sdk inventory.InstalledSdk, roots []string) Outcome {
	underRoot := lo.ContainsBy(roots, func(root string) bool {
		return utils.IsWithin(root, sdk.InstallPath)
	})
	if !underRoot {
		slog.Debug("refusing to delete outside of sdk roots", "version", sdk.Version, "path", sdk.InstallPath, "roots", roots)
		return Outcome{Sdk: sdk, Status: Skipped}
	}

	// any entry counts as present; only directories are removed
	info, err := os.Stat(sdk.InstallPath)
	if os.IsNotExist(err) {
		return Outcome{Sdk: sdk, Status: NotFound}
	}
	if err != nil {
		return Outcome{Sdk: sdk, Status: Failed, Err: err}
	}
	if !info.IsDir() {
		return Outcome{Sdk: sdk, Status: Failed, Err: fmt.Errorf("%w: %s", ErrNotDirectory, sdk.InstallPath)}
	}

	slog.Debug("removing sdk", "version", sdk.Version, "path", sdk.InstallPath)
	if err := os.RemoveAll(sdk.InstallPath); err != nil {
		return Outcome{Sdk: sdk, Status: Failed, Err: err}
	}
	return Outcome{Sdk: sdk, Status: Removed}
}

// Print writes one line per outcome; removals and missing dirs go to stdout,
// skips and failures to stderr.
func (r *Report) Print(p utils.RawPrinter) {
	if r.Selector.Kind == sdkselector.None {
		p.PrintErrln(MissingSelectorNotice)
	}
	if r.NothingMatched() {
		p.Println(NoMatchNotice)
		return
	}

	for _, o := range r.Outcomes {
		switch o.Status {
		case Removed:
			p.Println(color.GreenString("Removed %s", o.Sdk.Version))
		case NotFound:
			p.Printf("Directory for %s not found\n", o.Sdk.Version)
		case Skipped:
			p.PrintErrln(color.YellowString("Skipping %s: path %q outside known SDK roots", o.Sdk.Version, o.Sdk.InstallPath))
		case Failed:
			p.PrintErrln(color.RedString("Failed to remove %s: %v", o.Sdk.Version, o.Err))
		}
	}
}
