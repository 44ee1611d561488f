// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package inventory

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"
)

// InstalledSdk is one SDK installation as reported by `dotnet --list-sdks`.
// Version is always a single path element, so the parent of InstallPath is the reported base.
type InstalledSdk struct {
	Version string `json:"version"`
	// InstallPath is <base reported by dotnet>/<Version>
	InstallPath string `json:"installPath"`
}

// Parse turns `dotnet --list-sdks` output into installed SDKs, in encounter order.
//
// Each line is expected as "<version> [<base directory>]". Lines without '[',
// with an empty version or with an empty base are dropped, as are versions that
// aren't a single path element. Duplicates are kept.
func Parse(output string) []InstalledSdk {
	var sdks []InstalledSdk
	for _, line := range strings.Split(output, "\n") {
		sdk, ok := parseLine(line)
		if !ok {
			continue
		}
		sdks = append(sdks, sdk)
	}
	return sdks
}

func parseLine(line string) (InstalledSdk, bool) {
	versionPart, pathPart, found := strings.Cut(line, "[")
	if !found {
		return InstalledSdk{}, false
	}

	fields := strings.Fields(versionPart)
	if len(fields) == 0 {
		return InstalledSdk{}, false
	}
	version := fields[0]
	if !isSinglePathElement(version) {
		return InstalledSdk{}, false
	}

	base := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(pathPart), "]"))
	if base == "" {
		return InstalledSdk{}, false
	}

	return InstalledSdk{
		Version:     version,
		InstallPath: filepath.Join(base, version),
	}, true
}

// isSinglePathElement keeps <base>/<version> a direct child of base
func isSinglePathElement(version string) bool {
	return version != "." && version != ".." && !strings.ContainsAny(version, `/\`)
}

// Roots returns the deduplicated, sorted parent directories of every install path.
// These are the only directories under which uninstall may delete anything.
func Roots(sdks []InstalledSdk) []string {
	roots := lo.Uniq(lo.Map(sdks, func(s InstalledSdk, _ int) string {
		return filepath.Dir(s.InstallPath)
	}))
	slices.Sort(roots)
	return roots
}

// Versions returns the unique versions, sorted by semantic version.
// Versions that don't parse as semver sort last, lexically.
func Versions(sdks []InstalledSdk) []string {
	versions := lo.Uniq(lo.Map(sdks, func(s InstalledSdk, _ int) string {
		return s.Version
	}))
	slices.SortFunc(versions, CompareVersions)
	return versions
}

// CompareVersions orders version strings semantically, falling back to string order
func CompareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		if c := va.Compare(vb); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
