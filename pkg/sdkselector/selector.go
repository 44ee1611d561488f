// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sdkselector

import (
	"fmt"
	"strings"

	"dver.dev/x/dver/pkg/inventory"
	"github.com/samber/lo"
)

type Kind int

const (
	// None means neither a version nor --all was given
	None Kind = iota
	All
	// Exact matches the full version string
	Exact
	// MajorPrefix matches versions starting with "<major>."
	MajorPrefix
)

func (k Kind) String() string {
	switch k {
	case All:
		return "all"
	case Exact:
		return "exact"
	case MajorPrefix:
		return "major"
	default:
		return "none"
	}
}

// Selector picks which installed SDKs an uninstall targets
type Selector struct {
	Kind  Kind
	Value string
}

// New builds a selector from the uninstall arguments.
// all takes precedence over version. A version containing '.' is matched
// exactly, anything else is treated as a major version prefix.
func New(version string, all bool) Selector {
	switch {
	case all:
		return Selector{Kind: All}
	case version == "":
		return Selector{Kind: None}
	case strings.Contains(version, "."):
		return Selector{Kind: Exact, Value: version}
	default:
		return Selector{Kind: MajorPrefix, Value: version}
	}
}

// Matches reports whether version is selected
func (s Selector) Matches(version string) bool {
	switch s.Kind {
	case All:
		return true
	case Exact:
		return version == s.Value
	case MajorPrefix:
		return strings.HasPrefix(version, s.Value+".")
	default:
		return false
	}
}

// Select returns the matching SDKs, in inventory order
func (s Selector) Select(sdks []inventory.InstalledSdk) []inventory.InstalledSdk {
	return lo.Filter(sdks, func(sdk inventory.InstalledSdk, _ int) bool {
		return s.Matches(sdk.Version)
	})
}

func (s Selector) String() string {
	if s.Value == "" {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Value)
}
