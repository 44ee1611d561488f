// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package versions

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"dver.dev/x/dver/pkg/inventory"
	"dver.dev/x/dver/pkg/releases"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
)

type Version struct {
	Version   string   `json:"version"`
	Installed bool     `json:"installed,omitempty"`
	Remote    bool     `json:"remote,omitempty"`
	Active    bool     `json:"active,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

type Versions []*Version

type versionsMap map[string]*Version

// New merges the active, installed and remote views of SDK versions.
// remote maps a version to its tags (channel, release type, ...)
func New(active string, installed []string, remote map[string][]string) Versions {
	m := versionsMap{}

	if active != "" {
		m.add(&Version{Version: active, Active: true})
	}

	for _, v := range installed {
		m.add(&Version{Version: v, Installed: true})
	}

	for v, tags := range remote {
		m.add(&Version{Version: v, Remote: true, Tags: tags})
	}

	r := Versions(lo.Values(m))
	r.Sort()
	return r
}

func (v versionsMap) add(e *Version) {
	existing, ok := v[e.Version]
	if !ok {
		v[e.Version] = e
		return
	}

	existing.Installed = existing.Installed || e.Installed
	existing.Remote = existing.Remote || e.Remote
	existing.Active = existing.Active || e.Active
	if len(e.Tags) > 0 {
		existing.Tags = lo.Uniq(append(existing.Tags, e.Tags...))
	}
}

// RemoteTags flattens remote channels into version -> tags.
// Every SDK gets its channel and release type; a channel's latest SDK is also tagged "latest".
func RemoteTags(channels []releases.RemoteChannel) map[string][]string {
	tags := map[string][]string{}
	for _, c := range channels {
		for _, r := range c.Releases {
			for _, sdk := range r.SdkVersions() {
				t := []string{c.Channel.ChannelVersion}
				if c.Channel.ReleaseType != "" {
					t = append(t, c.Channel.ReleaseType)
				}
				if sdk == c.Channel.LatestSdk {
					t = append(t, "latest")
				}
				if r.Security {
					t = append(t, "security")
				}
				tags[sdk] = lo.Uniq(append(tags[sdk], t...))
			}
		}
	}
	return tags
}

func (v Versions) Copy() Versions {
	return lo.Map(v, func(e *Version, _ int) *Version {
		c := *e
		c.Tags = slices.Clone(e.Tags)
		return &c
	})
}

// Sort by version number
func (v Versions) Sort() {
	slices.SortFunc(v, func(a, b *Version) int {
		return inventory.CompareVersions(a.Version, b.Version)
	})
}

// Sort by installed last, then by version number
func (v Versions) SortByInstalled() {
	slices.SortFunc(v, func(a, b *Version) int {
		if a.Installed && !b.Installed {
			return 1
		}

		if !a.Installed && b.Installed {
			return -1
		}

		return inventory.CompareVersions(a.Version, b.Version)
	})
}

func (v Versions) JSON() (string, error) {
	if v == nil {
		v = Versions{}
	}
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (v Versions) Table() string {
	newV := v.Copy()
	newV.SortByInstalled()

	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Rows(lo.Map(newV, func(row *Version, _ int) []string {
			indicator := ""

			version := row.Version

			if len(row.Tags) > 0 {
				tags := strings.Join(row.Tags, ", ")
				version = fmt.Sprintf("%s\t(%s)", version, tags)
			}

			switch {
			case row.Active:
				indicator = "*"
				version = lipgloss.NewStyle().
					Foreground(lipgloss.Color("2")).
					Bold(true).
					Render(version)
			case !row.Installed:
				version = lipgloss.NewStyle().
					Faint(true).
					Italic(true).
					Render(version)
			}

			return []string{
				indicator,
				version,
			}
		})...).
		String()
}

// Plain is one version per line
func (v Versions) Plain() string {
	return strings.Join(lo.Map(v, func(e *Version, _ int) string { return e.Version }), "\n")
}

// Format renders v as "table", "json" or "plain"
func (v Versions) Format(output string) (string, error) {
	switch output {
	case "plain":
		return v.Plain(), nil
	case "table":
		return v.Table(), nil
	case "json":
		return v.JSON()
	default:
		return "", fmt.Errorf("output format not supported: %s", output)
	}
}
