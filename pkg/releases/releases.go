// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package releases

import (
	"context"
	"fmt"
	"log/slog"

	"dver.dev/x/dver/pkg/fetch"
	"github.com/samber/lo"
)

const LtsReleaseType = "lts"

// Index is releases-index.json
type Index struct {
	Channels []Channel `json:"releases-index"`
}

type Channel struct {
	ChannelVersion string `json:"channel-version"`
	LatestRelease  string `json:"latest-release"`
	LatestSdk      string `json:"latest-sdk"`
	// ReleaseType is "lts" or "sts"
	ReleaseType  string `json:"release-type"`
	SupportPhase string `json:"support-phase"`
	ReleasesJson string `json:"releases.json"`
}

func (c Channel) IsLts() bool {
	return c.ReleaseType == LtsReleaseType
}

// ChannelReleases is a channel's releases.json
type ChannelReleases struct {
	Releases []Release `json:"releases"`
}

type Release struct {
	ReleaseDate    string `json:"release-date"`
	ReleaseVersion string `json:"release-version"`
	Security       bool   `json:"security"`
	Sdk            *Sdk   `json:"sdk"`
	Sdks           []Sdk  `json:"sdks"`
}

type Sdk struct {
	Version        string `json:"version"`
	RuntimeVersion string `json:"runtime-version"`
}

// SdkVersions returns every SDK version shipped with the release, without duplicates
func (r Release) SdkVersions() []string {
	var vs []string
	if r.Sdk != nil && r.Sdk.Version != "" {
		vs = append(vs, r.Sdk.Version)
	}
	for _, s := range r.Sdks {
		if s.Version != "" {
			vs = append(vs, s.Version)
		}
	}
	return lo.Uniq(vs)
}

// RemoteChannel is a channel together with its releases, or the error fetching them
type RemoteChannel struct {
	Channel  Channel
	Releases []Release
	Err      error
}

func FetchIndex(ctx context.Context, client *fetch.Client, indexUrl string) (*Index, error) {
	var index Index
	if err := client.GetJSON(ctx, indexUrl, &index); err != nil {
		return nil, fmt.Errorf("failed to fetch releases index: %w", err)
	}
	return &index, nil
}

func FetchChannel(ctx context.Context, client *fetch.Client, channel Channel) ([]Release, error) {
	var releases ChannelReleases
	if err := client.GetJSON(ctx, channel.ReleasesJson, &releases); err != nil {
		return nil, err
	}
	return releases.Releases, nil
}

// List fetches the index and then every (LTS, if ltsOnly) channel, one after the
// other in index order. Only a failing index is an error; a failing channel is
// recorded on its RemoteChannel.
func List(ctx context.Context, client *fetch.Client, indexUrl string, ltsOnly bool) ([]RemoteChannel, error) {
	index, err := FetchIndex(ctx, client, indexUrl)
	if err != nil {
		return nil, err
	}

	channels := lo.Filter(index.Channels, func(c Channel, _ int) bool {
		return !ltsOnly || c.IsLts()
	})

	return lo.Map(channels, func(c Channel, _ int) RemoteChannel {
		rs, err := FetchChannel(ctx, client, c)
		if err != nil {
			slog.Debug("failed to fetch channel releases", "channel", c.ChannelVersion, "err", err)
		}
		return RemoteChannel{Channel: c, Releases: rs, Err: err}
	}), nil
}
