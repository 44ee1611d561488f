// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package assistantconfig

import "time"

const (
	DverConfigFileName = "dver-config.yaml"
	LockFileName       = ".lock"

	DefaultDotnetPath = "dotnet"

	InstallScriptBaseUrl    = "https://dotnet.microsoft.com/download/dotnet/scripts/v1/"
	DefaultReleasesIndexUrl = "https://dotnetcli.blob.core.windows.net/dotnet/release-metadata/releases-index.json"

	// HttpTimeout bounds every download. Subprocesses are not time bounded.
	HttpTimeout = 30 * time.Second

	UserAgentPrefix  = "dver"
	UserAgentComment = "dotnet-version-manager"
)
