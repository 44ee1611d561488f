// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package assistantversion

// To be populated at build-time, e.g.:
// go build -ldflags "-X 'dver.dev/x/dver/pkg/assistantversion.AssistantVersion=0.2.0'"
var (
	AssistantVersion string
	Build            string
	BuildDate        string
)

// fallbackVersion is reported by dev builds, and shows up in the User-Agent header
const fallbackVersion = "0.1"

type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Build     string `json:"build" yaml:"build"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
}

func defaultUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func Get() VersionInfo {
	return VersionInfo{
		Version:   GetAssistantVersion(),
		Build:     GetBuild(),
		BuildDate: GetBuildDate(),
	}
}

func GetAssistantVersion() string {
	if AssistantVersion == "" {
		return fallbackVersion
	}
	return AssistantVersion
}

func GetBuild() string {
	return defaultUnknown(Build)
}

func GetBuildDate() string {
	return defaultUnknown(BuildDate)
}
