// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package assistantconfig

const envVarPrefix = "DVER_"

const (
	// DverHomeEnvVar
	// DVER_HOME is the absolute path to the `dver` home directory.
	// It holds dver-config.yaml and the install lock.
	DverHomeEnvVar = envVarPrefix + "HOME"

	// LogLevelEnvVar
	// DVER_LOG_LEVEL sets the log level.
	// 	Default: info
	//  Possible values: debug info warn error
	LogLevelEnvVar = envVarPrefix + "LOG_LEVEL"

	// LogFormatEnvVar
	// DVER_LOG_FORMAT selects the log output format.
	// 	Default: text
	//  Possible values: text json
	LogFormatEnvVar = envVarPrefix + "LOG_FORMAT"

	// DotnetPathEnvVar
	// DVER_DOTNET_PATH overrides the dotnet executable that is queried.
	// 	Default: dotnet (looked up in PATH)
	DotnetPathEnvVar = envVarPrefix + "DOTNET_PATH"

	// InstallScriptUrlEnvVar
	// DVER_INSTALL_SCRIPT_URL overrides the URL the dotnet-install script is downloaded from
	InstallScriptUrlEnvVar = envVarPrefix + "INSTALL_SCRIPT_URL"

	// ReleasesIndexUrlEnvVar
	// DVER_RELEASES_INDEX_URL overrides the URL of releases-index.json used by `remote`
	ReleasesIndexUrlEnvVar = envVarPrefix + "RELEASES_INDEX_URL"

	// NetrcPathEnvVar
	// DVER_NETRC points to a netrc file whose machine entries are used as basic auth
	// for downloads (useful with mirrors).
	// 	Default: $HOME/.netrc when it exists
	NetrcPathEnvVar = envVarPrefix + "NETRC"

	// InstallDirEnvVar
	// DVER_INSTALL_DIR is the default for `install --install-path`
	InstallDirEnvVar = envVarPrefix + "INSTALL_DIR"

	// NoColorEnvVar
	// DVER_NO_COLOR disables colored output when set to true
	NoColorEnvVar = envVarPrefix + "NO_COLOR"
)
