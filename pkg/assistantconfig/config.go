// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package assistantconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"dver.dev/x/dver/pkg/assistantversion"
	"dver.dev/x/dver/pkg/utils"
	"github.com/goccy/go-yaml"
)

var ErrHomeNotSet = fmt.Errorf("could not determine the user's home directory")

type Config struct {
	DverHomePath string `yaml:"-"`
	LockFilePath string `yaml:"-"`

	// WorkingDir is where global.json is read from and written to
	WorkingDir string `yaml:"-"`
	// TempDir receives the downloaded dotnet-install script
	TempDir string `yaml:"-"`
	// UserHomeDir is used by doctor to locate ~/.dotnet
	UserHomeDir string `yaml:"-"`

	DotnetPath       string `yaml:"dotnet-path,omitempty"`
	InstallScriptUrl string `yaml:"install-script-url,omitempty"`
	ReleasesIndexUrl string `yaml:"releases-index-url,omitempty"`
	NetrcPath        string `yaml:"netrc-path,omitempty"`
	InstallDir       string `yaml:"install-dir,omitempty"`
	NoColor          bool   `yaml:"no-color,omitempty"`
}

func (c *Config) EnsureDirs() error {
	return utils.EnsureDirs(c.DverHomePath)
}

func Get() (*Config, error) {
	dverHomePath, err := getDverHomePath()
	if err != nil {
		return nil, err
	}
	return GetWithCustomHome(dverHomePath)
}

func GetWithCustomHome(dverHomePath string) (*Config, error) {
	config := Config{}

	// dver-config.yaml is optional
	configFilePath := filepath.Join(dverHomePath, DverConfigFileName)
	fileInfo, err := os.Stat(configFilePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else {
		if fileInfo.IsDir() {
			return nil, fmt.Errorf("%q is directory and not a file", configFilePath)
		}

		bytes, err := os.ReadFile(configFilePath)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(bytes, &config); err != nil {
			return nil, fmt.Errorf("malformed %s: %w", configFilePath, err)
		}
	}

	if v, ok := utils.StringEnvVar(DotnetPathEnvVar); ok {
		config.DotnetPath = v
	}
	if config.DotnetPath == "" {
		config.DotnetPath = DefaultDotnetPath
	}

	if v, ok := utils.StringEnvVar(InstallScriptUrlEnvVar); ok {
		config.InstallScriptUrl = v
	}

	if v, ok := utils.StringEnvVar(ReleasesIndexUrlEnvVar); ok {
		config.ReleasesIndexUrl = v
	}
	if config.ReleasesIndexUrl == "" {
		config.ReleasesIndexUrl = DefaultReleasesIndexUrl
	}

	if v, ok := utils.StringEnvVar(InstallDirEnvVar); ok {
		config.InstallDir = v
	}

	noColor, ok, err := utils.BoolEnvVar(NoColorEnvVar)
	if err != nil {
		return nil, err
	}
	if ok {
		config.NoColor = noColor
	}

	userHome, _ := os.UserHomeDir()
	config.UserHomeDir = userHome

	if v, ok := utils.StringEnvVar(NetrcPathEnvVar); ok {
		config.NetrcPath = v
	}
	if config.NetrcPath == "" && userHome != "" {
		defaultNetrc := filepath.Join(userHome, ".netrc")
		if exists, _ := utils.FileExists(defaultNetrc); exists {
			config.NetrcPath = defaultNetrc
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("could not determine working directory: %w", err)
	}

	config.DverHomePath = dverHomePath
	config.LockFilePath = filepath.Join(dverHomePath, LockFileName)
	config.WorkingDir = cwd
	config.TempDir = os.TempDir()
	return &config, nil
}

// InstallScriptUrlFor returns the configured script URL, or the official one for goos
func (c *Config) InstallScriptUrlFor(goos string) string {
	if c.InstallScriptUrl != "" {
		return c.InstallScriptUrl
	}
	return InstallScriptBaseUrl + InstallScriptName(goos)
}

// InstallScriptName is dotnet-install.ps1 on windows and dotnet-install.sh elsewhere
func InstallScriptName(goos string) string {
	if goos == "windows" {
		return "dotnet-install.ps1"
	}
	return "dotnet-install.sh"
}

func getDverHomePath() (string, error) {
	if v, ok := os.LookupEnv(DverHomeEnvVar); ok {
		return v, nil
	}

	return getAppUserDataDirectory("dver")
}

func getAppUserDataDirectory(appName string) (string, error) {
	switch runtime.GOOS {
	case "windows":
		dir, ok := os.LookupEnv("APPDATA")
		if !ok {
			return "", fmt.Errorf("APPDATA environment variable is not set")
		}
		return filepath.Join(dir, appName), nil
	default:
		dir, ok := os.LookupEnv("HOME")
		if !ok {
			return "", ErrHomeNotSet
		}
		return filepath.Join(dir, "."+appName), nil
	}
}

func GetUserAgent() string {
	return fmt.Sprintf("%s/%s (%s)", UserAgentPrefix, assistantversion.GetAssistantVersion(), UserAgentComment)
}
