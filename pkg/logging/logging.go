// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"dver.dev/x/dver/pkg/assistantconfig"
	"dver.dev/x/dver/pkg/utils"
)

const (
	defaultLevel  = "info"
	defaultFormat = "text"
)

// InitLogging installs the default slog logger on stderr,
// configured through DVER_LOG_LEVEL and DVER_LOG_FORMAT
func InitLogging() error {
	level, ok := utils.StringEnvVar(assistantconfig.LogLevelEnvVar)
	if !ok {
		level = defaultLevel
	}
	format, ok := utils.StringEnvVar(assistantconfig.LogFormatEnvVar)
	if !ok {
		format = defaultFormat
	}

	logger, err := New(os.Stderr, level, format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func New(w io.Writer, level, format string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", assistantconfig.LogLevelEnvVar, err)
	}
	opts := &slog.HandlerOptions{Level: l}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid %s %q: expected text or json", assistantconfig.LogFormatEnvVar, format)
	}
}
