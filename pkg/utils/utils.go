// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// StringEnvVar returns the env var value when it is set and not blank
func StringEnvVar(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// BoolEnvVar parses a set, non-blank env var with strconv.ParseBool
func BoolEnvVar(key string) (val bool, ok bool, err error) {
	s, ok := StringEnvVar(key)
	if !ok {
		return false, false, nil
	}
	val, err = strconv.ParseBool(s)
	if err != nil {
		return false, true, fmt.Errorf("invalid value %q for %s: must be true or false", s, key)
	}
	return val, true, nil
}
