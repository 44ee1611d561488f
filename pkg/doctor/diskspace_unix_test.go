// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDiskSpace(t *testing.T) {
	result := checkDiskSpace(t.TempDir())
	assert.Equal(t, "Disk", result.Name)
	assert.Contains(t, result.Detail, "GB free in")
}
