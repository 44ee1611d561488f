// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package doctor

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func checkDiskSpace(dir string) CheckResult {
	target := diskSpaceTarget(dir)

	var stat unix.Statfs_t
	if err := unix.Statfs(target, &stat); err != nil {
		return CheckResult{
			Name:   "Disk",
			Status: StatusWarning,
			Detail: fmt.Sprintf("could not check: %s", err),
		}
	}
	return diskSpaceResult(target, uint64(stat.Bavail)*uint64(stat.Bsize))
}
