// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build !unix

package doctor

func checkDiskSpace(dir string) CheckResult {
	return CheckResult{
		Name:   "Disk",
		Status: StatusOk,
		Detail: "not checked on this platform",
	}
}
