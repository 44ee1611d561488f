// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package builtincommand

import (
	"github.com/samber/lo"
)

type BuiltinCommand string

const (
	Current   BuiltinCommand = "current"
	List      BuiltinCommand = "list"
	Use       BuiltinCommand = "use"
	Install   BuiltinCommand = "install"
	UnInstall BuiltinCommand = "uninstall"
	Doctor    BuiltinCommand = "doctor"
	Remote    BuiltinCommand = "remote"
)

var BuiltinCommands = []BuiltinCommand{Current, List, Use, Install, UnInstall, Doctor, Remote}

// ShouldEnsureHome is true for commands that need DVER_HOME on disk (the install lock lives there)
func ShouldEnsureHome(args []string) bool {
	if len(args) > 1 {
		return lo.Contains([]string{string(Install), string(UnInstall)}, args[1])
	}
	return false
}
