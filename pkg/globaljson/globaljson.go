// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package globaljson

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dver.dev/x/dver/pkg/utils"
)

const (
	FileName       = "global.json"
	BackupFileName = FileName + ".bak"
)

// Document is the pin written to global.json
type Document struct {
	Sdk Sdk `json:"sdk"`
}

type Sdk struct {
	Version string `json:"version"`
}

type WriteResult struct {
	Path string
	// BackupPath is set when a previous global.json was copied aside
	BackupPath string
}

func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Write pins version in dir/global.json. An existing file is first copied to
// global.json.bak; failing to do so does not prevent the write.
// The version is stored verbatim.
func Write(dir, version string) (*WriteResult, error) {
	p := Path(dir)
	result := &WriteResult{Path: p}

	exists, err := utils.FileExists(p)
	if err != nil {
		return nil, err
	}
	if exists {
		backup := filepath.Join(dir, BackupFileName)
		if err := utils.CopyFile(p, backup); err != nil {
			slog.Debug("could not back up global.json", "path", p, "err", err)
		} else {
			result.BackupPath = backup
		}
	}

	data, err := json.MarshalIndent(Document{Sdk: Sdk{Version: version}}, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", p, err)
	}
	return result, nil
}

// Read returns the pinned document in dir, and false when there is none
func Read(dir string) (*Document, bool, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, true, fmt.Errorf("malformed %s: %w", Path(dir), err)
	}
	return &doc, true, nil
}
