// Copyright (c) 2017-2026 Digital Asset (Switzerland) GmbH and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/juju/fslock"
)

const lockPollInterval = 100 * time.Millisecond

// InstallLock serializes dver processes that install or remove SDKs.
// The OS drops the lock if the holding process dies.
type InstallLock struct {
	path string
	lock *fslock.Lock
}

func NewInstallLock(lockFilePath string) *InstallLock {
	return &InstallLock{path: lockFilePath, lock: fslock.New(lockFilePath)}
}

// Acquire blocks until the lock is held or ctx is done
func (l *InstallLock) Acquire(ctx context.Context) error {
	if err := EnsureDirs(filepath.Dir(l.path)); err != nil {
		return err
	}

	err := l.lock.TryLock()
	if !errors.Is(err, fslock.ErrLocked) {
		return err
	}

	// fslock has no context aware variant, so poll
	slog.Info("waiting for another dver process to release the install lock", "file", l.path)
	ticker := time.NewTicker(lockPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		err := l.lock.TryLock()
		if !errors.Is(err, fslock.ErrLocked) {
			return err
		}
	}
}

func (l *InstallLock) Release() {
	if err := l.lock.Unlock(); err != nil {
		slog.Warn("failed to release install lock", "file", l.path, "err", err.Error())
	}
}

// WithInstallLock runs action while holding the install lock at lockFilePath.
// action is not started when ctx is done by the time the lock is obtained.
func WithInstallLock(ctx context.Context, lockFilePath string, action func() error) error {
	l := NewInstallLock(lockFilePath)
	if err := l.Acquire(ctx); err != nil {
		return err
	}
	defer l.Release()

	if err := ctx.Err(); err != nil {
		return err
	}
	return action()
}
