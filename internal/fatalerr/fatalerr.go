// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fatalerr is the process-wide fatal-exit helper assumed present
// by the tree package (see its design notes on "process-wide fatal-exit
// helper for unrecoverable locking primitive failures"). It plays the role
// the reference implementation's err.c/err.h give to syserr: an operation
// that discovers its own locking primitive is corrupted has no sound way
// to continue, since silently swallowing the error would leak a lock and
// wedge the tree forever.
package fatalerr

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// log is the logger fatal exits are reported through.
var log = logrus.StandardLogger()

// exiter lets tests observe a fatal exit without killing the test binary.
var exiter = os.Exit

// OnLockFailure reports an unrecoverable failure of a rendezvous lock's
// bookkeeping (a monitor left in a state no valid history of
// acquire/release calls could produce) and terminates the process. It is
// a no-op when err is nil, mirroring the reference syserr(0, ...).
func OnLockFailure(err error, format string, args ...any) {
	if err == nil {
		return
	}
	log.WithError(errors.WithStack(err)).Errorf(format, args...)
	exiter(1)
}

// Fatalf reports an unconditional fatal condition (no errno attached) and
// terminates the process, mirroring the reference fatal() helper.
func Fatalf(format string, args ...any) {
	log.Errorf(format, args...)
	exiter(1)
}
