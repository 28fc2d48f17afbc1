// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"syscall"
)

// Error codes reuse the standard POSIX-equivalent syscall.Errno values,
// the way the teacher package requires all its Node methods to report
// errors. ErrMoveIntoDescendant is the one dedicated code the reference
// Tree.h reserves (ESUBPATH) that has no ready syscall.Errno analogue.
const (
	ErrInvalidArgument = syscall.EINVAL
	ErrNotFound        = syscall.ENOENT
	ErrAlreadyExists   = syscall.EEXIST
	ErrNotEmpty        = syscall.ENOTEMPTY
	ErrBusy            = syscall.EBUSY
	ErrOutOfMemory     = syscall.ENOMEM
)

// ErrMoveIntoDescendant is returned by Move when the source names a
// proper ancestor of the target (directly, or because target is itself
// source, extended with further components): moving a directory into its
// own descendant would disconnect it from the tree.
var ErrMoveIntoDescendant = errors.New("tree: move target is a descendant of source")
