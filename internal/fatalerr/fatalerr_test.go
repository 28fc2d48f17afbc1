// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fatalerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnLockFailureNilIsNoop(t *testing.T) {
	called := false
	old := exiter
	exiter = func(int) { called = true }
	defer func() { exiter = old }()

	OnLockFailure(nil, "unused")
	assert.False(t, called)
}

func TestOnLockFailureExits(t *testing.T) {
	var exitCode int
	called := false
	old := exiter
	exiter = func(code int) { called = true; exitCode = code }
	defer func() { exiter = old }()

	OnLockFailure(errors.New("boom"), "releaseReader")
	assert.True(t, called)
	assert.Equal(t, 1, exitCode)
}

func TestFatalfExits(t *testing.T) {
	called := false
	old := exiter
	exiter = func(int) { called = true }
	defer func() { exiter = old }()

	Fatalf("unreachable: %s", "reason")
	assert.True(t, called)
}
