// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCmdReproducesReferenceScenario(t *testing.T) {
	cmd := newDemoCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))

	want := "\ta,b\n" +
		"\tb,c,scratch\n" +
		"\tb\n" +
		"\t\n" +
		"\tstaging\n" +
		"\tb,c,scratch\n" +
		"\tb,c\n"
	assert.Equal(t, want, out.String())
}

func TestListCmdCreatesThenLists(t *testing.T) {
	cmd := newListCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, []string{"/a/", "/a/b/", "/a/c/", "/a/"}))
	assert.Equal(t, "b,c\n", out.String())
}
