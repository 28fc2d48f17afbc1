// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// randomPath builds a random, always-valid path of 0..maxDepth components
// drawn from the small alphabet a..d, mirroring the reference stress
// scenario's "over the alphabet a-d up to depth 4".
func randomPath(rnd *rand.Rand, maxDepth int) string {
	depth := rnd.Intn(maxDepth + 1)
	path := "/"
	for i := 0; i < depth; i++ {
		path += string(rune('a'+rnd.Intn(4))) + "/"
	}
	return path
}

// TestConcurrencyStress fans out N goroutines, each performing a burst of
// randomly chosen list/create/remove/move operations against one shared
// tree, grounded in fuse/test/node_parallel_lookup_test.go's use of
// errgroup to drive concurrent filesystem operations against a single
// tree and join on them. The property under test is deadlock-freedom and
// post-hoc structural consistency (spec §8, scenario 6), not any
// particular outcome: operations race by design and many will return
// ErrNotFound/ErrAlreadyExists/ErrNotEmpty, which is expected and ignored.
func TestConcurrencyStress(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping concurrency stress test in -short mode")
	}

	const (
		goroutines     = 100
		opsPerRoutine  = 20
		maxDepth       = 4
	)

	tr := New()
	defer tr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < goroutines; i++ {
		i := i
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(int64(i) + 1))
			for j := 0; j < opsPerRoutine; j++ {
				switch rnd.Intn(4) {
				case 0:
					_, _ = tr.List(randomPath(rnd, maxDepth))
				case 1:
					_ = tr.Create(randomPath(rnd, maxDepth))
				case 2:
					_ = tr.Remove(randomPath(rnd, maxDepth))
				case 3:
					_ = tr.Move(randomPath(rnd, maxDepth), randomPath(rnd, maxDepth))
				}
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("concurrency stress test did not terminate: suspected deadlock")
	}

	assertConsistent(t, tr)
}

// assertConsistent walks the whole tree once everything has quiesced and
// checks: every node's mapping key equals the mapped child's own name,
// and every node's lock is idle (no readers, writers, or waiters left
// behind by any operation).
func assertConsistent(t *testing.T, tr *Tree) {
	t.Helper()
	var walk func(n *node)
	walk = func(n *node) {
		require.True(t, n.lock.idle(), "node %q left a non-idle lock", n.name)
		for childName, child := range n.children {
			require.Equal(t, childName, child.name, "children map key does not match child's own name")
			walk(child)
		}
	}
	walk(tr.root)
}
