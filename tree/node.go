// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// node is a single directory: its own name, its rendezvous lock, and its
// mapping of child-name to owned child node. A node's behavior beyond
// plain field storage is in how the traversal engine and the operation
// layer use its lock and children map; the node itself stays a passive
// record, the way the reference implementation's `struct Tree` is a plain
// record guarded by its monitor.
type node struct {
	name     string
	lock     *rendezvous
	children map[string]*node
}

// newNode allocates an empty directory named name. Construction is a
// single step in Go (no partial-allocation rollback is needed, unlike the
// reference implementation's malloc/strdup sequence), but the shape below
// keeps the same three parts the reference new_dir assembles: a name, a
// lock, and an (empty) children map.
func newNode(name string) *node {
	return &node{
		name:     name,
		lock:     newRendezvous(),
		children: make(map[string]*node),
	}
}

// entryPolicy governs how the traversal engine acquires a node's lock as
// it walks through or arrives at it. isFinal is true only for the target
// node of the traversal.
type entryPolicy func(n *node, isFinal bool)

// listPolicy reader-acquires every node visited, including the target.
// Used by list: a pure read needs no more than shared access anywhere
// along the path.
func listPolicy(n *node, isFinal bool) {
	n.lock.acquireReader()
}

// editPolicy reader-acquires intermediate nodes and writer-acquires the
// final node: the operation reads its way down but mutates only the
// target.
func editPolicy(n *node, isFinal bool) {
	if isFinal {
		n.lock.acquireWriter()
	} else {
		n.lock.acquireReader()
	}
}

// chillPolicy acquires nothing. It is used by move to walk from an
// already writer-locked LCA down to its two operands: the writer lock on
// the LCA already excludes every other operation from that subtree, so
// locking again on the way down would only invite the two-fork deadlock
// the LCA protocol exists to avoid.
func chillPolicy(n *node, isFinal bool) {}

// exitPolicy is the counterpart used to release a lock-stack entry.
type exitPolicy func(n *node)

func readerExit(n *node) { n.lock.releaseReader() }
func writerExit(n *node) { n.lock.releaseWriter() }
