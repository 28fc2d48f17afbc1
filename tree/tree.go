// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ggegoge/concurrent-file-tree/internal/obslog"
)

// Tree is the system-level handle onto a directory tree: it owns the root
// node, named "/". All of Tree's methods are safe for concurrent use by
// multiple goroutines; the fine-grained per-node locking protocol
// documented on rendezvous and access/releaseStack is what makes that
// true without serializing unrelated operations.
type Tree struct {
	root *node
	log  *obslog.Logger
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithLogger attaches a topic-gated logger that traces each operation
// invocation. The zero value (no option given) logs nothing.
func WithLogger(l *obslog.Logger) Option {
	return func(t *Tree) { t.log = l }
}

// New allocates an empty tree containing only the root directory.
func New(opts ...Option) *Tree {
	t := &Tree{root: newNode(rootPath)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Close tears down the whole tree. It is a programming error to
// call Close while any operation on t is in flight; Close does not
// acquire any lock, exactly as the reference tree_free does not.
//
// Go's garbage collector reclaims the node graph on its own once t is no
// longer reachable, so Close has no memory-management work to do; it
// exists to mirror the component the specification budgets for ("Tree
// facade: construction and recursive destruction") and to give callers a
// deterministic point at which the tree is considered gone. The walk is
// iterative, not recursive, because paths up to MaxPathLen admit roughly
// two thousand levels of nesting and a recursive walk could exhaust the
// call stack on a pathologically deep tree.
func (t *Tree) Close() {
	if t.root == nil {
		return
	}
	pending := []*node{t.root}
	for len(pending) > 0 {
		n := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, child := range n.children {
			pending = append(pending, child)
		}
		n.children = nil
	}
	t.root = nil
}

// List returns the comma-separated, lexicographically sorted names of
// path's immediate children. An empty directory yields an empty string,
// not an error. ErrInvalidArgument is returned for a malformed path,
// ErrNotFound when some component along path does not exist.
func (t *Tree) List(path string) (string, error) {
	t.log.Op("list", logrus.Fields{"path": path})
	if !IsValid(path) {
		return "", ErrInvalidArgument
	}

	target, stack := access(t.root, path, listPolicy)
	if target == nil {
		releaseStack(stack, readerExit)
		return "", ErrNotFound
	}

	t.log.Lock("held-reader", path)
	names := make([]string, 0, len(target.children))
	for name := range target.children {
		names = append(names, name)
	}
	sort.Strings(names)

	readerExit(target)
	releaseStack(stack, readerExit)

	return strings.Join(names, ","), nil
}

// Create makes a new, empty subdirectory at path. path's parent must
// already exist and must not already contain a child of that name.
func (t *Tree) Create(path string) error {
	t.log.Op("create", logrus.Fields{"path": path})
	if !IsValid(path) {
		return ErrInvalidArgument
	}
	if path == rootPath {
		return ErrAlreadyExists
	}

	parentPath, last, _ := ParentAndTail(path)
	parent, stack := access(t.root, parentPath, editPolicy)
	if parent == nil {
		releaseStack(stack, readerExit)
		return ErrNotFound
	}

	t.log.Lock("held-writer", parentPath)
	var err error
	if _, exists := parent.children[last]; exists {
		err = ErrAlreadyExists
	} else {
		parent.children[last] = newNode(last)
	}

	writerExit(parent)
	releaseStack(stack, readerExit)
	return err
}

// Remove deletes the empty subdirectory at path. path may not be "/".
func (t *Tree) Remove(path string) error {
	t.log.Op("remove", logrus.Fields{"path": path})
	if !IsValid(path) {
		return ErrInvalidArgument
	}
	if path == rootPath {
		return ErrBusy
	}

	parentPath, last, _ := ParentAndTail(path)
	parent, stack := access(t.root, parentPath, editPolicy)
	if parent == nil {
		releaseStack(stack, readerExit)
		return ErrNotFound
	}

	t.log.Lock("held-writer", parentPath)
	var err error
	if child, exists := parent.children[last]; !exists {
		err = ErrNotFound
	} else if len(child.children) > 0 {
		err = ErrNotEmpty
	} else {
		delete(parent.children, last)
	}

	writerExit(parent)
	releaseStack(stack, readerExit)
	return err
}

// Move relocates the subtree at source to target, renaming it along the
// way if the final path components differ. Move may not be called with
// source == "/", and may not be used to move a directory into its own
// descendant.
//
// This implements the deadlock-free double-locking protocol described in
// the package documentation: rather than acquiring source's parent and
// target's parent independently (the classic two-forks deadlock), Move
// writer-locks their lowest common ancestor first and then reaches both
// parents from there under that single lock's protection, without taking
// any further lock. Because every operation acquires locks strictly in
// root-to-target path order, and Move's double access reduces to a
// single such acquisition (on the LCA), all operations share one total
// lock order and the system as a whole is deadlock-free.
func (t *Tree) Move(source, target string) error {
	t.log.Op("move", logrus.Fields{"source": source, "target": target})
	if !IsValid(source) || !IsValid(target) {
		return ErrInvalidArgument
	}
	if source == rootPath {
		return ErrBusy
	}
	if IsProperDescendant(source, target) {
		return ErrMoveIntoDescendant
	}

	sourceParentPath, sourceName, _ := ParentAndTail(source)
	targetParentPath, targetName, ok := ParentAndTail(target)
	if !ok {
		// target is "/": the root always exists.
		return ErrAlreadyExists
	}

	lcaPath, sourceTail, targetTail := LCA(sourceParentPath, targetParentPath)

	lca, stack := access(t.root, lcaPath, editPolicy)
	if lca == nil {
		releaseStack(stack, readerExit)
		return ErrNotFound
	}

	// Safe without further locking: the writer lock just taken on lca
	// excludes every other operation from touching anything below it,
	// including both sourceTail and targetTail.
	sourceParent, _ := access(lca, sourceTail, chillPolicy)
	targetParent, _ := access(lca, targetTail, chillPolicy)

	t.log.Lock("held-writer", lcaPath)
	var err error
	switch {
	case sourceParent == nil || targetParent == nil:
		err = ErrNotFound
	default:
		sourceDir, exists := sourceParent.children[sourceName]
		if !exists {
			err = ErrNotFound
			break
		}
		if _, clash := targetParent.children[targetName]; clash {
			err = ErrAlreadyExists
			break
		}

		delete(sourceParent.children, sourceName)
		sourceDir.name = targetName
		targetParent.children[targetName] = sourceDir
	}

	writerExit(lca)
	releaseStack(stack, readerExit)
	return err
}
