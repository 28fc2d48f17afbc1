// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// access walks path from root, applying entry to each node's lock as it
// goes, and returns the target node (nil if some component along the way
// is missing) plus the stack of locks acquired on intermediate nodes, in
// acquisition order. The final node's lock, if acquired at all, is NOT
// pushed onto the stack: the caller owns it and releases it according to
// whatever policy it chose for entry.
//
// A missing intermediate component stops the walk early; the partial
// stack built so far is still returned so the caller can unwind whatever
// was acquired.
func access(root *node, path string, entry entryPolicy) (target *node, stack []*node) {
	cur := root
	rest := path

	for {
		component, tail, ok := SplitHead(rest)
		if !ok {
			break
		}
		if cur == nil {
			break
		}

		entry(cur, false)
		stack = append(stack, cur)
		cur = cur.children[component]
		rest = tail
	}

	if cur != nil {
		entry(cur, true)
	}

	return cur, stack
}

// releaseStack releases, in reverse acquisition order, the locks access
// left on its lock-stack.
func releaseStack(stack []*node, exit exitPolicy) {
	for i := len(stack) - 1; i >= 0; i-- {
		exit(stack[i])
	}
}
