// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree implements a thread-safe, in-memory hierarchical directory
// tree: list, create, remove and move directories addressed by textual
// path, with as much parallelism between non-conflicting operations as
// the locking protocol below can admit. Every node is an (unordered)
// container of named child nodes; there is no notion of a file distinct
// from a directory, and nothing is ever written to disk.
//
// Paths are absolute, '/'-delimited, and always begin and end with '/':
// "/", or "/c1/c2/.../cn/" where each ci is 1-255 lowercase ASCII letters
// and the whole string is at most MaxPathLen long. See IsValid.
//
// # Locking protocol
//
// Each node carries its own reader/writer lock (rendezvous). list
// acquires a reader lock on every node from the root down to its target.
// create and remove acquire reader locks on the path down to the parent
// directory and a writer lock on the parent itself — the operation reads
// its way down but mutates only at the end. Both always acquire in
// root-to-target order and release in the reverse order, so any two of
// them either share a compatible prefix of reader locks or diverge at
// some ancestor and never contend further.
//
// move needs two locks — source's parent and target's parent — which, if
// acquired independently, is the classic two-forks deadlock: two
// concurrent moves can each hold one fork and wait forever for the
// other. move avoids this by writer-locking the lowest common ancestor
// of the two parents first, and reaching both parents from there with no
// further locking at all; the writer lock on the LCA already excludes
// every other operation from the whole subtree it roots, including both
// parents. This reduces move's two-lock problem to the same single
// root-to-target acquisition every other operation already uses, so the
// system as a whole acquires locks in one total order and is
// deadlock-free.
package tree
