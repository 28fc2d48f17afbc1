// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "strings"

// MaxPathLen is the longest a valid path string may be, excluding a
// terminating null character (this package works with Go strings, so
// there's no null, but the bound is kept identical to the reference
// implementation's).
const MaxPathLen = 4095

// MaxNameLen is the longest a single path component may be.
const MaxNameLen = 255

// rootPath names the root directory.
const rootPath = "/"

// IsValid reports whether path has the form "/" or
// "/c1/c2/.../cn/" where each ci is 1-255 lowercase ASCII letters, and the
// total length is at most MaxPathLen.
func IsValid(path string) bool {
	n := len(path)
	if n == 0 || n > MaxPathLen {
		return false
	}
	if path[0] != '/' || path[n-1] != '/' {
		return false
	}

	start := 1
	for start < n {
		end := strings.IndexByte(path[start:], '/')
		if end < 0 {
			return false
		}
		end += start
		segLen := end - start
		if segLen < 1 || segLen > MaxNameLen {
			return false
		}
		for i := start; i < end; i++ {
			if path[i] < 'a' || path[i] > 'z' {
				return false
			}
		}
		start = end + 1
	}

	return true
}

// SplitHead returns the first component of a valid non-root path and the
// remainder, itself a valid path. ok is false when path is "/".
func SplitHead(path string) (component, rest string, ok bool) {
	end := strings.IndexByte(path[1:], '/')
	if end < 0 {
		return "", "", false
	}
	end++ // index relative to path, not path[1:]
	return path[1:end], path[end:], true
}

// ParentAndTail splits a valid non-root path into its parent path (itself
// a valid path, ending in "/") and its last component. ok is false when
// path is "/".
func ParentAndTail(path string) (parent, last string, ok bool) {
	if path == rootPath {
		return "", "", false
	}
	// p points at the '/' just before the final component.
	p := strings.LastIndexByte(path[:len(path)-1], '/')
	return path[:p+1], path[p+1 : len(path)-1], true
}

// IsProperDescendant reports whether descendant names a directory strictly
// below ancestor: descendant starts with ancestor as a path prefix and is
// not equal to it. Both arguments must be valid paths.
func IsProperDescendant(ancestor, descendant string) bool {
	if ancestor == descendant {
		return false
	}
	return strings.HasPrefix(descendant, ancestor)
}

// LCA returns the longest shared valid-path prefix of p1 and p2 (the
// lowest common ancestor path) together with the residual tails of p1 and
// p2 below it. The tails are themselves valid paths relative to the LCA
// node: each begins with "/". LCA compares whole path components, not
// character prefixes, so LCA("/a/b/", "/a/bb/") is "/a/", never "/a/b".
func LCA(p1, p2 string) (lca, p1Tail, p2Tail string) {
	last := 0 // index just past the last shared '/'
	n := minInt(len(p1), len(p2))
	for i := 0; i < n; i++ {
		if p1[i] != p2[i] {
			break
		}
		if p1[i] == '/' {
			last = i + 1
		}
	}
	return p1[:last], p1[last-1:], p2[last-1:]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
