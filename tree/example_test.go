// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"fmt"

	"github.com/ggegoge/concurrent-file-tree/tree"
)

// This example replays the reference implementation's simple_tree_test
// scenario from original_source/main.c against the Go implementation.
func Example() {
	t := tree.New()
	defer t.Close()

	must := func(err error) {
		if err != nil {
			fmt.Println("error:", err)
		}
	}

	must(t.Create("/a/"))
	must(t.Create("/b/"))

	listing, _ := t.List("/")
	fmt.Println(listing)

	must(t.Create("/a/b/"))
	must(t.Create("/a/c/"))

	must(t.Move("/a/", "/b/c2/"))

	listing, _ = t.List("/")
	fmt.Println(listing)
	listing, _ = t.List("/b/c2/")
	fmt.Println(listing)

	// Output:
	// a,b
	// b
	// b,c
}
