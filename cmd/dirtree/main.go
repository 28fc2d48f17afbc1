// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dirtree is the top-level test/driver program for the tree
// package: the spec's external collaborator, not part of the core
// library. It has two subcommands, each against a fresh tree held for the
// lifetime of the process: list, which creates the given paths and lists
// the last one, and demo, which replays the reference implementation's
// simple_tree_test scenario.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ggegoge/concurrent-file-tree/internal/obslog"
	"github.com/ggegoge/concurrent-file-tree/tree"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dirtree",
		Short: "Drive an in-memory concurrent directory tree",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"trace operations and lock transitions")
	root.AddCommand(newDemoCmd())
	root.AddCommand(newListCmd())
	return root
}

// newListCmd demonstrates the list operation against a tree seeded with
// its positional arguments as successive Create calls, listing the last
// one. It exists to give the Create/List path a reachable single-shot
// entry point; the tree itself is never persisted across invocations (see
// the specification's Non-goals on persistence).
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [paths...] -- path",
		Short: "Create the given paths, then list the last one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := newTreeForCLI()
			defer t.Close()

			for _, p := range args[:len(args)-1] {
				if err := t.Create(p); err != nil {
					return err
				}
			}

			listing, err := t.List(args[len(args)-1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), listing)
			return nil
		},
	}
}

func newTreeForCLI() *tree.Tree {
	var opts []tree.Option
	if verbose {
		// Lock transitions are logged at debug level.
		logrus.SetLevel(logrus.DebugLevel)
		opts = append(opts, tree.WithLogger(obslog.New(obslog.AllTopics)))
	}
	return tree.New(opts...)
}

// newDemoCmd reproduces the reference implementation's main.c
// simple_tree_test scenario: create two directories, list, nest more
// directories under one, move a subtree, and list again.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the reference simple_tree_test scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := newTreeForCLI()
			defer t.Close()

			report := func(op string, err error) {
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", op, err)
				}
			}

			report("create /a/", t.Create("/a/"))
			report("create /b/", t.Create("/b/"))

			listing, _ := t.List("/")
			fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", listing)

			report("create /a/b/", t.Create("/a/b/"))
			report("create /a/c/", t.Create("/a/c/"))
			report("create /a/scratch/", t.Create("/a/scratch/"))

			listing, _ = t.List("/a/")
			fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", listing)

			report("move /a/ /b/staging/", t.Move("/a/", "/b/staging/"))

			listing, _ = t.List("/")
			fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", listing)
			listing, _ = t.List("/a/")
			fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", listing)
			listing, _ = t.List("/b/")
			fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", listing)
			listing, _ = t.List("/b/staging/")
			fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", listing)

			report("remove /b/staging/scratch/", t.Remove("/b/staging/scratch/"))

			listing, _ = t.List("/b/staging/")
			fmt.Fprintf(cmd.OutOrStdout(), "\t%s\n", listing)

			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
