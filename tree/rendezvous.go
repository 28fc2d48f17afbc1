// Copyright 2026 the concurrent-file-tree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"sync"

	"github.com/ggegoge/concurrent-file-tree/internal/fatalerr"
)

// errNotHeld is a programming error: a lock was released without having
// been acquired.
var errNotHeld = errors.New("rendezvous: release of a lock not held")

// rendezvous is the per-node reader/writer synchronization primitive.
// Readers may coexist; at most one writer may be active; writers are
// admitted only when no reader is active or waiting. New readers queue
// behind a waiting writer, and the last reader to leave wakes a waiting
// writer before any waiting reader; a leaving writer wakes waiting
// readers before any waiting writer.
//
// Waiters re-check their predicate on every wakeup and only leave their
// wait loop once a wake token deposited by a releaser is present, so a
// spurious wakeup from sync.Cond can never be mistaken for a real one.
type rendezvous struct {
	mu sync.Mutex
	rc *sync.Cond // signalled/broadcast to wake waiting readers
	wc *sync.Cond // signalled to wake a single waiting writer

	readersWaiting int
	writersWaiting int
	readersActive  int
	writersActive  int

	readersWoken int
	writersWoken int
}

func newRendezvous() *rendezvous {
	r := &rendezvous{}
	r.rc = sync.NewCond(&r.mu)
	r.wc = sync.NewCond(&r.mu)
	return r
}

// acquireReader blocks until no writer is active or waiting, then admits
// the calling goroutine as a reader.
func (r *rendezvous) acquireReader() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for r.writersActive > 0 || r.writersWaiting > 0 {
		r.readersWaiting++
		r.rc.Wait()
		r.readersWaiting--

		if r.readersWoken > 0 {
			r.readersWoken--
			break
		}
	}

	r.readersActive++
}

// releaseReader removes the calling goroutine's reader admission. If it
// is the last active reader, writers are waiting, and no reader wakeup is
// still pending, it wakes exactly one writer; otherwise, if it is the
// last active reader, it (re-)wakes all waiting readers.
func (r *rendezvous) releaseReader() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.readersActive == 0 {
		fatalerr.OnLockFailure(errNotHeld, "releaseReader")
	}
	r.readersActive--

	// readersWoken > 0 means a prior broadcast already woke some readers
	// that haven't yet managed to increment readersActive. Signalling a
	// writer here would let it become active while those readers are
	// still guaranteed to follow, so a writer wakeup is only safe once
	// readersWoken has drained to zero.
	if r.readersActive == 0 && r.writersWaiting > 0 && r.readersWoken == 0 {
		r.writersWoken = 1
		r.wc.Signal()
	} else if r.readersActive == 0 {
		r.readersWoken = r.readersWaiting
		r.rc.Broadcast()
	}
}

// acquireWriter blocks until no reader or writer is active or waiting,
// then admits the calling goroutine as the sole writer.
func (r *rendezvous) acquireWriter() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for r.readersActive > 0 || r.writersActive > 0 ||
		r.readersWaiting > 0 || r.writersWaiting > 0 {
		r.writersWaiting++
		r.wc.Wait()
		r.writersWaiting--

		if r.writersWoken > 0 {
			r.writersWoken--
			break
		}
	}

	r.writersActive++
}

// releaseWriter relinquishes write admission. Waiting readers, if any,
// are woken in preference to waiting writers.
func (r *rendezvous) releaseWriter() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.writersActive == 0 {
		fatalerr.OnLockFailure(errNotHeld, "releaseWriter")
	}
	r.writersActive--

	if r.readersWaiting > 0 {
		r.readersWoken = r.readersWaiting
		r.rc.Broadcast()
	} else if r.writersWaiting > 0 {
		r.writersWoken = 1
		r.wc.Signal()
	}
}

// idle reports whether no reader or writer is active or waiting on r. It
// is used only by tests to check lock quiescence after an operation.
func (r *rendezvous) idle() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readersActive == 0 && r.writersActive == 0 &&
		r.readersWaiting == 0 && r.writersWaiting == 0
}
