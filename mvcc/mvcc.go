// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mvcc

import (
	"sync/atomic"
	"time"
)

// updateBackoff is the fixed sleep between attempts in UpdateBlocking.
const updateBackoff = 50 * time.Millisecond

// Snapshot is an immutable (version, value) pair. A Cell never mutates
// a Snapshot in place; every publish allocates a new one.
type Snapshot[T any] struct {
	Version uint64
	Value   T
}

// Cell holds a shared, versioned value behind a CAS'd pointer.
type Cell[T any] struct {
	ptr atomic.Pointer[Snapshot[T]]
}

// New creates a Cell at version 0 holding initial.
func New[T any](initial T) *Cell[T] {
	c := &Cell[T]{}
	c.ptr.Store(&Snapshot[T]{Value: initial})
	return c
}

// Load returns the current snapshot. The returned pointer remains
// valid and unchanged for as long as the caller keeps it, even after
// later publishes.
func (c *Cell[T]) Load() *Snapshot[T] {
	return c.ptr.Load()
}

// Overwrite publishes value unconditionally, retrying the CAS against
// whatever the current snapshot is until it succeeds.
func (c *Cell[T]) Overwrite(value T) *Snapshot[T] {
	for {
		cur := c.ptr.Load()
		next := &Snapshot[T]{Version: cur.Version + 1, Value: value}
		if c.ptr.CompareAndSwap(cur, next) {
			return next
		}
	}
}

// TryUpdate computes f(current.Version, current.Value) and attempts a
// single CAS publish. f must be pure: on a lost CAS it is not called
// again by TryUpdate itself, but callers that loop (Update,
// UpdateBlocking, TryUpdateUntil) will invoke it again with the fresh
// snapshot.
func (c *Cell[T]) TryUpdate(f func(version uint64, value T) T) (*Snapshot[T], bool) {
	cur := c.ptr.Load()
	next := &Snapshot[T]{Version: cur.Version + 1, Value: f(cur.Version, cur.Value)}
	if c.ptr.CompareAndSwap(cur, next) {
		return next, true
	}
	return nil, false
}

// Update retries TryUpdate until it succeeds (busy retry, no sleep).
func (c *Cell[T]) Update(f func(version uint64, value T) T) *Snapshot[T] {
	for {
		if snap, ok := c.TryUpdate(f); ok {
			return snap
		}
	}
}

// UpdateBlocking retries TryUpdate until it succeeds, sleeping a fixed
// back-off between attempts so a contended cell does not spin a core.
func (c *Cell[T]) UpdateBlocking(f func(version uint64, value T) T) *Snapshot[T] {
	for {
		if snap, ok := c.TryUpdate(f); ok {
			return snap
		}
		time.Sleep(updateBackoff)
	}
}

// TryUpdateFor retries TryUpdate until it succeeds or timeout elapses.
// Returns a nil snapshot and false if the deadline is reached.
func (c *Cell[T]) TryUpdateFor(timeout time.Duration, f func(version uint64, value T) T) (*Snapshot[T], bool) {
	return c.TryUpdateUntil(time.Now().Add(timeout), f)
}

// TryUpdateUntil retries TryUpdate until it succeeds or deadline
// passes. Returns a nil snapshot and false if the deadline is reached.
func (c *Cell[T]) TryUpdateUntil(deadline time.Time, f func(version uint64, value T) T) (*Snapshot[T], bool) {
	for {
		if snap, ok := c.TryUpdate(f); ok {
			return snap, true
		}
		if time.Now().After(deadline) {
			return nil, false
		}
	}
}
