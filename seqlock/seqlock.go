// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seqlock

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// pad is cache line padding to prevent false sharing with adjacent data.
type pad [128]byte

// Cell holds one value of type T behind a sequence lock. T should be
// cheap and trivial to copy; large T defeats the point (readers copy
// the whole value on every attempt).
type Cell[T any] struct {
	_     pad
	value T
	seq   atomix.Uint64
	_     pad
}

// New creates a Cell holding initial.
func New[T any](initial T) *Cell[T] {
	c := &Cell[T]{value: initial}
	c.seq.StoreRelaxed(0)
	return c
}

// Load returns the most recently Stored value, retrying until it reads
// a consistent snapshot (no writer was mid-store).
func (c *Cell[T]) Load() T {
	sw := spin.Wait{}
	for {
		seq0 := c.seq.LoadAcquire()
		copy := c.value
		seq1 := c.seq.LoadAcquire()
		if seq0 == seq1 && seq0&1 == 0 {
			return copy
		}
		sw.Once()
	}
}

// Store publishes desired. Not safe for concurrent callers; the caller
// must serialize writers externally if more than one exists.
func (c *Cell[T]) Store(desired T) {
	seq0 := c.seq.LoadRelaxed()
	c.seq.StoreRelease(seq0 + 1)
	c.value = desired
	c.seq.StoreRelease(seq0 + 2)
}
