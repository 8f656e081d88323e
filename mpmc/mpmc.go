// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpmc

import (
	"fmt"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/concur/cerr"
	"code.hybscloud.com/spin"
)

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// slot holds one queue element plus the turn word that sequences
// producer/consumer access to it.
type slot[T any] struct {
	turn atomix.Uint64
	_    pad
	value T
}

// Queue is a bounded multi-producer multi-consumer queue. Capacity is
// fixed at construction; Push/Pop never allocate.
type Queue[T any] struct {
	_        pad
	head     atomix.Uint64 // producer ticket counter
	_        pad
	tail     atomix.Uint64 // consumer ticket counter
	_        pad
	slots    []slot[T]
	capacity uint64
}

// New creates a bounded MPMC queue of the given capacity. Returns
// cerr.ErrInvalidArgument if capacity < 1.
func New[T any](capacity int) (*Queue[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("mpmc: new: %w", cerr.ErrInvalidArgument)
	}
	q := &Queue[T]{
		slots:    make([]slot[T], capacity),
		capacity: uint64(capacity),
	}
	for i := range q.slots {
		q.slots[i].turn.StoreRelaxed(0)
	}
	return q, nil
}

// Cap returns the queue's fixed capacity.
func (q *Queue[T]) Cap() int {
	return int(q.capacity)
}

func (q *Queue[T]) idx(ticket uint64) uint64  { return ticket % q.capacity }
func (q *Queue[T]) turn(ticket uint64) uint64 { return ticket / q.capacity }

// Push blocks (spinning) until a slot is available, then enqueues v.
func (q *Queue[T]) Push(v T) {
	ticket := q.head.AddAcqRel(1) - 1
	s := &q.slots[q.idx(ticket)]
	want := q.turn(ticket) * 2

	sw := spin.Wait{}
	for s.turn.LoadAcquire() != want {
		sw.Once()
	}
	s.value = v
	s.turn.StoreRelease(want + 1)
}

// TryPush enqueues v without blocking. Returns false if the queue is
// currently full.
func (q *Queue[T]) TryPush(v T) bool {
	ticket := q.head.LoadAcquire()
	for {
		s := &q.slots[q.idx(ticket)]
		want := q.turn(ticket) * 2
		if s.turn.LoadAcquire() == want {
			if q.head.CompareAndSwapAcqRel(ticket, ticket+1) {
				s.value = v
				s.turn.StoreRelease(want + 1)
				return true
			}
			ticket = q.head.LoadAcquire()
			continue
		}
		prev := ticket
		ticket = q.head.LoadAcquire()
		if ticket == prev {
			return false
		}
	}
}

// Pop blocks (spinning) until a value is available, then dequeues it.
func (q *Queue[T]) Pop() T {
	ticket := q.tail.AddAcqRel(1) - 1
	s := &q.slots[q.idx(ticket)]
	want := q.turn(ticket)*2 + 1

	sw := spin.Wait{}
	for s.turn.LoadAcquire() != want {
		sw.Once()
	}
	v := s.value
	var zero T
	s.value = zero
	s.turn.StoreRelease(want + 1)
	return v
}

// TryPop dequeues a value without blocking. Returns (zero, false) if
// the queue is currently empty.
func (q *Queue[T]) TryPop() (T, bool) {
	ticket := q.tail.LoadAcquire()
	for {
		s := &q.slots[q.idx(ticket)]
		want := q.turn(ticket)*2 + 1
		if s.turn.LoadAcquire() == want {
			if q.tail.CompareAndSwapAcqRel(ticket, ticket+1) {
				v := s.value
				var zero T
				s.value = zero
				s.turn.StoreRelease(want + 1)
				return v, true
			}
			ticket = q.tail.LoadAcquire()
			continue
		}
		prev := ticket
		ticket = q.tail.LoadAcquire()
		if ticket == prev {
			var zero T
			return zero, false
		}
	}
}
