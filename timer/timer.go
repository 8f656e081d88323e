// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package timer

import "container/heap"

// Callback is invoked with the entry's due time when Advance dispatches it.
type Callback func(due int64)

type entry struct {
	due int64
	seq uint64
	fn  Callback
}

type entryHeap []*entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x any)   { *h = append(*h, x.(*entry)) }
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Wheel holds a min-heap of due-time-ordered callbacks.
type Wheel struct {
	mu      spinMutex
	heap    entryHeap
	nextSeq uint64
}

// New creates an empty timer wheel.
func New() *Wheel {
	return &Wheel{}
}

// RegisterTimer inserts fn due at start. If interval and end are both
// non-zero, it instead inserts an arithmetic progression of entries
// over [start, end] stepping by interval, skipping any instant within
// [blackoutStart, blackoutEnd] when blackoutEnd is non-zero.
func (w *Wheel) RegisterTimer(fn Callback, start, interval, end, blackoutStart, blackoutEnd int64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if interval != 0 && end != 0 {
		for tm := start; tm <= end; tm += interval {
			if blackoutEnd != 0 && tm >= blackoutStart && tm <= blackoutEnd {
				continue
			}
			w.push(tm, fn)
		}
		return
	}
	w.push(start, fn)
}

func (w *Wheel) push(due int64, fn Callback) {
	w.nextSeq++
	heap.Push(&w.heap, &entry{due: due, seq: w.nextSeq, fn: fn})
}

// Advance pops and invokes at most one callback whose due time is <=
// now. Returns whether it dispatched one.
func (w *Wheel) Advance(now int64) bool {
	w.mu.Lock()
	if len(w.heap) == 0 || w.heap[0].due > now {
		w.mu.Unlock()
		return false
	}
	item := heap.Pop(&w.heap).(*entry)
	w.mu.Unlock()

	item.fn(item.due)
	return true
}
