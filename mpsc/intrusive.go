// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Node is the intrusive link a node type embeds, as its first field, to
// become eligible for use with IntrusiveQueue. Embedding it anywhere
// else in the struct makes the unsafe.Pointer conversion between *Node
// and *T below invalid.
type Node struct {
	next atomix.Uintptr
}

// exchangeTail performs an atomic swap via CAS retry: the underlying
// atomix.Uintptr exposes compare-and-swap but no native exchange.
func exchangeTail(a *atomix.Uintptr, v uintptr) uintptr {
	old := a.LoadAcquire()
	for !a.CompareAndSwapAcqRel(old, v) {
		old = a.LoadAcquire()
	}
	return old
}

// IntrusiveQueue is an unbounded multi-producer single-consumer queue
// whose nodes are owned by the caller: Push and Pop never allocate. T
// must embed Node as its first field.
type IntrusiveQueue[T any] struct {
	tail atomix.Uintptr // *Node as uintptr, always non-nil after construction
	stub Node
	head *Node
}

// NewIntrusiveQueue creates an empty intrusive queue.
func NewIntrusiveQueue[T any]() *IntrusiveQueue[T] {
	q := &IntrusiveQueue[T]{}
	q.head = &q.stub
	q.tail.StoreRelaxed(uintptr(unsafe.Pointer(&q.stub)))
	return q
}

func nodeOf[T any](elem *T) *Node {
	return (*Node)(unsafe.Pointer(elem))
}

func elemOf[T any](n *Node) *T {
	return (*T)(unsafe.Pointer(n))
}

// Push enqueues elem. Safe for any number of concurrent producers.
// elem must not be reused by the caller until it is returned by Pop.
func (q *IntrusiveQueue[T]) Push(elem *T) {
	n := nodeOf(elem)
	n.next.StoreRelaxed(0)
	prev := (*Node)(unsafe.Pointer(exchangeTail(&q.tail, uintptr(unsafe.Pointer(n)))))
	prev.next.StoreRelease(uintptr(unsafe.Pointer(n)))
}

// Pop removes and returns the oldest element, or nil if the queue is
// currently empty. Pop is safe for a single consumer only.
func (q *IntrusiveQueue[T]) Pop() *T {
	sw := spin.Wait{}
	if q.head == &q.stub {
		if q.tail.LoadAcquire() == uintptr(unsafe.Pointer(&q.stub)) {
			return nil
		}
		for q.stub.next.LoadAcquire() == 0 {
			sw.Once()
		}
		q.head = (*Node)(unsafe.Pointer(q.stub.next.LoadAcquire()))
		q.reinsertStub()
	}

	sw.Reset()
	for q.head.next.LoadAcquire() == 0 {
		sw.Once()
	}
	n := q.head
	q.head = (*Node)(unsafe.Pointer(n.next.LoadAcquire()))
	return elemOf[T](n)
}

func (q *IntrusiveQueue[T]) reinsertStub() {
	q.stub.next.StoreRelaxed(0)
	prev := (*Node)(unsafe.Pointer(exchangeTail(&q.tail, uintptr(unsafe.Pointer(&q.stub)))))
	prev.next.StoreRelease(uintptr(unsafe.Pointer(&q.stub)))
}
