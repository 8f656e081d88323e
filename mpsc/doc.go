// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mpsc implements unbounded multi-producer single-consumer
// queues using a tail-exchange linked list with a permanent stub node.
//
// Push exchanges the tail pointer (an atomic swap, here a CAS retry
// loop since the underlying atomic type exposes no native exchange)
// and links the previous tail's next pointer to the new node; this is
// safe for any number of concurrent producers because each producer
// owns a distinct node until it is linked in.
//
// Pop consumes a chunk starting from the stub: when the local head has
// caught up to the stub, it busy-waits for the stub's next pointer (set
// by whichever producer's Push is currently racing to finish linking
// in), detaches that chunk, and reinserts the stub at the new tail so
// the next Pop has a fresh chunk to walk. A producer that has called
// tail.exchange but not yet stored into prev.next briefly blocks Pop;
// this is the only busy-wait window and it matches the original
// algorithm's (documented) behavior.
//
// Two flavors are provided:
//
//	Queue[T]          - non-intrusive: the queue allocates one node per Put
//	IntrusiveQueue[T]  - caller-owned nodes: T embeds Node as its first
//	                     field, so no allocation happens inside Push/Pop
package mpsc
