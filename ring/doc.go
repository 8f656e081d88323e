// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring implements a single-producer single-consumer circular
// buffer over a code.hybscloud.com/concur/mem.Space. The producer and
// consumer may be in different processes if the underlying Space is
// shared memory.
//
// Three APIs are provided over the same byte ring:
//
//	Pointer API        - AcquireRead/CommitRead, AcquireWrite/CommitWrite
//	Typed pointer API   - Typed[T], same shape in units of T
//	Value API           - Write/Read/ReadBatch, driven by a Codec[T]
//
// Initialization mode (Init) constructs the header and publishes
// initialized=1 last, with release ordering. Attachment mode (Attach)
// spin-waits briefly for initialized==1 with acquire ordering; failing
// that, it reports ErrPeerNotReady so the caller can retry or give up.
//
// The ring never spins internally for data to become available or space
// to free up: AcquireRead/AcquireWrite return zero on failure and do not
// move cursors. Starvation avoidance (back-off, yield, condition
// variable) is the caller's responsibility, same as
// code.hybscloud.com/concur/mpmc and mpsc's non-blocking contracts.
package ring
