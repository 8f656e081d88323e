// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package active implements the active object pattern — a worker
// goroutine draining an unbounded FIFO task queue — plus Monitor, a
// scoped-mutex wrapper for a single resource.
//
// Active owns a code.hybscloud.com/concur/mpsc.IntrusiveQueue, the
// unbounded intrusive MPSC flavor: Submit allocates one node per task
// and pushes it without blocking, and the worker drains the queue in
// the background, one task at a time, in the order each producer
// submitted them (the queue's own FIFO-per-producer contract).
//
// Close enqueues a terminal sentinel that flips a done flag the
// worker checks after running each task, then waits for the worker to
// exit. Everything submitted by the thread that calls Close, before
// it calls Close, is guaranteed to run; tasks submitted concurrently
// by other producers racing with Close may or may not run — the
// worker stops as soon as it has run the sentinel.
//
// SubmitFor wraps a typed function in a promise: the worker fulfills
// the returned Future's value, or captures a panic and surfaces it as
// an error on Get, rather than crashing the worker goroutine.
package active
