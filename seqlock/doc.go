// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seqlock implements a single-writer multi-reader sequence
// lock: readers never block, writers never wait for readers.
//
// A writer bumps the sequence counter to an odd value, writes the
// payload, then bumps it to the next even value. A reader snapshots
// the sequence, copies the payload, snapshots the sequence again, and
// retries if the two snapshots differ or the first was odd (a write
// was in flight). A reader that completes without retrying has
// observed a value written by exactly one store, atomically.
//
// Store is not safe for concurrent callers; seqlock.Cell assumes a
// single writer, coordinating multiple writers (e.g. with a mutex) is
// the caller's responsibility.
package seqlock
