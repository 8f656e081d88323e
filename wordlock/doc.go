// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wordlock implements a single packed 64-bit word lock: no
// allocation, safe to place in shared memory. Low 12 bits are a
// per-reader bitset (up to twelve concurrently identified readers,
// one bit per id); the high 52 bits are a version counter.
//
// There is a single writer. Enter compare-and-swaps the version from
// even v to odd v+1, waiting for the reader bitset to read zero;
// bounded by a deadline, past which it forces the store anyway (a
// documented liveness hazard: a straggling reader's pessimistic read
// may then fail its version check). Leave is a plain release store
// from v+1 to v+2.
//
// Readers choose one of two protocols:
//
//   - Optimistic: snapshot the version, copy the protected data,
//     snapshot again; accept only if the version didn't change and
//     was never odd. Bounded retry count; on exhaustion the caller
//     escalates (e.g. to the pessimistic protocol).
//   - Pessimistic: CAS to set this reader's bit while advancing a
//     locally-forced copy of the version to the next even number,
//     copy the data, CAS to clear the bit, compare the two observed
//     versions. Bounded by a deadline; past it, reports timeout.
//
// The lock is not reentrant and callers must assign unique reader ids
// in [0, MaxReaders).
package wordlock
