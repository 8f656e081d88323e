// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cerr defines the shared error kinds raised across the concur
// toolkit's components: mem and ring, plus mpmc.New's capacity check
// (mpmc, mpsc, seqlock, mvcc, and
// wordlock report exhaustion and contention through (T, bool)/bool
// returns instead, matching their try_* operations' C++ origins, not
// through these sentinels).
//
// The core never logs; it surfaces. Every fallible constructor and
// operation returns one of these sentinel kinds (optionally wrapped with
// context via fmt.Errorf's %w), classifiable with the Is* helpers below.
package cerr

import "errors"

var (
	// ErrInvalidArgument is returned for caller errors: zero-sized shared
	// memory creation, capacity < 1, a codec reporting a malformed record.
	ErrInvalidArgument = errors.New("concur: invalid argument")

	// ErrIO wraps an underlying OS failure: shared-memory open, map,
	// truncate, or stat.
	ErrIO = errors.New("concur: i/o failure")

	// ErrMagicMismatch means an attach target's header magic does not
	// match the expected value. Non-recoverable.
	ErrMagicMismatch = errors.New("concur: magic mismatch")

	// ErrPeerNotReady means attach observed initialized == 0 after the
	// spin budget expired. The caller may retry or give up.
	ErrPeerNotReady = errors.New("concur: peer not ready")
)

// IsInvalidArgument reports whether err is or wraps ErrInvalidArgument.
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool { return errors.Is(err, ErrIO) }

// IsMagicMismatch reports whether err is or wraps ErrMagicMismatch.
func IsMagicMismatch(err error) bool { return errors.Is(err, ErrMagicMismatch) }

// IsPeerNotReady reports whether err is or wraps ErrPeerNotReady.
func IsPeerNotReady(err error) bool { return errors.Is(err, ErrPeerNotReady) }
