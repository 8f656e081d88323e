// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package timer implements a timer wheel: a min-heap of (due, callback)
// entries, keyed by due time with insertion order as the tie-break so
// entries due at the same instant fire in registration order.
//
// RegisterTimer inserts either one entry or an arithmetic progression
// of entries across [start, end] stepping by interval, skipping a
// blackout window when one is given. Insertion is serialized by a
// spin mutex.
//
// Advance pops at most one entry whose due time is <= now while
// holding the lock, then invokes its callback outside the lock so a
// slow or reentrant-looking callback never blocks registration.
// Callbacks must not call Advance on the same wheel.
package timer
