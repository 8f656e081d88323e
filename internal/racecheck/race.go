// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

// Package racecheck reports whether the race detector is active, so
// tests can skip concurrent cases for algorithms (seqlock, sequence
// lock readers, optimistic word lock reads) that are racy by design
// and trip false positives under -race.
package racecheck

// Enabled is true when the race detector is active.
const Enabled = true
