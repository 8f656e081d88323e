// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mvcc implements a multi-version cell: a shared pointer to an
// immutable (version, value) snapshot, published by compare-and-swap.
//
// Readers call Load and get back a stable snapshot in constant time;
// the snapshot they hold stays valid for as long as they keep the
// pointer, regardless of later publishes. Writers never block readers
// and never block each other beyond retrying a lost CAS.
//
// Versions increase by exactly one per successful publish, starting
// from the cell's initial version.
package mvcc
