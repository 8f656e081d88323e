// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mpmc implements a bounded multi-producer multi-consumer queue
// using Dmitry Vyukov's turn-sequenced ring buffer: producers and
// consumers fetch-add a shared ticket counter, then spin on a per-slot
// turn word until it is their turn to act.
//
// A ticket t maps to slot index t mod C and turn t div C. A slot's turn
// alternates even (producible) / odd (consumable): even 2k means the
// slot is ready for the producer whose ticket maps to turn k; odd
// 2k+1 means it is ready for the consumer whose ticket maps to turn k.
//
// Push/Pop block (spin) until their ticket comes up. TryPush/TryPop
// never block: they inspect the head/tail ticket and the slot it
// currently names, and fail immediately if the slot is not yet at the
// expected turn and the ticket has not moved in the meantime. A lost
// CAS or a moved ticket sends them round the loop again with the fresh
// ticket, so their number of retries is bounded only when no other
// goroutine is racing them; under contention there is no such bound.
package mpmc
