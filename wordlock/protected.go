// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wordlock

import "time"

// Protected pairs a Lock with the value it guards, for callers who
// don't need to place the lock and the data separately (e.g. across a
// shared-memory boundary with independent layout requirements).
type Protected[T any] struct {
	lock  Lock
	value T
}

// NewProtected creates a Protected cell holding initial.
func NewProtected[T any](initial T) *Protected[T] {
	return &Protected[T]{value: initial}
}

// Write acquires exclusive access, stores value, then releases.
func (p *Protected[T]) Write(deadline time.Time, value T) {
	p.lock.Enter(deadline)
	p.value = value
	p.lock.Leave()
}

// ReadOptimistic returns the current value using the optimistic
// protocol. Reports false if no consistent read was obtained within
// the retry bound.
func (p *Protected[T]) ReadOptimistic() (T, bool) {
	var out T
	ok := p.lock.OptimisticRead(func() { out = p.value })
	return out, ok
}

// ReadPessimistic returns the current value using the pessimistic
// protocol, registering as reader id. Reports false on timeout.
func (p *Protected[T]) ReadPessimistic(id int, deadline time.Time) (T, bool) {
	var out T
	ok := p.lock.PessimisticRead(id, deadline, func() { out = p.value })
	return out, ok
}
