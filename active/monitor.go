// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package active

import "sync"

// Monitor wraps a resource behind a mutex, like Java's synchronized
// blocks: every access goes through Call, which acquires the mutex,
// applies the function, and releases it.
type Monitor[T any] struct {
	mu       sync.Mutex
	resource T
}

// NewMonitor creates a Monitor holding initial.
func NewMonitor[T any](initial T) *Monitor[T] {
	return &Monitor[T]{resource: initial}
}

// Call acquires m's mutex, applies f to the guarded resource, and
// releases the mutex before returning f's result.
func Call[T, R any](m *Monitor[T], f func(*T) R) R {
	m.mu.Lock()
	defer m.mu.Unlock()
	return f(&m.resource)
}
