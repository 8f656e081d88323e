// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "unsafe"

// Typed is the typed-pointer API: the same ring, addressed in units of a
// fixed-size element T instead of bytes.
type Typed[T any] struct {
	*Ring
}

// NewTyped wraps r as a Typed[T] ring. The caller is responsible for
// having Init'd or Attach'd r with elemSize == sizeof(T).
func NewTyped[T any](r *Ring) Typed[T] {
	return Typed[T]{Ring: r}
}

func elemSizeOf[T any]() uint32 {
	var zero T
	return uint32(unsafe.Sizeof(zero))
}

// AcquireWrite borrows a contiguous writable region of exactly n
// elements, or nil if unavailable.
func (t Typed[T]) AcquireWrite(n uint32) []T {
	buf := t.Ring.AcquireWrite(n * elemSizeOf[T]())
	if buf == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf))), n)
}

// AcquireWriteMax borrows the maximum contiguous writable region
// currently available, in whole elements.
func (t Typed[T]) AcquireWriteMax() []T {
	size := elemSizeOf[T]()
	buf := t.Ring.AcquireWriteMax()
	n := uint32(len(buf)) / size
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf))), n)
}

// CommitWrite publishes n elements previously filled via AcquireWrite.
func (t Typed[T]) CommitWrite(n uint32) {
	t.Ring.CommitWrite(n * elemSizeOf[T]())
}

// AcquireRead borrows a contiguous readable region of exactly n
// elements, or nil if unavailable.
func (t Typed[T]) AcquireRead(n uint32) []T {
	buf := t.Ring.AcquireRead(n * elemSizeOf[T]())
	if buf == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf))), n)
}

// AcquireReadMax borrows the maximum contiguous readable region
// currently available, in whole elements.
func (t Typed[T]) AcquireReadMax() []T {
	size := elemSizeOf[T]()
	buf := t.Ring.AcquireReadMax()
	n := uint32(len(buf)) / size
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf))), n)
}

// CommitRead releases n elements previously consumed via AcquireRead.
func (t Typed[T]) CommitRead(n uint32) {
	t.Ring.CommitRead(n * elemSizeOf[T]())
}
