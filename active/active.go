// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package active

import (
	"fmt"
	"sync"
	"sync/atomic"

	"code.hybscloud.com/concur/mpsc"
	"code.hybscloud.com/spin"
)

// taskNode is the intrusive node Active pushes onto its queue: one
// allocated per Submit, holding the task it carries. Node must be its
// first field per mpsc.IntrusiveQueue's requirement.
type taskNode struct {
	mpsc.Node
	fn func()
}

// Active owns a worker goroutine and an unbounded FIFO task queue.
type Active struct {
	queue    *mpsc.IntrusiveQueue[taskNode]
	doneFlag atomic.Bool
	wg       sync.WaitGroup
}

// New starts an Active worker.
func New() *Active {
	a := &Active{queue: mpsc.NewIntrusiveQueue[taskNode]()}
	a.wg.Add(1)
	go a.run()
	return a
}

func (a *Active) run() {
	defer a.wg.Done()
	sw := spin.Wait{}
	for {
		n := a.queue.Pop()
		if n == nil {
			if a.doneFlag.Load() {
				return
			}
			sw.Once()
			continue
		}
		sw.Reset()
		n.fn()
		if a.doneFlag.Load() {
			return
		}
	}
}

// Submit enqueues task. Safe to call from any number of goroutines;
// tasks submitted by the same goroutine run in submission order.
func (a *Active) Submit(task func()) {
	a.queue.Push(&taskNode{fn: task})
}

// Close enqueues a terminal sentinel and waits for the worker to run
// it and exit. Tasks this caller submitted before Close are
// guaranteed to have run by the time Close returns; tasks submitted
// concurrently by other goroutines may or may not have run.
func (a *Active) Close() {
	a.Submit(func() { a.doneFlag.Store(true) })
	a.wg.Wait()
}

// Future is the result of a SubmitFor call, fulfilled by the Active
// worker once it runs the wrapped task.
type Future[R any] struct {
	done  chan struct{}
	value R
	panic any
}

// Get blocks until the task has run, returning its result. If the
// task panicked, Get returns the zero value and a non-nil error
// describing the panic instead of propagating it.
func (f *Future[R]) Get() (R, error) {
	<-f.done
	if f.panic != nil {
		var zero R
		return zero, fmt.Errorf("active: task panicked: %v", f.panic)
	}
	return f.value, nil
}

// SubmitFor submits f to a and returns a Future for its result. The
// worker fulfills the Future from inside the same FIFO task slot, so
// SubmitFor preserves the same per-producer ordering as Submit.
func SubmitFor[R any](a *Active, f func() R) *Future[R] {
	fut := &Future[R]{done: make(chan struct{})}
	a.Submit(func() {
		defer func() {
			if r := recover(); r != nil {
				fut.panic = r
			}
			close(fut.done)
		}()
		fut.value = f()
	})
	return fut
}
