// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package active_test

import (
	"testing"

	"code.hybscloud.com/concur/active"
)

// TestActiveFIFOPerProducer is invariant 11: tasks submitted by one
// goroutine run in submission order.
func TestActiveFIFOPerProducer(t *testing.T) {
	a := active.New()
	defer a.Close()

	const n = 1000
	results := make(chan int, n)
	for i := 0; i < n; i++ {
		i := i
		a.Submit(func() { results <- i })
	}

	for i := 0; i < n; i++ {
		if got := <-results; got != i {
			t.Fatalf("task %d ran out of order, got %d", i, got)
		}
	}
}

func TestSubmitForReturnsValue(t *testing.T) {
	a := active.New()
	defer a.Close()

	fut := active.SubmitFor(a, func() int { return 42 })
	got, err := fut.Get()
	if err != nil {
		t.Fatalf("Get: unexpected error %v", err)
	}
	if got != 42 {
		t.Fatalf("Get: got %d, want 42", got)
	}
}

func TestSubmitForCapturesPanic(t *testing.T) {
	a := active.New()
	defer a.Close()

	fut := active.SubmitFor(a, func() int {
		panic("boom")
	})
	_, err := fut.Get()
	if err == nil {
		t.Fatal("expected error from panicking task")
	}
}

func TestCloseRunsTasksSubmittedBeforeIt(t *testing.T) {
	a := active.New()
	ran := make(chan struct{}, 1)
	a.Submit(func() { ran <- struct{}{} })
	a.Close()

	select {
	case <-ran:
	default:
		t.Fatal("task submitted before Close did not run")
	}
}

func TestMonitorSerializesAccess(t *testing.T) {
	m := active.NewMonitor(0)
	const n = 1000
	done := make(chan struct{})
	for i := 0; i < n; i++ {
		go func() {
			active.Call(m, func(v *int) struct{} {
				*v++
				return struct{}{}
			})
			done <- struct{}{}
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}
	got := active.Call(m, func(v *int) int { return *v })
	if got != n {
		t.Fatalf("got %d, want %d", got, n)
	}
}
