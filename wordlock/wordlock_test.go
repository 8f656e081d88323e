// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wordlock_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/concur/internal/racecheck"
	"code.hybscloud.com/concur/wordlock"
)

func TestWriteThenReadOptimistic(t *testing.T) {
	p := wordlock.NewProtected(0)
	p.Write(time.Now().Add(time.Second), 42)
	got, ok := p.ReadOptimistic()
	if !ok || got != 42 {
		t.Fatalf("ReadOptimistic: got (%d,%v), want (42,true)", got, ok)
	}
}

func TestWriteThenReadPessimistic(t *testing.T) {
	p := wordlock.NewProtected(0)
	p.Write(time.Now().Add(time.Second), 7)
	got, ok := p.ReadPessimistic(0, time.Now().Add(time.Second))
	if !ok || got != 7 {
		t.Fatalf("ReadPessimistic: got (%d,%v), want (7,true)", got, ok)
	}
}

func TestPessimisticReadersDoNotStarveEachOther(t *testing.T) {
	p := wordlock.NewProtected(1)
	for id := 0; id < wordlock.MaxReaders; id++ {
		got, ok := p.ReadPessimistic(id, time.Now().Add(time.Second))
		if !ok || got != 1 {
			t.Fatalf("reader %d: got (%d,%v), want (1,true)", id, got, ok)
		}
	}
}

// TestWriterExclusionHappyPath is invariant 9: while a writer holds
// the lock, optimistic readers either fail their post-check or see
// pre-write state; once the writer has left, readers observe the new
// value consistently.
func TestWriterExclusionHappyPath(t *testing.T) {
	if racecheck.Enabled {
		t.Skip("optimistic readers intentionally race with the writer; skip under -race")
	}

	p := wordlock.NewProtected(0)
	const iterations = 5000

	var wg sync.WaitGroup
	stop := make(chan struct{})
	observed := make(chan int, 1024)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			if v, ok := p.ReadOptimistic(); ok {
				select {
				case observed <- v:
				default:
				}
			}
		}
	}()

	for i := 1; i <= iterations; i++ {
		p.Write(time.Now().Add(100*time.Millisecond), i)
	}
	close(stop)
	wg.Wait()
	close(observed)

	for v := range observed {
		if v < 0 || v > iterations {
			t.Fatalf("reader observed %d outside [0,%d]", v, iterations)
		}
	}

	final, ok := p.ReadOptimistic()
	if !ok || final != iterations {
		t.Fatalf("final ReadOptimistic: got (%d,%v), want (%d,true)", final, ok, iterations)
	}
}
