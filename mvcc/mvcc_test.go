// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mvcc_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/concur/mvcc"
)

func TestLoadOverwrite(t *testing.T) {
	c := mvcc.New(0)
	snap := c.Load()
	if snap.Version != 0 || snap.Value != 0 {
		t.Fatalf("initial snapshot = %+v, want version=0 value=0", snap)
	}
	next := c.Overwrite(7)
	if next.Version != 1 || next.Value != 7 {
		t.Fatalf("Overwrite result = %+v, want version=1 value=7", next)
	}
	if snap.Version != 0 || snap.Value != 0 {
		t.Fatalf("held snapshot mutated: %+v", snap)
	}
}

func TestTryUpdateUntilTimesOutUnderContention(t *testing.T) {
	c := mvcc.New(0)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				c.Overwrite(1)
			}
		}
	}()

	_, ok := c.TryUpdateUntil(time.Now().Add(1*time.Nanosecond), func(_ uint64, v int) int {
		time.Sleep(time.Millisecond)
		return v + 1
	})
	close(stop)
	wg.Wait()
	if ok {
		t.Fatal("expected TryUpdateUntil to time out under contention")
	}
}

// TestMVCCScenarioS7 is scenario S7: start value 0, two writers each
// perform 1000 update(v -> v+1). Final version == 2000 and value ==
// 2000 (invariant 8: versions increase by exactly 1 per publish).
func TestMVCCScenarioS7(t *testing.T) {
	const (
		numWriters = 2
		perWriter  = 1000
	)
	c := mvcc.New(0)

	var wg sync.WaitGroup
	wg.Add(numWriters)
	for w := 0; w < numWriters; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				c.Update(func(_ uint64, v int) int { return v + 1 })
			}
		}()
	}
	wg.Wait()

	final := c.Load()
	if final.Version != numWriters*perWriter {
		t.Fatalf("final version = %d, want %d", final.Version, numWriters*perWriter)
	}
	if final.Value != numWriters*perWriter {
		t.Fatalf("final value = %d, want %d", final.Value, numWriters*perWriter)
	}
}
