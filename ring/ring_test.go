// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"testing"

	"code.hybscloud.com/concur/mem"
	"code.hybscloud.com/concur/ring"
)

func newHeapRing(t *testing.T, capacity int) *ring.Ring {
	t.Helper()
	space, err := mem.Allocate(capacity)
	if err != nil {
		t.Fatalf("mem.Allocate: %v", err)
	}
	t.Cleanup(func() { space.Close() })

	r, err := ring.Init(space, 1, 0)
	if err != nil {
		t.Fatalf("ring.Init: %v", err)
	}
	return r
}

// record32 builds a 32-byte record with the first n bytes set to c and the
// rest zero, mirroring S1's "'a'+i then null" content.
func record32(c byte, n int) [32]byte {
	var rec [32]byte
	for i := 0; i < n && i < len(rec); i++ {
		rec[i] = c
	}
	return rec
}

type fixed32Codec struct{}

func (fixed32Codec) RecordSize() uint32 { return 32 }

func (fixed32Codec) Serialize(v [32]byte, scratch []byte) []byte {
	copy(scratch, v[:])
	return scratch[:32]
}

func (fixed32Codec) Deserialize(buf []byte) ([32]byte, bool, uint32) {
	var v [32]byte
	copy(v[:], buf[:32])
	return v, true, 32
}

// TestRingFixedRecordRoundtrip is scenario S1: capacity = 256 KiB, single
// producer writes twenty 32-byte records, single reader reads them back
// identically and in order.
func TestRingFixedRecordRoundtrip(t *testing.T) {
	r := newHeapRing(t, 256*1024)
	codec := fixed32Codec{}

	want := make([][32]byte, 20)
	for i := 0; i < 20; i++ {
		want[i] = record32('a'+byte(i), i+1)
		if !ring.Write[[32]byte](r, codec, want[i]) {
			t.Fatalf("Write record %d failed", i)
		}
	}

	for i := 0; i < 20; i++ {
		got, ok := ring.Read[[32]byte](r, codec)
		if !ok {
			t.Fatalf("Read record %d: not ok", i)
		}
		if got != want[i] {
			t.Fatalf("record %d: got %v, want %v", i, got, want[i])
		}
	}

	if _, ok := ring.Read[[32]byte](r, codec); ok {
		t.Fatal("Read on empty ring should fail")
	}
}

type pair struct {
	A uint64
	B float64
}

type pairCodec struct{}

func (pairCodec) RecordSize() uint32 { return 16 }

func (pairCodec) Serialize(v pair, scratch []byte) []byte {
	binary.LittleEndian.PutUint64(scratch[0:8], v.A)
	binary.LittleEndian.PutUint64(scratch[8:16], math.Float64bits(v.B))
	return scratch[:16]
}

func (pairCodec) Deserialize(buf []byte) (pair, bool, uint32) {
	a := binary.LittleEndian.Uint64(buf[0:8])
	b := math.Float64frombits(binary.LittleEndian.Uint64(buf[8:16]))
	return pair{A: a, B: b}, true, 16
}

// TestRingSharedMemoryStructRoundtrip is scenario S2: both parties open a
// named shared-memory segment and exchange {u64,f64} records.
func TestRingSharedMemoryStructRoundtrip(t *testing.T) {
	name := fmt.Sprintf("concur-ring-test-%d", os.Getpid())

	writerSpace, err := mem.CreateShared(name, 64*1024)
	if err != nil {
		t.Fatalf("CreateShared: %v", err)
	}
	t.Cleanup(func() { writerSpace.Close() })

	writer, err := ring.Init(writerSpace, 16, 16)
	if err != nil {
		t.Fatalf("ring.Init: %v", err)
	}

	readerSpace, err := mem.AttachShared(name)
	if err != nil {
		t.Fatalf("AttachShared: %v", err)
	}
	t.Cleanup(func() { readerSpace.Close() })

	reader, err := ring.Attach(readerSpace, 16)
	if err != nil {
		t.Fatalf("ring.Attach: %v", err)
	}

	codec := pairCodec{}
	for i := 0; i < 20; i++ {
		v := pair{A: uint64(i), B: float64(i)}
		if !ring.Write[pair](writer, codec, v) {
			t.Fatalf("Write %d failed", i)
		}
	}
	for i := 0; i < 20; i++ {
		got, ok := ring.Read[pair](reader, codec)
		if !ok {
			t.Fatalf("Read %d: not ok", i)
		}
		if got.A != uint64(i) || got.B != float64(i) {
			t.Fatalf("record %d: got %+v, want A=%d B=%g", i, got, i, float64(i))
		}
	}
}

type lengthPrefixedCodec struct{}

func (lengthPrefixedCodec) RecordSize() uint32 { return 0 }

func (lengthPrefixedCodec) Serialize(v []byte, _ []byte) []byte {
	out := make([]byte, 8+len(v))
	binary.LittleEndian.PutUint64(out[0:8], uint64(len(v)))
	copy(out[8:], v)
	return out
}

func (lengthPrefixedCodec) Deserialize(buf []byte) ([]byte, bool, uint32) {
	if len(buf) < 8 {
		return nil, false, 0
	}
	n := binary.LittleEndian.Uint64(buf[0:8])
	if uint64(len(buf)-8) < n {
		return nil, false, 0
	}
	v := make([]byte, n)
	copy(v, buf[8:8+n])
	return v, true, uint32(8 + n)
}

// TestRingVariableLengthCodec is scenario S3: twenty variable-length byte
// arrays of increasing length, framed by an 8-byte length prefix.
func TestRingVariableLengthCodec(t *testing.T) {
	r := newHeapRing(t, 64*1024)
	codec := lengthPrefixedCodec{}

	want := make([][]byte, 20)
	for i := range want {
		buf := make([]byte, i+1)
		for j := range buf {
			buf[j] = byte(i)
		}
		want[i] = buf
		if !ring.Write[[]byte](r, codec, buf) {
			t.Fatalf("Write %d failed", i)
		}
	}

	for i, w := range want {
		got, ok := ring.Read[[]byte](r, codec)
		if !ok {
			t.Fatalf("Read %d: not ok", i)
		}
		if string(got) != string(w) {
			t.Fatalf("record %d: got %v, want %v", i, got, w)
		}
	}
}

// TestRingWrapCorrectness exercises invariant 3: crossing the wrap
// boundary yields the same sequence as a non-wrapping equivalent. A small
// ring forces several wraps while pushing through far more bytes than its
// capacity.
func TestRingWrapCorrectness(t *testing.T) {
	r := newHeapRing(t, 1024) // 1 KiB space: under 1 KiB usable after the header, so 500 records wrap repeatedly
	codec := fixed32Codec{}

	next := 0 // index of the record the reader expects next
	readOne := func() bool {
		got, ok := ring.Read[[32]byte](r, codec)
		if !ok {
			return false
		}
		if got != record32(byte(next), 1) {
			t.Fatalf("record %d: got first byte %d, want %d", next, got[0], byte(next))
		}
		next++
		return true
	}

	const n = 500 // far more than capacity/32 without draining would allow; interleaved below
	for i := 0; i < n; i++ {
		rec := record32(byte(i), 1)
		for !ring.Write[[32]byte](r, codec, rec) {
			// Drain one to make room, single-threaded producer/consumer
			// interleaving within one goroutine for this test.
			if !readOne() {
				t.Fatalf("ring stuck full but not readable at record %d", i)
			}
		}
	}
	for readOne() {
	}
	if next != n {
		t.Fatalf("read %d records, want %d", next, n)
	}
}
