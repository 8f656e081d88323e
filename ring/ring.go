// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"fmt"
	"time"

	"code.hybscloud.com/concur/cerr"
	"code.hybscloud.com/concur/mem"
	"code.hybscloud.com/spin"
)

// attachSpinBudget bounds how long Attach spin-waits for the writer to
// publish initialized=1 before giving up with ErrPeerNotReady.
const attachSpinBudget = 50 * time.Millisecond

// Ring is a single-producer single-consumer circular buffer over a
// mem.Space. See the package doc comment for the API surface.
type Ring struct {
	space *mem.Space
	hdr   *header
	data  []byte
}

// Init constructs a new ring header over space and publishes it. elemSize
// and recordSize describe the element/record contract the attaching peer
// must match; recordSize 0 means variable-length records.
func Init(space *mem.Space, elemSize, recordSize uint32) (*Ring, error) {
	base := space.Base()
	if len(base) <= headerSize {
		return nil, fmt.Errorf("ring: init: %w", cerr.ErrInvalidArgument)
	}

	hdr := headerAt(base)
	hdr.magic = ringMagic
	hdr.metaSize = uint32(headerSize)
	hdr.capacity = uint32(len(base) - headerSize)
	hdr.elementSize = elemSize
	hdr.dataOffset = uint32(headerSize)
	hdr.recordSize = recordSize
	hdr.wrap = 0
	hdr.readerPos.StoreRelaxed(0)
	hdr.writerPos.StoreRelaxed(0)
	hdr.initialized.StoreRelease(1)

	return &Ring{space: space, hdr: hdr, data: base[headerSize:]}, nil
}

// Attach spin-waits briefly for a peer's Init to publish initialized=1,
// then verifies the magic marker and element size before returning a
// Ring view over the same space.
func Attach(space *mem.Space, elemSize uint32) (*Ring, error) {
	base := space.Base()
	if len(base) <= headerSize {
		return nil, fmt.Errorf("ring: attach: %w", cerr.ErrInvalidArgument)
	}
	hdr := headerAt(base)

	sw := spin.Wait{}
	deadline := time.Now().Add(attachSpinBudget)
	for hdr.initialized.LoadAcquire() != 1 {
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("ring: attach: %w", cerr.ErrPeerNotReady)
		}
		sw.Once()
	}

	if hdr.magic != ringMagic {
		return nil, fmt.Errorf("ring: attach: %w", cerr.ErrMagicMismatch)
	}
	if hdr.elementSize != elemSize {
		return nil, fmt.Errorf("ring: attach: element size %d != %d: %w", hdr.elementSize, elemSize, cerr.ErrMagicMismatch)
	}

	return &Ring{space: space, hdr: hdr, data: base[hdr.dataOffset:]}, nil
}

// Cap returns the usable payload capacity in bytes.
func (r *Ring) Cap() int {
	return int(r.hdr.capacity)
}

// AcquireWrite borrows a contiguous writable region of exactly size
// bytes. Returns nil if that many contiguous bytes are not available;
// the cursor is not moved. The caller must CommitWrite the same size
// after filling the region.
func (r *Ring) AcquireWrite(size uint32) []byte {
	wPos := r.hdr.writerPos.LoadRelaxed()
	rPos := r.hdr.readerPos.LoadAcquire()

	if wPos < rPos { // |XXXW     RXXXX|
		if wPos+size < rPos {
			return r.data[wPos : wPos+size]
		}
		return nil
	}
	// |   RXXXXXW    |
	if size <= r.hdr.capacity-wPos {
		return r.data[wPos : wPos+size]
	}
	if size < rPos {
		r.hdr.wrap = wPos
		r.hdr.writerPos.StoreRelaxed(0)
		return r.data[0:size]
	}
	return nil
}

// AcquireWriteMax borrows the maximum contiguous writable region
// currently available. May return a zero-length slice if the ring is
// full.
func (r *Ring) AcquireWriteMax() []byte {
	wPos := r.hdr.writerPos.LoadRelaxed()
	rPos := r.hdr.readerPos.LoadAcquire()

	if wPos < rPos { // |XXXW     RXXXX|
		return r.data[wPos : rPos-1]
	}
	// |   RXXXXXW    |
	if rPos == 0 {
		return r.data[wPos : r.hdr.capacity-1]
	}
	if wPos == r.hdr.capacity {
		r.hdr.wrap = wPos
		r.hdr.writerPos.StoreRelaxed(0)
		return r.data[0 : rPos-1]
	}
	return r.data[wPos:r.hdr.capacity]
}

// CommitWrite publishes size bytes previously filled via AcquireWrite.
func (r *Ring) CommitWrite(size uint32) {
	r.hdr.writerPos.AddAcqRel(size)
}

// AcquireRead borrows a contiguous readable region of exactly size
// bytes. Returns nil if that many contiguous bytes are not yet
// available; the cursor is not moved. The caller must CommitRead the
// same size after consuming the region.
func (r *Ring) AcquireRead(size uint32) []byte {
	wPos := r.hdr.writerPos.LoadAcquire()
	rPos := r.hdr.readerPos.LoadRelaxed()

	if wPos == rPos {
		return nil
	}
	if wPos > rPos { // |   RXXXXXW    |
		if size <= wPos-rPos {
			return r.data[rPos : rPos+size]
		}
		return nil
	}
	// |XXXW     RXXXX|
	if rPos == r.hdr.wrap {
		r.hdr.readerPos.StoreRelaxed(0)
		if size <= wPos {
			return r.data[0:size]
		}
		return nil
	}
	if size <= r.hdr.wrap-rPos {
		return r.data[rPos : rPos+size]
	}
	return nil
}

// AcquireReadMax borrows the maximum contiguous readable region
// currently available. May return a zero-length slice if the ring is
// empty.
func (r *Ring) AcquireReadMax() []byte {
	wPos := r.hdr.writerPos.LoadAcquire()
	rPos := r.hdr.readerPos.LoadRelaxed()

	if wPos == rPos {
		return nil
	}
	if wPos > rPos { // |   RXXXXXW    |
		return r.data[rPos:wPos]
	}
	// |XXXW     RXXXX|
	if rPos == r.hdr.wrap {
		r.hdr.readerPos.StoreRelaxed(0)
		return r.data[0:wPos]
	}
	return r.data[rPos:r.hdr.wrap]
}

// CommitRead releases size bytes previously consumed via AcquireRead.
func (r *Ring) CommitRead(size uint32) {
	r.hdr.readerPos.AddAcqRel(size)
}
