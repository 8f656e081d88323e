// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// ringMagic tags a ring's header so attach can detect a mismatched peer.
const ringMagic = 0x00108023

// header is co-located at offset 0 of the memory space. Every field is
// 4 bytes so the natural Go struct layout already lands on the exact
// byte offsets from the external-interface contract; the pad arrays only
// need to skip the gaps to 64 and 128 so readerPos and writerPos each get
// their own cache line.
//
//	offset  size  field
//	0       4     magic
//	4       4     metaSize
//	8       4     capacity
//	12      4     elementSize
//	16      4     dataOffset
//	20      4     recordSize
//	24      4     initialized (atomic)
//	64      4     readerPos (atomic, own cache line)
//	128     4     writerPos (atomic, own cache line)
//	132     4     wrap
type header struct {
	magic       uint32
	metaSize    uint32
	capacity    uint32
	elementSize uint32
	dataOffset  uint32
	recordSize  uint32
	initialized atomix.Uint32
	_           [64 - 28]byte

	readerPos atomix.Uint32
	_         [64 - 4]byte

	writerPos atomix.Uint32
	wrap      uint32
	_         [64 - 8]byte
}

func headerAt(base []byte) *header {
	return (*header)(unsafe.Pointer(unsafe.SliceData(base)))
}

// headerSize is the byte offset of the payload within the memory space.
const headerSize = int(unsafe.Sizeof(header{}))
