// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mem

import "encoding/binary"

// shmMagic is the 8-byte tag written at the start of every named segment.
var shmMagic = [8]byte{'M', 'I', 'D', 'A', 'S', 's', 'h', 'm'}

// pageSize is the OS page size a segment's header page is rounded to.
// 4096 covers every POSIX target this package supports; a platform with a
// larger native page size would simply waste a little header space.
const pageSize = 4096

// metaSize is the size of the header page sitting in front of the payload.
const metaSize = pageSize

// The region header's fields are not naturally aligned (version sits at byte offset
// 12, immediately after a 4-byte size field), so the header is read and
// written at explicit byte offsets with encoding/binary rather than
// overlaid with a Go struct — a struct's own alignment rules would shift
// version to offset 16 and break the wire contract.
const (
	offMagic   = 0
	offSize    = 8
	offVersion = 12
	offOwner   = 20
)

func putHeader(buf []byte, size uint32, version uint64, ownerPID uint64) {
	copy(buf[offMagic:offMagic+8], shmMagic[:])
	binary.LittleEndian.PutUint32(buf[offSize:offSize+4], size)
	binary.LittleEndian.PutUint64(buf[offVersion:offVersion+8], version)
	binary.LittleEndian.PutUint64(buf[offOwner:offOwner+8], ownerPID)
}

func checkMagic(buf []byte) bool {
	for i := range shmMagic {
		if buf[offMagic+i] != shmMagic[i] {
			return false
		}
	}
	return true
}

func headerSize(buf []byte) uint32 {
	return binary.LittleEndian.Uint32(buf[offSize : offSize+4])
}

func headerVersion(buf []byte) uint64 {
	return binary.LittleEndian.Uint64(buf[offVersion : offVersion+8])
}

func setHeaderOwner(buf []byte, ownerPID uint64) {
	binary.LittleEndian.PutUint64(buf[offOwner:offOwner+8], ownerPID)
}

func roundUpPage(n uint32) uint32 {
	return (n + pageSize - 1) &^ (pageSize - 1)
}
