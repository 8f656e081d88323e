// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mem

import (
	"fmt"
	"os"
	"syscall"

	"code.hybscloud.com/concur/cerr"
)

// Space is a uniform view over either a heap-owned buffer or a named
// shared-memory segment. See the package doc comment for ownership and
// lifecycle rules.
type Space struct {
	payload []byte // usable region, i.e. Base()
	region  []byte // full mmap'd region including the header page (shared only)
	name    string
	fd      int
	owning  bool
	shared  bool
	closed  bool
}

// Allocate reserves size bytes on the heap and owns them.
func Allocate(size int) (*Space, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: allocate: %w", cerr.ErrInvalidArgument)
	}
	return &Space{payload: make([]byte, size), owning: true}, nil
}

// Adopt wraps a caller-provided buffer. The Space never frees it.
func Adopt(buf []byte) (*Space, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("mem: adopt: %w", cerr.ErrInvalidArgument)
	}
	return &Space{payload: buf, owning: false}, nil
}

// CreateShared opens a named OS shared-memory object exclusively, extends
// it to header+size bytes rounded to the page size, maps it, zeroes it,
// and writes the magic marker, usable size, and creator pid into the
// header. The returned Space owns the segment: closing it unmaps and
// unlinks the name.
func CreateShared(name string, size uint32) (*Space, error) {
	if size == 0 {
		return nil, fmt.Errorf("mem: create shared %q: 0-sized region: %w", name, cerr.ErrInvalidArgument)
	}
	path := shmPath(name)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return nil, fmt.Errorf("mem: create shared %q: open: %v: %w", name, err, cerr.ErrIO)
	}
	defer f.Close()

	payloadSize := roundUpPage(size)
	total := int64(metaSize) + int64(payloadSize)
	if err := f.Truncate(total); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("mem: create shared %q: truncate: %v: %w", name, err, cerr.ErrIO)
	}

	region, err := syscall.Mmap(int(f.Fd()), 0, int(total), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("mem: create shared %q: mmap: %v: %w", name, err, cerr.ErrIO)
	}

	for i := range region {
		region[i] = 0
	}
	putHeader(region, size, 0, uint64(os.Getpid()))

	return &Space{
		payload: region[metaSize:],
		region:  region,
		name:    name,
		fd:      int(f.Fd()),
		owning:  true,
		shared:  true,
	}, nil
}

// AttachShared opens an existing named segment read-write, maps it,
// verifies the magic marker, and reports the usable size from the header.
// The returned Space borrows the segment: closing it only unmaps.
func AttachShared(name string) (*Space, error) {
	region, f, err := openAndMapShared(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !checkMagic(region) {
		_ = syscall.Munmap(region)
		return nil, fmt.Errorf("mem: attach shared %q: %w", name, cerr.ErrMagicMismatch)
	}

	return &Space{
		payload: region[metaSize:],
		region:  region,
		name:    name,
		fd:      -1,
		owning:  false,
		shared:  true,
	}, nil
}

// ReclaimShared attaches to an existing named segment, rewrites the
// owner-pid header field, and takes destruction responsibility: closing
// the returned Space unmaps and unlinks the name.
func ReclaimShared(name string) (*Space, error) {
	region, f, err := openAndMapShared(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !checkMagic(region) {
		_ = syscall.Munmap(region)
		return nil, fmt.Errorf("mem: reclaim shared %q: %w", name, cerr.ErrMagicMismatch)
	}
	setHeaderOwner(region, uint64(os.Getpid()))

	return &Space{
		payload: region[metaSize:],
		region:  region,
		name:    name,
		fd:      -1,
		owning:  true,
		shared:  true,
	}, nil
}

func openAndMapShared(name string) (region []byte, f *os.File, err error) {
	path := shmPath(name)

	f, err = os.OpenFile(path, os.O_RDWR, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("mem: attach shared %q: open: %v: %w", name, err, cerr.ErrIO)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("mem: attach shared %q: stat: %v: %w", name, err, cerr.ErrIO)
	}
	if st.Size() < metaSize {
		f.Close()
		return nil, nil, fmt.Errorf("mem: attach shared %q: file too small: %w", name, cerr.ErrIO)
	}

	region, err = syscall.Mmap(int(f.Fd()), 0, int(st.Size()), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("mem: attach shared %q: mmap: %v: %w", name, err, cerr.ErrIO)
	}
	return region, f, nil
}

func shmPath(name string) string {
	return "/dev/shm/" + name
}

// Base returns the usable payload region: base address and capacity as a
// byte slice.
func (s *Space) Base() []byte {
	return s.payload
}

// Cap returns the usable payload capacity in bytes.
func (s *Space) Cap() int {
	return len(s.payload)
}

// Name returns the backing segment name, or "" for heap spaces.
func (s *Space) Name() string {
	return s.name
}

// Owning reports whether this Space will release the underlying resource
// on Close.
func (s *Space) Owning() bool {
	return s.owning
}

// Shared reports whether this Space is backed by a named OS segment.
func (s *Space) Shared() bool {
	return s.shared
}

// Close releases the Space. An owning space unmaps and, for shared
// segments, unlinks the name; a borrowing space only unmaps. Close is
// idempotent.
func (s *Space) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if !s.shared {
		return nil
	}
	err := syscall.Munmap(s.region)
	if s.owning {
		if rmErr := os.Remove(shmPath(s.name)); rmErr != nil && err == nil {
			err = rmErr
		}
	}
	if err != nil {
		return fmt.Errorf("mem: close %q: %v: %w", s.name, err, cerr.ErrIO)
	}
	return nil
}

// HeaderVersion returns the reserved monotonic version field from a
// shared segment's header. Returns 0 for heap spaces.
func (s *Space) HeaderVersion() uint64 {
	if !s.shared {
		return 0
	}
	return headerVersion(s.region)
}

// HeaderSize returns the usable size recorded in a shared segment's
// header. Returns Cap() for heap spaces.
func (s *Space) HeaderSize() uint32 {
	if !s.shared {
		return uint32(len(s.payload))
	}
	return headerSize(s.region)
}
