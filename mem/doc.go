// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mem provides a uniform view over either a heap-owned buffer or
// a named shared-memory segment.
//
// A Space exposes a base address and a capacity, and carries ownership of
// the underlying resource. Five constructors are provided:
//
//	Allocate(size)        - heap, owning: reserves size bytes, owns them
//	Adopt(buf)             - heap, borrowing: wraps a caller buffer, never frees
//	CreateShared(name, n)  - named, owning: creates and maps a new segment
//	AttachShared(name)     - named, borrowing: maps an existing segment
//	ReclaimShared(name)    - named, owning: attaches, then takes over ownership
//
// Named shared-memory segments live under the OS's shared-memory
// directory (/dev/shm/<name> on POSIX). The region is header-prefixed: the
// first page holds a fixed header (magic, size, version, owner pid); the
// payload starts at the next page boundary. Destroying an owning Space
// unmaps and, for shared segments, unlinks the backing name; a borrowing
// Space only unmaps.
//
// Space is not copyable. Once constructed, ring.Ring and other components
// embed a *Space and depend on its address remaining stable for their
// lifetime, so a Space must also not be moved after components have
// attached to it.
package mem
