// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package timer

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// spinMutex is a CAS-based spin lock, used instead of sync.Mutex to
// keep registration cheap when advance/register contend briefly
// rather than parking the goroutine.
type spinMutex struct {
	locked atomix.Uint32
}

func (m *spinMutex) Lock() {
	sw := spin.Wait{}
	for !m.locked.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
}

func (m *spinMutex) Unlock() {
	m.locked.StoreRelease(0)
}
