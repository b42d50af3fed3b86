// Package spin provides a spin-waiting mutual exclusion primitive for
// very short critical sections, such as pointer-chasing a free list.
// It must never be held across a native API call.
package spin

import (
	"runtime"
	"sync/atomic"
)

// Mutex is a spin lock. The zero value is unlocked.
type Mutex struct {
	state uint32
}

// Lock spins until the lock is acquired.
func (m *Mutex) Lock() {
	for !atomic.CompareAndSwapUint32(&m.state, 0, 1) {
		runtime.Gosched()
	}
}

// Poll tries to acquire the lock without waiting.
func (m *Mutex) Poll() bool {
	return atomic.CompareAndSwapUint32(&m.state, 0, 1)
}

// Unlock releases the lock.
func (m *Mutex) Unlock() {
	atomic.StoreUint32(&m.state, 0)
}
