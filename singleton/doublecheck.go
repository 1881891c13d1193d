package singleton

import (
	"sync"
	"sync/atomic"
)

// Checked is the double-checked locking singleton.
//
// The common path is a single atomic pointer load with no lock. Only
// callers that observe nil take the mutex, and they re-check after
// acquiring it so at most one of them constructs. The atomic.Pointer is
// what makes the unlocked first check sound: a plain pointer field read
// outside the lock would be a data race, and nothing would stop a reader
// from observing the pointer before the pointee is fully written.
type Checked struct{}

var (
	checkedPtr    atomic.Pointer[Checked]
	checkedMu     sync.Mutex
	checkedBuilds atomic.Int64
)

// GetChecked returns the process-wide Checked instance.
func GetChecked() *Checked {
	// Fast path, taken by every call after the first.
	if inst := checkedPtr.Load(); inst != nil {
		return inst
	}

	checkedMu.Lock()
	defer checkedMu.Unlock()

	// Re-check: another caller may have constructed while we waited.
	if inst := checkedPtr.Load(); inst != nil {
		return inst
	}

	inst := &Checked{}
	checkedBuilds.Add(1)
	checkedPtr.Store(inst)
	return inst
}

// CheckedBuilds reports how many times the Checked constructor has run.
func CheckedBuilds() int64 { return checkedBuilds.Load() }
