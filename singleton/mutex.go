package singleton

import (
	"sync"
	"sync/atomic"
)

// Guarded is the mutex-serialized lazy singleton.
//
// Correct and simple: the lock makes the check and the assignment one
// atomic step. The cost is that every call, not just the first, pays for
// the lock, which is why the double-checked variant exists.
type Guarded struct{}

var (
	guardedMu       sync.Mutex
	guardedInstance *Guarded
	guardedBuilds   atomic.Int64
)

// GetGuarded returns the process-wide Guarded instance, creating it on
// first call under the lock.
func GetGuarded() *Guarded {
	guardedMu.Lock()
	defer guardedMu.Unlock()

	if guardedInstance == nil {
		guardedBuilds.Add(1)
		guardedInstance = &Guarded{}
	}
	return guardedInstance
}

// GuardedBuilds reports how many times the Guarded constructor has run.
func GuardedBuilds() int64 { return guardedBuilds.Load() }
