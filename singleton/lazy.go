package singleton

import "sync/atomic"

// Lazy is the textbook lazy singleton with no synchronization at all.
//
// GetLazy is correct only when every caller runs on the same goroutine. Two
// goroutines can both observe a nil instance and both run the constructor,
// which violates the single-instance property. That failure mode is the
// point of this variant; run the singleton example under -race to watch the
// detector flag it.
type Lazy struct {
	id int64
}

// ID distinguishes instances when the race produces more than one.
func (l *Lazy) ID() int64 { return l.id }

var (
	lazyInstance *Lazy
	lazyBuilds   atomic.Int64
)

// GetLazy returns the process-wide Lazy instance, creating it on first call.
//
// The nil check and the assignment are two separate unsynchronized steps:
// any goroutine arriving between them builds its own instance.
func GetLazy() *Lazy {
	if lazyInstance == nil {
		lazyInstance = &Lazy{id: lazyBuilds.Add(1)}
	}
	return lazyInstance
}

// LazyBuilds reports how many times the Lazy constructor has run. Under
// single-goroutine use it never exceeds 1; under concurrent abuse it can.
func LazyBuilds() int64 { return lazyBuilds.Load() }

// ResetLazy clears the instance so a demo can stage the race again.
// Like everything else in this variant, it is not safe for concurrent use.
func ResetLazy() {
	lazyInstance = nil
	lazyBuilds.Store(0)
}
