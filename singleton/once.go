package singleton

import (
	"sync"
	"sync/atomic"
)

// Holder is the holder-idiom singleton: creation deferred to first access,
// with the runtime's guaranteed one-time initializer doing the guarding.
//
// sync.Once is the Go analog of a lazily loaded holder class: the first
// caller runs the function, every other caller blocks until it finishes,
// and all of them observe the fully initialized result. This is the
// variant ordinary Go code should reach for.
type Holder struct{}

var (
	holderOnce     sync.Once
	holderInstance *Holder
	holderBuilds   atomic.Int64
)

// GetHolder returns the process-wide Holder instance, creating it on the
// first call.
func GetHolder() *Holder {
	holderOnce.Do(func() {
		holderBuilds.Add(1)
		holderInstance = &Holder{}
	})
	return holderInstance
}

// HolderBuilds reports how many times the Holder constructor has run.
func HolderBuilds() int64 { return holderBuilds.Load() }

// Shared wraps an arbitrary constructor into a once-backed accessor.
//
// The returned function always yields the value of the first (and only)
// ctor call, regardless of how many goroutines race it:
//
//	getDB := singleton.Shared(openDB)
//	db := getDB() // same *DB everywhere
func Shared[T any](ctor func() *T) func() *T {
	var (
		once sync.Once
		inst *T
	)
	return func() *T {
		once.Do(func() { inst = ctor() })
		return inst
	}
}
