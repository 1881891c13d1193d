package singleton

import "time"

// Eager is the singleton built during package initialization.
//
// The runtime runs package-level variable initializers before main and
// before any goroutine the program starts, so the instance exists and is
// fully published by the time any caller can reach GetEager. No lock, no
// atomic, no lazy-path complexity; the trade is that the instance is built
// whether or not it is ever used.
type Eager struct {
	bornAt time.Time
}

// BornAt reports when the instance was constructed (process start).
func (e *Eager) BornAt() time.Time { return e.bornAt }

var eagerInstance = &Eager{bornAt: time.Now()}

// GetEager returns the instance created at package initialization.
func GetEager() *Eager { return eagerInstance }
