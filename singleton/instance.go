package singleton

import "sync/atomic"

// counter is unexported: code outside this package cannot name the type,
// so it cannot construct, embed, or copy-assemble a second instance. The
// single exported value below is the closest Go gets to a language-level
// single-value type, the role an enum singleton plays elsewhere.
type counter struct {
	n atomic.Int64
}

// Counter is the only value of its type in the program.
var Counter = &counter{}

// Increment bumps the shared count and returns the new value.
func (c *counter) Increment() int64 { return c.n.Add(1) }

// Value returns the current shared count.
func (c *counter) Value() int64 { return c.n.Load() }
