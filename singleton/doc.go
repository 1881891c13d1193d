// Package singleton demonstrates six idioms for keeping at most one live
// instance of a type per process, each with a different answer to the same
// question: who wins when several goroutines race the first access?
//
// The variants, in the order a concurrency course would present them:
//
//   - Lazy: unguarded check-then-act. Deliberately racy; the counterexample
//     the safe variants are measured against.
//   - Guarded: every access serialized by a sync.Mutex.
//   - Checked: double-checked locking with an atomic.Pointer fast path and a
//     mutex-protected slow path. The atomic load/store stands in for the
//     volatile fence other runtimes need.
//   - Eager: instance built at package initialization, before any goroutine
//     can observe a partial state.
//   - Counter: an exported package-level value of an unexported type. The
//     compiler rules out a second instance, so there is nothing to guard.
//   - Holder: sync.Once, the runtime's guaranteed one-time initializer, plus
//     a generic Shared factory that wraps any constructor the same way.
//
// The contract shared by every variant except Lazy: for N concurrent callers
// of the accessor, all N observe the same pointer and the constructor runs
// exactly once.
//
// Registry extends the idea to many keyed instances with the same
// exactly-once guarantee per key.
package singleton
