// Package gopatterns collects classic design-pattern demonstrations in Go.
//
// The repository is split into independent pattern families:
//
//   - singleton: six instantiation idioms around a single process-wide
//     instance, from the deliberately racy lazy accessor to the sync.Once
//     holder, plus a keyed lazy registry
//   - strategy: runtime-swappable payment methods behind one interface
//   - composition: vehicles assembled from engine/transmission components
//     instead of an inheritance tree
//   - appconfig, applog: two "real world" singletons (a configuration
//     manager and a buffered async file logger)
//
// Each family is a library package with its own tests; the runnable narrated
// demos live under examples/. None of the families calls into another, so
// every demo stands alone.
package gopatterns
