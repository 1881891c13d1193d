package singleton

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Builder constructs the instance for one registry key.
type Builder func() (any, error)

// ErrBuildPanic is returned (wrapped) when a builder panics instead of
// returning an error.
var ErrBuildPanic = errors.New("singleton: panic during build")

// MissingBuilderError is returned when a key was never provided.
type MissingBuilderError struct{ Key string }

// Error implements the error interface.
func (e MissingBuilderError) Error() string {
	// Example: singleton: no builder for key "db"
	return "singleton: no builder for key " + strconv.Quote(e.Key)
}

// NilBuilderError is returned when a key was provided with a nil builder.
type NilBuilderError struct{ Key string }

// Error implements the error interface.
func (e NilBuilderError) Error() string {
	// Example: singleton: nil builder for key "db"
	return "singleton: nil builder for key " + strconv.Quote(e.Key)
}

// Registry holds many lazily built keyed instances, each constructed at
// most once for the registry's lifetime.
//
// Provide registers how to build an instance; Resolve builds on first use.
// Concurrent Resolve calls for the same key are collapsed into one builder
// run via singleflight, and the built value is then served from the cache.
//
// Expected usage:
//
//	reg := singleton.NewRegistry().
//		Provide("db", openDB).
//		Provide("cache", openCache)
//	db, err := reg.Resolve("db")
type Registry struct {
	mu        sync.RWMutex
	builders  map[string]Builder
	instances map[string]any
	group     singleflight.Group
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		builders:  map[string]Builder{},
		instances: map[string]any{},
	}
}

// Provide registers a builder under a key and returns the registry for
// chaining. Re-providing a key replaces the builder but never a value that
// was already built.
func (r *Registry) Provide(key string, build Builder) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[key] = build
	return r
}

// Get returns the already built value if present. It never triggers a
// build.
func (r *Registry) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.instances[key]
	return v, ok
}

// Resolve returns the value for key, building it on first use.
//
// It fails with MissingBuilderError or NilBuilderError on bad wiring, and
// defensively converts builder panics into errors wrapping ErrBuildPanic.
// A failed build leaves nothing cached, so a later Resolve retries.
func (r *Registry) Resolve(key string) (any, error) {
	r.mu.RLock()
	if v, ok := r.instances[key]; ok {
		r.mu.RUnlock()
		return v, nil
	}
	build, provided := r.builders[key]
	r.mu.RUnlock()

	if !provided {
		return nil, MissingBuilderError{Key: key}
	}
	if build == nil {
		return nil, NilBuilderError{Key: key}
	}

	v, err, _ := r.group.Do(key, func() (val any, err error) {
		// Re-check: a previous flight may have populated the cache
		// between our read above and this one.
		r.mu.RLock()
		cached, ok := r.instances[key]
		r.mu.RUnlock()
		if ok {
			return cached, nil
		}

		defer func() {
			if rec := recover(); rec != nil {
				val = nil
				err = fmt.Errorf("%w: %v", ErrBuildPanic, rec)
			}
		}()

		built, err := build()
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.instances[key] = built
		r.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// MustResolve returns the value for key or panics with a helpful message.
// Useful in examples and tests where a missing key should fail fast.
func (r *Registry) MustResolve(key string) any {
	v, err := r.Resolve(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Len reports how many instances have been built so far.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}
