package singleton

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

//
// -----------------------------------------------------------------------------
// NewRegistry / Provide / Get
// -----------------------------------------------------------------------------

// TestNewRegistry_Empty verifies NewRegistry starts with no builders and no
// built instances.
func TestNewRegistry_Empty(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NotNil(t, r)
	assert.Zero(t, r.Len())

	_, ok := r.Get("anything")
	assert.False(t, ok)
}

// TestProvide_Chains verifies Provide returns the same registry for
// chaining and Get does not trigger a build.
func TestProvide_Chains(t *testing.T) {
	t.Parallel()

	var builds atomic.Int64
	r := NewRegistry()

	ret := r.Provide("a", func() (any, error) {
		builds.Add(1)
		return 1, nil
	}).Provide("b", func() (any, error) {
		builds.Add(1)
		return 2, nil
	})
	require.Same(t, r, ret)

	_, ok := r.Get("a")
	assert.False(t, ok, "Get must never build")
	assert.Zero(t, builds.Load())
}

//
// -----------------------------------------------------------------------------
// Resolve
// -----------------------------------------------------------------------------

// TestResolve_BuildsOnce verifies concurrent Resolve calls for one key all
// get the same value from a single builder run.
func TestResolve_BuildsOnce(t *testing.T) {
	t.Parallel()

	type conn struct{ dsn string }

	var builds atomic.Int64
	r := NewRegistry().Provide("db", func() (any, error) {
		builds.Add(1)
		return &conn{dsn: "postgres://prod"}, nil
	})

	got := make([]any, callers)
	start := make(chan struct{})

	var g errgroup.Group
	for i := range callers {
		g.Go(func() error {
			<-start
			v, err := r.Resolve("db")
			if err != nil {
				return err
			}
			got[i] = v
			return nil
		})
	}
	close(start)
	require.NoError(t, g.Wait())

	require.IsType(t, &conn{}, got[0])
	for _, v := range got {
		assert.Same(t, got[0], v)
	}
	assert.EqualValues(t, 1, builds.Load())
	assert.Equal(t, 1, r.Len())
}

// TestResolve_Missing verifies Resolve fails with MissingBuilderError for
// keys that were never provided.
func TestResolve_Missing(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	_, err := r.Resolve("ghost")
	require.Error(t, err)

	var missing MissingBuilderError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "ghost", missing.Key)
}

// TestResolve_NilBuilder verifies a key provided with a nil builder fails
// with NilBuilderError.
func TestResolve_NilBuilder(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide("db", nil)

	_, err := r.Resolve("db")
	require.Error(t, err)

	var nb NilBuilderError
	require.ErrorAs(t, err, &nb)
	assert.Equal(t, "db", nb.Key)
}

// TestResolve_RecoversFromPanic verifies a panicking builder surfaces as an
// error wrapping ErrBuildPanic instead of crashing the caller.
func TestResolve_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide("boom", func() (any, error) {
		panic("wires crossed")
	})

	v, err := r.Resolve("boom")
	require.Error(t, err)
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrBuildPanic)
	assert.Contains(t, err.Error(), "wires crossed")
}

// TestResolve_FailedBuildRetries verifies a build error caches nothing, so
// a later Resolve runs the builder again.
func TestResolve_FailedBuildRetries(t *testing.T) {
	t.Parallel()

	errWarmup := errors.New("not ready")

	var attempts atomic.Int64
	r := NewRegistry().Provide("flaky", func() (any, error) {
		if attempts.Add(1) == 1 {
			return nil, errWarmup
		}
		return "ready", nil
	})

	_, err := r.Resolve("flaky")
	require.ErrorIs(t, err, errWarmup)
	assert.Zero(t, r.Len())

	v, err := r.Resolve("flaky")
	require.NoError(t, err)
	assert.Equal(t, "ready", v)
	assert.EqualValues(t, 2, attempts.Load())
}

// TestResolve_ReprovideDoesNotRebuild verifies replacing a builder after a
// value was built leaves the built value in place.
func TestResolve_ReprovideDoesNotRebuild(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide("k", func() (any, error) { return "first", nil })

	v, err := r.Resolve("k")
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	r.Provide("k", func() (any, error) { return "second", nil })

	v, err = r.Resolve("k")
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

//
// -----------------------------------------------------------------------------
// MustResolve
// -----------------------------------------------------------------------------

// TestMustResolve_Present verifies MustResolve returns the built value.
func TestMustResolve_Present(t *testing.T) {
	t.Parallel()

	r := NewRegistry().Provide("k", func() (any, error) { return 42, nil })
	assert.Equal(t, 42, r.MustResolve("k"))
}

// TestMustResolve_Missing verifies MustResolve panics with a helpful
// message when the key is unknown.
func TestMustResolve_Missing(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	require.PanicsWithError(t, `singleton: no builder for key "missing"`, func() {
		_ = r.MustResolve("missing")
	})
}
