package applog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

// TestMain proves no writer goroutine outlives the tests: every sink
// started here is closed, and Close waits for the drain.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

//
// -----------------------------------------------------------------------------
// Logger
// -----------------------------------------------------------------------------

// TestLogger_WritesConsoleAndFile verifies a record lands on both sinks and
// the file copy survives Close's flush.
func TestLogger_WritesConsoleAndFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	var console bytes.Buffer

	l := New(Options{Path: path, Level: zerolog.InfoLevel, Console: &console})
	require.True(t, l.FileEnabled())

	l.Info("request completed")
	l.Error("pool exhausted", errors.New("db connection pool exhausted"))
	l.Close()

	out := console.String()
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "pool exhausted")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"request completed"`)
	assert.Contains(t, string(data), `"error":"db connection pool exhausted"`)
	assert.Contains(t, string(data), `"level":"error"`)
}

// TestLogger_LevelFilter verifies records below the minimum level are
// neither written nor counted, and that the level can move at runtime.
func TestLogger_LevelFilter(t *testing.T) {
	t.Parallel()

	var console bytes.Buffer
	l := New(Options{Level: zerolog.InfoLevel, Console: &console})

	l.Debug("invisible")
	assert.NotContains(t, console.String(), "invisible")
	assert.Zero(t, l.Stats().Debugs)

	l.SetLevel(zerolog.DebugLevel)
	l.Debug("now visible")
	assert.Contains(t, console.String(), "now visible")
	assert.EqualValues(t, 1, l.Stats().Debugs)

	l.SetLevel(zerolog.ErrorLevel)
	l.Warn("suppressed")
	assert.NotContains(t, console.String(), "suppressed")
}

// TestLogger_UnavailableFileDegrades verifies a bad log path disables the
// file sink, notes it on the console, and leaves the logger working.
func TestLogger_UnavailableFileDegrades(t *testing.T) {
	t.Parallel()

	var console bytes.Buffer
	l := New(Options{
		Path:    filepath.Join(t.TempDir(), "missing", "dir", "app.log"),
		Level:   zerolog.InfoLevel,
		Console: &console,
	})

	assert.False(t, l.FileEnabled())
	assert.Contains(t, console.String(), "file logging disabled")

	l.Info("still logging")
	assert.Contains(t, console.String(), "still logging")

	l.Close() // no-op without a sink
}

// TestLogger_Toggles verifies console and file mirrors can be switched off
// and on at runtime.
func TestLogger_Toggles(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	var console bytes.Buffer
	l := New(Options{Path: path, Level: zerolog.InfoLevel, Console: &console})

	l.EnableConsole(false)
	l.Info("file only")
	assert.NotContains(t, console.String(), "file only")

	l.EnableConsole(true)
	l.EnableFile(false)
	l.Info("console only")
	assert.Contains(t, console.String(), "console only")

	l.EnableFile(true)
	l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file only")
	assert.NotContains(t, string(data), "console only")
}

// TestLogger_Counters verifies per-level counters track what was actually
// logged.
func TestLogger_Counters(t *testing.T) {
	t.Parallel()

	l := New(Options{Level: zerolog.DebugLevel, Console: &bytes.Buffer{}})

	l.Debug("d")
	l.Info("i")
	l.Info("i")
	l.Warn("w")
	l.Error("e", nil)

	st := l.Stats()
	assert.EqualValues(t, 1, st.Debugs)
	assert.EqualValues(t, 2, st.Infos)
	assert.EqualValues(t, 1, st.Warns)
	assert.EqualValues(t, 1, st.Errors)
}

// TestLogger_CloseIsIdempotent verifies Close can be called repeatedly and
// the console keeps working afterwards.
func TestLogger_CloseIsIdempotent(t *testing.T) {
	t.Parallel()

	var console bytes.Buffer
	l := New(Options{
		Path:    filepath.Join(t.TempDir(), "app.log"),
		Level:   zerolog.InfoLevel,
		Console: &console,
	})

	l.Close()
	l.Close()

	l.Info("after close")
	assert.Contains(t, console.String(), "after close")
	assert.False(t, l.FileEnabled())
}

//
// -----------------------------------------------------------------------------
// asyncSink
// -----------------------------------------------------------------------------

// TestAsyncSink_DropsWhenFull verifies the queue never blocks a writer: a
// full queue drops the record and counts it.
// The sink is assembled by hand so no writer goroutine is competing for the
// queue.
func TestAsyncSink_DropsWhenFull(t *testing.T) {
	t.Parallel()

	s := &asyncSink{ch: make(chan []byte, 1), done: make(chan struct{})}

	s.Write([]byte("kept"))
	s.Write([]byte("dropped"))

	assert.EqualValues(t, 1, s.dropped.Load())
	assert.Len(t, s.ch, 1)
}

// TestAsyncSink_WriteAfterCloseIsIgnored verifies a record arriving after
// shutdown is discarded instead of panicking on the closed queue.
func TestAsyncSink_WriteAfterCloseIsIgnored(t *testing.T) {
	t.Parallel()

	s, err := newAsyncSink(filepath.Join(t.TempDir(), "app.log"), 4)
	require.NoError(t, err)

	s.Write([]byte("before\n"))
	s.Close()

	assert.NotPanics(t, func() { s.Write([]byte("after\n")) })
}

// TestAsyncSink_DrainsOnClose verifies everything queued before Close is on
// disk after it.
func TestAsyncSink_DrainsOnClose(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	s, err := newAsyncSink(path, 64)
	require.NoError(t, err)

	for range 50 {
		s.Write([]byte("line\n"))
	}
	s.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 50, bytes.Count(data, []byte("line\n")))
}

//
// -----------------------------------------------------------------------------
// Shared singleton
// -----------------------------------------------------------------------------

// TestShared_SingleInstance verifies concurrent callers share one logger.
// Runs in a temp working directory so the default log file lands there, and
// closes the shared sink so the leak check stays clean.
func TestShared_SingleInstance(t *testing.T) {
	t.Chdir(t.TempDir())

	const callers = 32
	got := make([]*Logger, callers)

	var g errgroup.Group
	for i := range callers {
		g.Go(func() error {
			got[i] = Shared()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.NotNil(t, got[0])
	for _, l := range got {
		assert.Same(t, got[0], l)
	}

	got[0].Close()
}
