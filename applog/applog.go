// Package applog is the second real-world singleton example: a process-wide
// leveled logger that writes to the console and, through a buffered queue
// and a single background writer, to an append-only log file.
//
// zerolog does the formatting; this package owns the singleton lifecycle,
// the async file sink, and the runtime switches (level, console on/off,
// file on/off). An unavailable log path disables the file sink and the
// logger carries on console-only. A full queue drops the file copy of that
// record rather than blocking the caller; the console copy still lands.
package applog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	// Path is the log file. Empty disables the file sink outright.
	Path string

	// Level is the initial minimum level.
	Level zerolog.Level

	// QueueSize bounds the async file queue. Zero means DefaultQueueSize.
	QueueSize int

	// Console receives the console copy of every record. Nil means
	// os.Stdout.
	Console io.Writer
}

// DefaultQueueSize is the file queue bound when Options leaves it zero.
const DefaultQueueSize = 1024

// Logger is the logging singleton's payload. All methods are safe for
// concurrent use.
type Logger struct {
	zl      zerolog.Logger
	console io.Writer
	sink    *asyncSink // nil when the file sink is disabled

	level     atomic.Int32
	consoleOn atomic.Bool
	fileOn    atomic.Bool

	debugs atomic.Int64
	infos  atomic.Int64
	warns  atomic.Int64
	errors atomic.Int64
}

var (
	sharedOnce sync.Once
	shared     *Logger
)

// Shared returns the process-wide Logger, building it on first call with
// default options (application.log, info level, stdout console).
func Shared() *Logger {
	sharedOnce.Do(func() {
		shared = New(Options{Path: "application.log", Level: zerolog.InfoLevel})
	})
	return shared
}

// New builds a Logger. If the log file cannot be opened, file logging is
// disabled, the condition is noted on the console, and the logger still
// works. New exists so tests and demos can build loggers without touching
// the singleton.
func New(opts Options) *Logger {
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}

	l := &Logger{console: opts.Console}
	l.level.Store(int32(opts.Level))
	l.consoleOn.Store(true)

	if opts.Path != "" {
		sink, err := newAsyncSink(opts.Path, opts.QueueSize)
		if err != nil {
			// Degrade to console-only and keep going.
			bootstrap := zerolog.New(opts.Console).With().Timestamp().Logger()
			bootstrap.Warn().Err(err).Str("path", opts.Path).Msg("log file unavailable, file logging disabled")
		} else {
			l.sink = sink
			l.fileOn.Store(true)
		}
	}

	l.zl = zerolog.New(dispatch{l}).With().Timestamp().Logger()
	return l
}

// dispatch fans each formatted record out to the enabled destinations.
// zerolog may reuse the buffer after Write returns, so the sink copies.
type dispatch struct{ l *Logger }

// Write implements io.Writer.
func (d dispatch) Write(p []byte) (int, error) {
	if d.l.consoleOn.Load() {
		_, _ = d.l.console.Write(p)
	}
	if d.l.fileOn.Load() && d.l.sink != nil {
		d.l.sink.Write(p)
	}
	return len(p), nil
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string) { l.log(zerolog.DebugLevel, msg, nil) }

// Info logs at info level.
func (l *Logger) Info(msg string) { l.log(zerolog.InfoLevel, msg, nil) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string) { l.log(zerolog.WarnLevel, msg, nil) }

// Error logs at error level with an optional cause.
func (l *Logger) Error(msg string, err error) { l.log(zerolog.ErrorLevel, msg, err) }

func (l *Logger) log(lvl zerolog.Level, msg string, err error) {
	if int32(lvl) < l.level.Load() {
		return
	}
	switch lvl {
	case zerolog.DebugLevel:
		l.debugs.Add(1)
	case zerolog.InfoLevel:
		l.infos.Add(1)
	case zerolog.WarnLevel:
		l.warns.Add(1)
	case zerolog.ErrorLevel:
		l.errors.Add(1)
	}
	l.zl.WithLevel(lvl).Err(err).Msg(msg)
}

// Level returns the current minimum level.
func (l *Logger) Level() zerolog.Level { return zerolog.Level(l.level.Load()) }

// SetLevel changes the minimum level at runtime.
func (l *Logger) SetLevel(lvl zerolog.Level) { l.level.Store(int32(lvl)) }

// EnableConsole toggles the console copy at runtime.
func (l *Logger) EnableConsole(on bool) { l.consoleOn.Store(on) }

// EnableFile toggles the file copy at runtime. A no-op when the sink never
// opened.
func (l *Logger) EnableFile(on bool) {
	if l.sink == nil {
		return
	}
	l.fileOn.Store(on)
}

// FileEnabled reports whether records are currently mirrored to the file.
func (l *Logger) FileEnabled() bool { return l.fileOn.Load() }

// Stats is a point-in-time view of the logger's counters.
type Stats struct {
	Debugs  int64
	Infos   int64
	Warns   int64
	Errors  int64
	Dropped int64
	Queued  int
}

// Stats returns the per-level counters, the records dropped by a full
// queue, and the current queue depth.
func (l *Logger) Stats() Stats {
	s := Stats{
		Debugs: l.debugs.Load(),
		Infos:  l.infos.Load(),
		Warns:  l.warns.Load(),
		Errors: l.errors.Load(),
	}
	if l.sink != nil {
		s.Dropped = l.sink.dropped.Load()
		s.Queued = len(l.sink.ch)
	}
	return s
}

// Close stops file intake, drains the queue, flushes, and closes the file.
// The console keeps working afterwards. Safe to call more than once.
func (l *Logger) Close() {
	if l.sink == nil {
		return
	}
	l.fileOn.Store(false)
	l.sink.Close()
}
