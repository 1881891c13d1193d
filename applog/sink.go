package applog

import (
	"bufio"
	"os"
	"sync"
	"sync/atomic"
)

// asyncSink owns the append-only log file. Writers enqueue copies of each
// record; one background goroutine is the only thing that ever touches the
// file. The queue is bounded and a full queue drops the record (counted)
// instead of blocking the logging call site.
type asyncSink struct {
	mu     sync.RWMutex // guards closed against the queue closing mid-send
	closed bool

	ch      chan []byte
	dropped atomic.Int64

	f *os.File
	w *bufio.Writer

	closeOnce sync.Once
	done      chan struct{}
}

func newAsyncSink(path string, queueSize int) (*asyncSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	s := &asyncSink{
		ch:   make(chan []byte, queueSize),
		f:    f,
		w:    bufio.NewWriter(f),
		done: make(chan struct{}),
	}
	go s.run()
	return s, nil
}

// Write enqueues a copy of p for the background writer. Never blocks.
func (s *asyncSink) Write(p []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}

	// zerolog reuses its buffer after the write returns.
	b := append([]byte(nil), p...)
	select {
	case s.ch <- b:
	default:
		s.dropped.Add(1)
	}
}

// run is the single writer goroutine. It exits when the queue is closed
// and drained, flushing and closing the file on the way out.
func (s *asyncSink) run() {
	defer close(s.done)
	for b := range s.ch {
		_, _ = s.w.Write(b)
	}
	_ = s.w.Flush()
	_ = s.f.Close()
}

// Close stops intake, lets the writer drain whatever is queued, and waits
// for it to flush and exit. Safe to call more than once.
func (s *asyncSink) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.ch)
		s.mu.Unlock()
		<-s.done
	})
}
