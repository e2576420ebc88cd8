// Package readlogger provides instrumented wrappers for byte streams: each
// wrapper forwards Read/Write/Seek calls to an underlying source unchanged
// while counting calls and bytes, and emits one structured log line per
// observed call.
//
// Wrappers are single-owner: the caller that created a wrapper is the only
// one expected to use it, and no internal synchronization is provided.
package readlogger

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/treeverse/readlogger/pkg/logging"
)

type config struct {
	log logging.Logger
}

type Option func(*config)

// WithLogger injects the logging sink used for the per-call lines. The
// default is the package logger from pkg/logging.
func WithLogger(l logging.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// ReadLogger wraps a seekable byte source and records read statistics.
// It never alters what the source returns: byte counts and errors pass
// through exactly as produced.
type ReadLogger struct {
	src   io.ReadSeeker
	tag   string
	level logrus.Level
	log   logging.Logger
	stats Stats
}

// New wraps src. Every observed read is logged at the given level with the
// given tag; filtering by level is left to the logging sink. One
// initialization line declaring the machine-readable field order is emitted
// immediately.
func New(src io.ReadSeeker, level logrus.Level, tag string, opts ...Option) *ReadLogger {
	c := &config{log: logging.Default()}
	for _, opt := range opts {
		opt(c)
	}
	rl := &ReadLogger{
		src:   src,
		tag:   tag,
		level: level,
		log:   c.log,
	}
	rl.log.Logf(level, "Initialize Read logger '%s',tag,begin,end,length,request_length,count,bytes_total", tag)
	return rl
}

// Read delegates to the underlying source. Any return that delivered a byte
// count is observed: the counters are updated and one log line is emitted.
// End-of-stream (io.EOF with no bytes) counts as a zero-length read. A
// failing read that delivered nothing leaves the counters untouched and
// logs nothing.
func (rl *ReadLogger) Read(p []byte) (int, error) {
	n, err := rl.src.Read(p)
	if err != nil && n == 0 && !errors.Is(err, io.EOF) {
		return n, err
	}
	rl.observe(n, len(p))
	return n, err
}

func (rl *ReadLogger) observe(n, requested int) {
	// begin/end track bytes delivered through this wrapper, not the true
	// stream position; a seek between reads desynchronizes the two.
	begin := int64(rl.stats.BytesTotal)
	end := begin + int64(n) - 1
	rl.stats.ReadCount++
	rl.stats.BytesTotal += uint64(n)
	readsTotal.WithLabelValues(rl.tag).Inc()
	readBytesTotal.WithLabelValues(rl.tag).Add(float64(n))
	rl.log.Logf(rl.level, "Read %d-%d (%d bytes). Total requests: %d (%d bytes),%s,%d,%d,%d,%d,%d,%d",
		begin, end, n, rl.stats.ReadCount, rl.stats.BytesTotal,
		rl.tag, begin, end, n, requested, rl.stats.ReadCount, rl.stats.BytesTotal)
}

// Seek delegates to the underlying source. Seeks are not read events: they
// are not counted and not logged.
func (rl *ReadLogger) Seek(offset int64, whence int) (int64, error) {
	return rl.src.Seek(offset, whence)
}

// Stats returns a snapshot of the counters accumulated so far.
func (rl *ReadLogger) Stats() Stats {
	return rl.stats
}

// Close logs a final summary and closes the underlying source when it is an
// io.Closer.
func (rl *ReadLogger) Close() error {
	rl.log.Logf(rl.level, "Close Read logger '%s': %s", rl.tag, rl.stats)
	if c, ok := rl.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
