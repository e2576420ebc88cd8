package readlogger

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/treeverse/readlogger/pkg/logging"
)

// WriteLogger is the write-side counterpart of ReadLogger: it wraps an
// io.Writer, counts write calls and bytes accepted, and logs one line per
// observed write in the same field order.
type WriteLogger struct {
	dst   io.Writer
	tag   string
	level logrus.Level
	log   logging.Logger
	stats WriteStats
}

func NewWriter(dst io.Writer, level logrus.Level, tag string, opts ...Option) *WriteLogger {
	c := &config{log: logging.Default()}
	for _, opt := range opts {
		opt(c)
	}
	wl := &WriteLogger{
		dst:   dst,
		tag:   tag,
		level: level,
		log:   c.log,
	}
	wl.log.Logf(level, "Initialize Write logger '%s',tag,begin,end,length,request_length,count,bytes_total", tag)
	return wl
}

// Write delegates to the underlying writer. A call is observed when it
// accepted bytes or returned cleanly; a failed write that accepted nothing
// leaves the counters untouched. Return values pass through unchanged.
func (wl *WriteLogger) Write(p []byte) (int, error) {
	n, err := wl.dst.Write(p)
	if err != nil && n == 0 {
		return n, err
	}
	begin := int64(wl.stats.BytesTotal)
	end := begin + int64(n) - 1
	wl.stats.WriteCount++
	wl.stats.BytesTotal += uint64(n)
	writesTotal.WithLabelValues(wl.tag).Inc()
	writtenBytesTotal.WithLabelValues(wl.tag).Add(float64(n))
	wl.log.Logf(wl.level, "Write %d-%d (%d bytes). Total requests: %d (%d bytes),%s,%d,%d,%d,%d,%d,%d",
		begin, end, n, wl.stats.WriteCount, wl.stats.BytesTotal,
		wl.tag, begin, end, n, len(p), wl.stats.WriteCount, wl.stats.BytesTotal)
	return n, err
}

// Stats returns a snapshot of the counters accumulated so far.
func (wl *WriteLogger) Stats() WriteStats {
	return wl.stats
}

// Close logs a final summary and closes the underlying writer when it is an
// io.Closer.
func (wl *WriteLogger) Close() error {
	wl.log.Logf(wl.level, "Close Write logger '%s': %s", wl.tag, wl.stats)
	if c, ok := wl.dst.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
