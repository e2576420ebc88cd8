package readlogger

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats is a snapshot of the counters a logger accumulated: how many I/O
// calls were observed and how many bytes they delivered. Counters are
// monotonic and never reset for the lifetime of the wrapper.
type Stats struct {
	ReadCount  uint64
	BytesTotal uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("%d requests (%s)", s.ReadCount, humanize.Bytes(s.BytesTotal))
}

// WriteStats is the write-side snapshot kept by WriteLogger.
type WriteStats struct {
	WriteCount uint64
	BytesTotal uint64
}

func (s WriteStats) String() string {
	return fmt.Sprintf("%d requests (%s)", s.WriteCount, humanize.Bytes(s.BytesTotal))
}
