package readlogger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var readsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "readlogger_reads_total",
		Help: "observed read calls per logger tag",
	},
	[]string{"tag"})

var readBytesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "readlogger_read_bytes_total",
		Help: "bytes delivered by observed reads per logger tag",
	},
	[]string{"tag"})

var writesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "readlogger_writes_total",
		Help: "observed write calls per logger tag",
	},
	[]string{"tag"})

var writtenBytesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "readlogger_written_bytes_total",
		Help: "bytes accepted by observed writes per logger tag",
	},
	[]string{"tag"})
