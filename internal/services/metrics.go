package services

import "github.com/prometheus/client_golang/prometheus"

var (
	analysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chatlens_analyses_total",
			Help: "Exports analyzed, by outcome.",
		},
		[]string{"outcome"},
	)

	recordsParsed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chatlens_records_parsed_total",
			Help: "Records built from analyzed exports.",
		},
	)

	linesSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "chatlens_lines_skipped_total",
			Help: "Malformed lines dropped in lenient mode.",
		},
	)

	parseDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "chatlens_parse_duration_seconds",
			Help:    "Time spent decoding and parsing an export.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(analysesTotal, recordsParsed, linesSkipped, parseDuration)
}

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeParse    = "parse_failed"
)
