package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "memoblog"

var (
	PostsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_added_total",
		Help:      "Posts appended to the collection.",
	})

	PostsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_rejected_total",
		Help:      "Add requests ignored because a field was blank after trimming.",
	})

	LabelLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "label_lookups_total",
		Help:      "Label lookups by language code.",
	}, []string{"lang"})

	ArchiveSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "archive_articles",
		Help:      "Filler articles held by the archive.",
	})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
