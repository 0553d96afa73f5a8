package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	recordsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "manager_hub",
		Subsystem: "records",
		Name:      "created_total",
		Help:      "Records created, by collection.",
	}, []string{"collection"})
	recordsUpdated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "manager_hub",
		Subsystem: "records",
		Name:      "updated_total",
		Help:      "Records updated, by collection.",
	}, []string{"collection"})
	persistOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "manager_hub",
		Subsystem: "persistence",
		Name:      "operations_total",
		Help:      "Collection loads and saves, by outcome.",
	}, []string{"op", "collection", "outcome"})
	lastSaveGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "manager_hub",
		Subsystem: "persistence",
		Name:      "last_save_timestamp_seconds",
		Help:      "Unix timestamp of the most recent successful collection save.",
	})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "manager_hub",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(recordsCreated, recordsUpdated, persistOps, lastSaveGauge, httpDuration)
}

func RecordCreated(collection string) { recordsCreated.WithLabelValues(collection).Inc() }

func RecordUpdated(collection string) { recordsUpdated.WithLabelValues(collection).Inc() }

// RecordPersistence counts one load or save; successful saves also move
// the last-save watermark.
func RecordPersistence(op, collection string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	persistOps.WithLabelValues(op, collection, outcome).Inc()
	if err == nil && op == "save" {
		lastSaveGauge.Set(float64(time.Now().Unix()))
	}
}

// HTTPMetrics observes request latency keyed by the matched route template.
func HTTPMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpDuration.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
