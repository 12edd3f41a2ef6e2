// Package metrics 定义 Prometheus 指标
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviedb_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviedb_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// 数据库
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviedb_db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviedb_db_query_errors_total",
			Help: "Total number of failed database queries",
		},
		[]string{"operation"},
	)

	// 缓存
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviedb_cache_hits_total",
			Help: "Total number of query cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviedb_cache_misses_total",
			Help: "Total number of query cache misses",
		},
		[]string{"cache"},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moviedb_cache_entries",
			Help: "Current number of entries in the query caches",
		},
		[]string{"cache"},
	)
)

// ObserveQuery 记录一次数据库查询的耗时与结果
func ObserveQuery(operation string, start time.Time, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// ObserveCache 记录缓存命中情况
func ObserveCache(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
		return
	}
	CacheMisses.WithLabelValues(cache).Inc()
}

// SetCacheEntries 记录缓存当前条数
func SetCacheEntries(cache string, n int) {
	CacheEntries.WithLabelValues(cache).Set(float64(n))
}
