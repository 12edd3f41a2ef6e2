package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveQueryCountsErrors(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("test_op"))

	ObserveQuery("test_op", time.Now(), nil)
	ObserveQuery("test_op", time.Now(), errors.New("boom"))

	assert.Equal(t, before+1, testutil.ToFloat64(DBQueryErrors.WithLabelValues("test_op")))
}

func TestObserveCache(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("test"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("test"))

	ObserveCache("test", true)
	ObserveCache("test", false)
	ObserveCache("test", false)

	assert.Equal(t, hits+1, testutil.ToFloat64(CacheHits.WithLabelValues("test")))
	assert.Equal(t, misses+2, testutil.ToFloat64(CacheMisses.WithLabelValues("test")))
}

func TestSetCacheEntries(t *testing.T) {
	SetCacheEntries("test", 3)
	assert.Equal(t, float64(3), testutil.ToFloat64(CacheEntries.WithLabelValues("test")))

	SetCacheEntries("test", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CacheEntries.WithLabelValues("test")))
}
