package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter throttles request weight per bucket. Each venue gets its own bucket
// because the exchange meters spot and futures usage independently.
type RateLimiter struct {
	buckets sync.Map
	weight  int
	period  time.Duration
	metrics *Metrics
}

// Metrics tracks statistics about rate limiter usage.
type Metrics struct {
	totalRequests   atomic.Int64
	allowedRequests atomic.Int64
	deniedRequests  atomic.Int64
	usedWeight      atomic.Int64
	bucketCount     atomic.Int32
}

// New creates a RateLimiter allowing weight units per period in every bucket.
func New(weight int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		weight:  weight,
		period:  period,
		metrics: &Metrics{},
	}
}

// Wait blocks until the bucket has room for weight units or the context is cancelled.
// A weight larger than the bucket burst is an error since it can never be satisfied.
func (r *RateLimiter) Wait(ctx context.Context, bucket string, weight int) error {
	r.metrics.totalRequests.Add(1)
	limiter := r.getBucket(bucket)
	if weight > limiter.Burst() {
		r.metrics.deniedRequests.Add(1)
		return fmt.Errorf("request weight %d exceeds limit %d", weight, limiter.Burst())
	}
	if err := limiter.WaitN(ctx, weight); err != nil {
		r.metrics.deniedRequests.Add(1)
		return err
	}
	r.metrics.allowedRequests.Add(1)
	r.metrics.usedWeight.Add(int64(weight))
	return nil
}

func (r *RateLimiter) getBucket(bucket string) *rate.Limiter {
	if v, ok := r.buckets.Load(bucket); ok {
		return v.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(limitFor(r.weight, r.period), r.weight)

	actual, loaded := r.buckets.LoadOrStore(bucket, limiter)
	if !loaded {
		r.metrics.bucketCount.Add(1)
	}
	return actual.(*rate.Limiter)
}

func limitFor(weight int, period time.Duration) rate.Limit {
	return rate.Limit(float64(weight) / period.Seconds())
}

// Metrics returns a snapshot of the current rate limiter statistics.
func (r *RateLimiter) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		TotalRequests:   r.metrics.totalRequests.Load(),
		AllowedRequests: r.metrics.allowedRequests.Load(),
		DeniedRequests:  r.metrics.deniedRequests.Load(),
		UsedWeight:      r.metrics.usedWeight.Load(),
		BucketCount:     r.metrics.bucketCount.Load(),
	}
}

// MetricsSnapshot is a point-in-time capture of rate limiter statistics.
type MetricsSnapshot struct {
	// TotalRequests is the total number of rate limit checks performed.
	TotalRequests int64
	// AllowedRequests is the number of requests that were allowed.
	AllowedRequests int64
	// DeniedRequests is the number of requests that were denied.
	DeniedRequests int64
	// UsedWeight is the sum of weight consumed by allowed requests.
	UsedWeight int64
	// BucketCount is the number of rate limit buckets in use.
	BucketCount int32
}
