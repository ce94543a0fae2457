package worker

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces requests per host. Concurrent workers share one token
// bucket per host, so raising the worker count never raises the request
// rate seen by the site.
type Limiter struct {
	mu      sync.Mutex
	hosts   map[string]*rate.Limiter
	perHost rate.Limit
	burst   int
}

// NewLimiter creates a limiter allowing requestsPerSecond per host. A
// non-positive rate disables pacing.
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Limit(requestsPerSecond)
	if requestsPerSecond <= 0 {
		limit = rate.Inf
	}

	return &Limiter{
		hosts:   make(map[string]*rate.Limiter),
		perHost: limit,
		burst:   burst,
	}
}

// Wait blocks until a request to rawURL may be sent
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	bucket, err := l.bucket(rawURL)
	if err != nil {
		return err
	}
	return bucket.Wait(ctx)
}

// WaitWithDelay waits for a token, then sleeps delay (a robots.txt
// crawl delay)
func (l *Limiter) WaitWithDelay(ctx context.Context, rawURL string, delay time.Duration) error {
	if err := l.Wait(ctx, rawURL); err != nil {
		return err
	}
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (l *Limiter) bucket(rawURL string) (*rate.Limiter, error) {
	host, err := hostOf(rawURL)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.hosts[host]
	if !ok {
		bucket = rate.NewLimiter(l.perHost, l.burst)
		l.hosts[host] = bucket
	}
	return bucket, nil
}

func hostOf(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}
	return parsed.Host, nil
}
