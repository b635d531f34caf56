package ratelimiter

import (
	"context"
	"sync"
	"time"
)

// Result describes the bucket after a request.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the request fit in the bucket.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is the wait until the next refill for a denied request.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() || !r.ResetAt.After(now) {
		return 0
	}
	return r.ResetAt.Sub(now)
}

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter is an in-memory token bucket per key.
// Denied requests do not consume tokens.
type Limiter struct {
	mu        sync.Mutex
	cfg       Config
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

// New validates cfg and returns a limiter.
func New(cfg Config) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}, nil
}

// Allow takes one token for key.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: l.cfg.Capacity, lastRefill: now}
		l.buckets[key] = b
	}
	b.lastAccess = now

	if intervals := int(now.Sub(b.lastRefill) / l.cfg.RefillInterval); intervals > 0 {
		// Cap before multiplying so long idle periods cannot overflow.
		intervals = min(intervals, l.cfg.Capacity/l.cfg.RefillRate+1)
		b.tokens = min(b.tokens+intervals*l.cfg.RefillRate, l.cfg.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * l.cfg.RefillInterval)
		if b.tokens == l.cfg.Capacity {
			b.lastRefill = now
		}
	}

	res := Result{Limit: l.cfg.Capacity, ResetAt: b.lastRefill.Add(l.cfg.RefillInterval)}
	if b.tokens == 0 {
		res.Remaining = -1
		return res, nil
	}
	b.tokens--
	res.Remaining = b.tokens
	return res, nil
}

// Reset forgets key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

// sweep must be called with mu held.
func (l *Limiter) sweep(now time.Time) {
	if l.cfg.IdleTTL <= 0 || now.Sub(l.lastSweep) < l.cfg.IdleTTL {
		return
	}
	l.lastSweep = now
	for key, b := range l.buckets {
		if now.Sub(b.lastAccess) > l.cfg.IdleTTL {
			delete(l.buckets, key)
		}
	}
}
