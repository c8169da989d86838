// Package ratelimiter implements per-key token buckets that expire when idle.
package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	rate       float64 // tokens per second
	lastRefill time.Time
	idle       *time.Timer
}

func (b *bucket) allow(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens += now.Sub(b.lastRefill).Seconds() * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Limiter holds one bucket per key (user id, ip, ...).
type Limiter struct {
	mu       sync.RWMutex
	buckets  map[string]*bucket
	rate     float64
	capacity float64
	ttl      time.Duration
}

// New creates a limiter refilling rate tokens per second up to capacity.
// Buckets unused for ttl are dropped.
func New(rate, capacity float64, ttl time.Duration) *Limiter {
	return &Limiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		capacity: capacity,
		ttl:      ttl,
	}
}

// forget drops b unless key has since been given a newer bucket.
func (l *Limiter) forget(key string, b *bucket) {
	l.mu.Lock()
	if l.buckets[key] == b {
		delete(l.buckets, key)
	}
	l.mu.Unlock()
}

func (l *Limiter) touch(key string, b *bucket) {
	if b.idle != nil {
		b.idle.Stop()
	}
	b.idle = time.AfterFunc(l.ttl, func() { l.forget(key, b) })
}

func (l *Limiter) get(key string) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		b.mu.Lock()
		l.touch(key, b)
		b.mu.Unlock()
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if b, ok = l.buckets[key]; !ok {
		b = &bucket{
			tokens:     l.capacity,
			capacity:   l.capacity,
			rate:       l.rate,
			lastRefill: time.Now(),
		}
		l.buckets[key] = b
	}
	b.mu.Lock()
	l.touch(key, b)
	b.mu.Unlock()
	return b
}

// Allow consumes a token for key if one is available.
func (l *Limiter) Allow(key string) bool {
	return l.get(key).allow(time.Now())
}

// Stop cancels every pending expiration timer.
func (l *Limiter) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range l.buckets {
		b.mu.Lock()
		if b.idle != nil {
			b.idle.Stop()
		}
		b.mu.Unlock()
	}
}

func OnceInSecond() *Limiter { return New(1, 1, time.Hour) }
func Rps10() *Limiter        { return New(10, 10, time.Hour) }
func Rps100() *Limiter       { return New(100, 100, time.Hour) }
