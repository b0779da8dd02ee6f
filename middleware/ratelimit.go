package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a per-client token bucket keyed by IP.
type RateLimiter struct {
	mu         sync.Mutex
	clients    map[string]*bucket
	rate       float64 // tokens per second
	bucketSize float64
	lastPrune  time.Time
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

const pruneInterval = 10 * time.Minute

// NewRateLimiter allows rate requests per second with bursts up to
// bucketSize.
func NewRateLimiter(rate, bucketSize float64) *RateLimiter {
	return &RateLimiter{
		clients:    make(map[string]*bucket),
		rate:       rate,
		bucketSize: bucketSize,
		lastPrune:  time.Now(),
	}
}

// RateLimit rejects requests with 429 once a client's bucket is empty.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	b, exists := rl.clients[ip]
	if !exists {
		b = &bucket{tokens: rl.bucketSize, lastRefill: now}
		rl.clients[ip] = b
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(rl.bucketSize, b.tokens+elapsed*rl.rate)
	b.lastRefill = now

	if now.Sub(rl.lastPrune) > pruneInterval {
		rl.pruneLocked(now)
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// pruneLocked drops clients whose buckets refilled completely long ago.
// Caller holds rl.mu.
func (rl *RateLimiter) pruneLocked(now time.Time) {
	for ip, b := range rl.clients {
		if now.Sub(b.lastRefill) > pruneInterval {
			delete(rl.clients, ip)
		}
	}
	rl.lastPrune = now
}
