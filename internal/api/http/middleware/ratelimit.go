package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipLimiter hands out one token bucket per client IP. Entries idle past the
// eviction window are dropped on the next sweep.
type ipLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipEntry
	r        rate.Limit
	burst    int
}

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const ipEvictAfter = 10 * time.Minute

func newIPLimiter(r rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{
		limiters: make(map[string]*ipEntry),
		r:        r,
		burst:    burst,
	}
}

func (l *ipLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	e, ok := l.limiters[ip]
	if !ok {
		e = &ipEntry{limiter: rate.NewLimiter(l.r, l.burst)}
		l.limiters[ip] = e
	}
	e.lastSeen = now

	if len(l.limiters) > 1024 {
		for ip, e := range l.limiters {
			if now.Sub(e.lastSeen) > ipEvictAfter {
				delete(l.limiters, ip)
			}
		}
	}

	return e.limiter.Allow()
}

// FormRateLimit throttles public form submissions per client IP. This is an
// abuse guard, not a dedup mechanism; a fast double-click can still create
// duplicate rows within the burst.
func FormRateLimit(perMinute int) gin.HandlerFunc {
	if perMinute < 1 {
		perMinute = 1
	}
	l := newIPLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many submissions, try again shortly"})
			c.Abort()
			return
		}
		c.Next()
	}
}
