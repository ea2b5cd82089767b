package cmsmock

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter caps contact submissions per client IP within a fixed window.
type RateLimiter struct {
	mu          sync.Mutex
	submissions map[string]*window
	max         int
	duration    time.Duration
	now         func() time.Time
}

type window struct {
	count   int
	started time.Time
}

func NewRateLimiter(max int, duration time.Duration) *RateLimiter {
	if max <= 0 {
		max = 5
	}
	if duration <= 0 {
		duration = time.Minute
	}
	return &RateLimiter{
		submissions: make(map[string]*window),
		max:         max,
		duration:    duration,
		now:         time.Now,
	}
}

// Allow records a submission from ip. When the limit is reached it returns
// false and the time until the window resets.
func (rl *RateLimiter) Allow(ip string) (bool, time.Duration) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.prune(now)

	w, ok := rl.submissions[ip]
	if !ok {
		w = &window{started: now}
		rl.submissions[ip] = w
	}
	if w.count >= rl.max {
		return false, w.started.Add(rl.duration).Sub(now)
	}
	w.count++
	return true, 0
}

// prune drops expired windows. Callers hold mu.
func (rl *RateLimiter) prune(now time.Time) {
	for ip, w := range rl.submissions {
		if now.Sub(w.started) >= rl.duration {
			delete(rl.submissions, ip)
		}
	}
}

// Middleware rejects requests over the limit with the content API's
// rate limit error.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := rl.Allow(c.ClientIP())
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
			respondError(c, http.StatusTooManyRequests, "RateLimitError", "Too many requests, please try again later.")
			c.Abort()
			return
		}
		c.Next()
	}
}
