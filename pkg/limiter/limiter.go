package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	sync.Mutex

	clients map[string]*client
	rps     rate.Limit
	burst   int
	ttl     time.Duration
}

func newRateLimiter(rps int, burst int, ttl time.Duration) *rateLimiter {
	l := &rateLimiter{
		clients: make(map[string]*client),
		rps:     rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
	}

	go l.cleanup()

	return l
}

func (l *rateLimiter) allow(ip string) bool {
	l.Lock()
	defer l.Unlock()

	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = time.Now()

	return c.limiter.Allow()
}

func (l *rateLimiter) cleanup() {
	for range time.Tick(l.ttl) {
		l.Lock()
		for ip, c := range l.clients {
			if time.Since(c.lastSeen) > l.ttl {
				delete(l.clients, ip)
			}
		}
		l.Unlock()
	}
}

// Limit returns a gin middleware applying a per-client-IP token bucket.
// Entries unused for ttl are evicted.
func Limit(rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	l := newRateLimiter(rps, burst, ttl)

	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}

		c.Next()
	}
}
