package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var (
	rateLimiters = make(map[string]*rate.Limiter)
	rateMutex    = &sync.RWMutex{}
)

func getRateLimiter(ip string) *rate.Limiter {
	rateMutex.RLock()
	limiter, exists := rateLimiters[ip]
	rateMutex.RUnlock()
	if exists {
		return limiter
	}

	rateMutex.Lock()
	defer rateMutex.Unlock()
	if limiter, exists = rateLimiters[ip]; exists {
		return limiter
	}
	// 10 requests per second, burst of 20, per client IP
	limiter = rate.NewLimiter(10, 20)
	rateLimiters[ip] = limiter
	return limiter
}

// RateLimit throttles requests per client IP.
func RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getRateLimiter(c.ClientIP())
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, slow down"})
			c.Abort()
			return
		}
		c.Next()
	}
}
