package handlers

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// clientIP strips the ephemeral port so attempts from the same host
// share one bucket.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type RateLimiter struct {
	attempts map[string]int
	limit    int
	mutex    sync.Mutex
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		attempts: make(map[string]int),
		limit:    limit,
		window:   window,
	}
	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	count, exists := rl.attempts[ip]
	if !exists {
		rl.attempts[ip] = 1
		return true
	}
	if count >= rl.limit {
		return false
	}
	rl.attempts[ip]++
	return true
}

// reset the attempts map every window duration
func (rl *RateLimiter) cleanup() {
	for {
		time.Sleep(rl.window)
		rl.mutex.Lock()
		rl.attempts = make(map[string]int)
		rl.mutex.Unlock()
	}
}
