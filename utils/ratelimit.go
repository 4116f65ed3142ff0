package utils

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Default command budget per user: 15 commands a minute.
const (
	DefaultCommandsPerMinute = 15
	DefaultBurst             = 15
)

// RateLimiter controls the rate of command execution per user and command.
type RateLimiter struct {
	limits map[string]*rate.Limiter
	every  rate.Limit
	burst  int
	mu     sync.Mutex
}

// NewRateLimiter creates a rate limiter with the default budget.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWith(rate.Every(time.Minute/DefaultCommandsPerMinute), DefaultBurst)
}

// NewRateLimiterWith creates a rate limiter refilling at every with room for burst.
func NewRateLimiterWith(every rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limits: make(map[string]*rate.Limiter),
		every:  every,
		burst:  burst,
	}
}

func (rl *RateLimiter) limiter(userID, command string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	key := userID + ":" + command
	limit, exists := rl.limits[key]
	if !exists {
		limit = rate.NewLimiter(rl.every, rl.burst)
		rl.limits[key] = limit
	}
	return limit
}

// Allow checks if a user is allowed to execute a command.
// Returns true if allowed, false if rate limited.
func (rl *RateLimiter) Allow(userID, command string) bool {
	return rl.limiter(userID, command).Allow()
}

// GetRetryAfter returns the time in seconds until the user can try again
func (rl *RateLimiter) GetRetryAfter(userID, command string) int {
	// CancelAt with the reservation's own time hands the token back even
	// when it was immediately available.
	now := time.Now()
	r := rl.limiter(userID, command).ReserveN(now, 1)
	defer r.CancelAt(now)

	delay := r.DelayFrom(now)
	if delay <= 0 {
		return 0
	}
	return int((delay + time.Second - 1) / time.Second)
}
