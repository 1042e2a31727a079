package auth

import "sync"

// DefaultMaxLoginAttempts is the number of consecutive failures allowed
// before logins are refused without touching the store.
const DefaultMaxLoginAttempts = 5

// LoginLimiter tracks consecutive login failures per login identity. State
// is in-memory and ephemeral: a successful login, a logout, or a process
// restart clears it. There is no time-based decay.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string]int
	max      int
}

// NewLoginLimiter creates a limiter allowing max consecutive failures.
func NewLoginLimiter(max int) *LoginLimiter {
	if max <= 0 {
		max = DefaultMaxLoginAttempts
	}
	return &LoginLimiter{
		attempts: make(map[string]int),
		max:      max,
	}
}

// Exceeded reports whether the key has reached the failure limit.
func (l *LoginLimiter) Exceeded(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.attempts[key] >= l.max
}

// Fail records a failed attempt for the key.
func (l *LoginLimiter) Fail(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts[key]++
}

// Reset clears the failure count for the key.
func (l *LoginLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
}

// Attempts returns the current failure count for the key.
func (l *LoginLimiter) Attempts(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.attempts[key]
}
