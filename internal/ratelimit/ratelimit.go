package ratelimit

import (
	"sync"
	"time"
)

// RateLimiter enforces sliding minute, hour and day windows per client key.
type RateLimiter struct {
	requestsPerMinute int
	requestsPerHour   int
	requestsPerDay    int
	enabled           bool

	clients   map[string]*window
	rejected  int
	lastSweep time.Time
	now       func() time.Time
	mu        sync.Mutex
}

// sweepInterval bounds how often Allow drops clients whose windows expired.
const sweepInterval = time.Minute

type window struct {
	minute []time.Time
	hour   []time.Time
	day    []time.Time
}

// NewRateLimiter creates a new rate limiter with the given limits.
// A limit of zero or less disables that window.
func NewRateLimiter(requestsPerMinute, requestsPerHour, requestsPerDay int, enabled bool) *RateLimiter {
	return &RateLimiter{
		requestsPerMinute: requestsPerMinute,
		requestsPerHour:   requestsPerHour,
		requestsPerDay:    requestsPerDay,
		enabled:           enabled,
		clients:           make(map[string]*window),
		now:               time.Now,
	}
}

// Allow records a request for key and reports whether it fits every window.
// Rejected requests are not recorded.
func (rl *RateLimiter) Allow(key string) bool {
	if !rl.enabled {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= sweepInterval {
		rl.prune(now)
	}

	w := rl.clients[key]
	if w == nil {
		w = &window{}
		rl.clients[key] = w
	}
	w.cleanup(now)

	if exceeded(len(w.minute), rl.requestsPerMinute) ||
		exceeded(len(w.hour), rl.requestsPerHour) ||
		exceeded(len(w.day), rl.requestsPerDay) {
		rl.rejected++
		return false
	}

	w.minute = append(w.minute, now)
	w.hour = append(w.hour, now)
	w.day = append(w.day, now)
	return true
}

func exceeded(count, limit int) bool {
	return limit > 0 && count >= limit
}

// cleanup removes expired entries from the time windows
func (w *window) cleanup(now time.Time) {
	w.minute = filterTimes(w.minute, now.Add(-1*time.Minute))
	w.hour = filterTimes(w.hour, now.Add(-1*time.Hour))
	w.day = filterTimes(w.day, now.Add(-24*time.Hour))
}

func (w *window) empty() bool {
	return len(w.day) == 0
}

// filterTimes keeps only times after the cutoff
func filterTimes(times []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(times) && !times[i].After(cutoff) {
		i++
	}
	return times[i:]
}

// prune expires old requests and forgets clients with none left. Callers hold rl.mu.
func (rl *RateLimiter) prune(now time.Time) {
	for key, w := range rl.clients {
		w.cleanup(now)
		if w.empty() {
			delete(rl.clients, key)
		}
	}
	rl.lastSweep = now
}

// Stats contains rate limiter statistics
type Stats struct {
	Enabled            bool `json:"enabled"`
	TrackedClients     int  `json:"tracked_clients"`
	RequestsLastMinute int  `json:"requests_last_minute"`
	RequestsLastHour   int  `json:"requests_last_hour"`
	RequestsLastDay    int  `json:"requests_last_day"`
	Rejected           int  `json:"rejected"`
	LimitPerMinute     int  `json:"limit_per_minute"`
	LimitPerHour       int  `json:"limit_per_hour"`
	LimitPerDay        int  `json:"limit_per_day"`
}

// GetStats returns totals across clients and drops clients with no recent requests.
func (rl *RateLimiter) GetStats() Stats {
	if !rl.enabled {
		return Stats{Enabled: false}
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	stats := Stats{
		Enabled:        true,
		Rejected:       rl.rejected,
		LimitPerMinute: rl.requestsPerMinute,
		LimitPerHour:   rl.requestsPerHour,
		LimitPerDay:    rl.requestsPerDay,
	}

	rl.prune(rl.now())
	for _, w := range rl.clients {
		stats.TrackedClients++
		stats.RequestsLastMinute += len(w.minute)
		stats.RequestsLastHour += len(w.hour)
		stats.RequestsLastDay += len(w.day)
	}
	return stats
}

// Reset clears all tracked requests (useful for testing)
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.clients = make(map[string]*window)
	rl.rejected = 0
	rl.lastSweep = time.Time{}
}
