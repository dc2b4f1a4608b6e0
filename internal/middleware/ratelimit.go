package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/time/rate"
)

// LimiterStore keeps one token bucket per client key and forgets idle keys.
type LimiterStore struct {
	mu      sync.Mutex
	entries map[string]*limiterEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewLimiterStore(rps float64, burst int, idleTTL time.Duration) *LimiterStore {
	return &LimiterStore{
		entries: make(map[string]*limiterEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

func (s *LimiterStore) Allow(key string) bool {
	now := s.now()

	s.mu.Lock()
	ent, ok := s.entries[key]
	if !ok {
		ent = &limiterEntry{lim: rate.NewLimiter(s.rps, s.burst)}
		s.entries[key] = ent
	}
	ent.lastSeen = now
	s.mu.Unlock()

	return ent.lim.AllowN(now, 1)
}

func (s *LimiterStore) Cleanup() int {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

func (s *LimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartJanitor drops idle keys every interval until ctx is done.
func (s *LimiterStore) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}

	t := time.NewTicker(every)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}

// RateLimit rejects requests over the per-IP budget with 429.
func RateLimit(store *LimiterStore, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		ip := c.ClientIP()
		if !store.Allow(ip) {
			log.Warn("rate limit exceeded",
				logger.String("client_ip", ip),
				logger.String("path", c.FullPath()),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				ginext.H{"error": "too many requests, try again later"},
			)
			return
		}
		c.Next()
	}
}
