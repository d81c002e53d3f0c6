package http

import (
	"context"
	"sync"

	"github.com/fwojciec/pantry"
	"golang.org/x/time/rate"
)

var _ pantry.RateLimiter = (*HostLimiter)(nil)

// HostLimiter keeps one token bucket per search host.
type HostLimiter struct {
	limit rate.Limit
	burst int

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// LimiterOption configures a HostLimiter.
type LimiterOption func(*HostLimiter)

// WithBurst lets up to n requests through before pacing starts.
// Values below 1 are ignored.
func WithBurst(n int) LimiterOption {
	return func(h *HostLimiter) {
		if n >= 1 {
			h.burst = n
		}
	}
}

// NewHostLimiter allows rps requests per second to each host.
// The burst defaults to 1.
func NewHostLimiter(rps float64, opts ...LimiterOption) *HostLimiter {
	h := &HostLimiter{
		limit: rate.Limit(rps),
		burst: 1,
		hosts: make(map[string]*rate.Limiter),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Wait blocks until host has a free token or ctx is done.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	return h.bucket(host).Wait(ctx)
}

func (h *HostLimiter) bucket(host string) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.hosts[host]
	if !ok {
		b = rate.NewLimiter(h.limit, h.burst)
		h.hosts[host] = b
	}
	return b
}
