// Package ratelimit implements a sliding-window request limiter keyed by
// principal. Each principal carries the timestamps of its admitted requests
// within the trailing window; a request is admitted while fewer than limit
// timestamps survive the prune.
package ratelimit

import (
	"sync"
	"time"

	"github.com/you/tradeops/domain"
)

const (
	DefaultLimit  = 10
	DefaultWindow = 60 * time.Second

	// sweepEvery bounds how often the full idle-principal sweep runs.
	sweepEvery = 256
)

// Limiter is safe for concurrent use. The single mutex serializes the
// prune-then-count-then-append sequence so two racing requests can never
// both observe a free slot.
type Limiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string][]time.Time
	admits int
}

// New creates a limiter admitting at most limit requests per principal
// within any trailing window. A non-positive window falls back to the
// default; limit <= 0 is honored as "reject everything".
func New(limit int, window time.Duration) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		limit:  limit,
		window: window,
		hits:   make(map[string][]time.Time),
	}
}

// Admit records and admits the request when the principal has capacity
// left, or rejects it with the time until a slot frees up. The stored
// timestamp slice stays sorted and within (now-window, now].
func (l *Limiter) Admit(principal string, now time.Time) domain.RateDecision {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	kept := pruneBefore(l.hits[principal], cutoff)

	if len(kept) >= l.limit || l.limit <= 0 {
		retry := l.window
		if len(kept) > 0 {
			retry = kept[0].Add(l.window).Sub(now)
		}
		if len(kept) > 0 {
			l.hits[principal] = kept
		} else {
			delete(l.hits, principal)
		}
		return domain.RateDecision{Allowed: false, Remaining: 0, RetryAfter: retry}
	}

	l.hits[principal] = append(kept, now)
	l.admits++
	if l.admits%sweepEvery == 0 {
		l.sweep(cutoff)
	}

	return domain.RateDecision{Allowed: true, Remaining: l.limit - len(kept) - 1}
}

// pruneBefore drops timestamps at or before cutoff. Slices are appended in
// arrival order, so the first surviving index covers the rest.
func pruneBefore(ts []time.Time, cutoff time.Time) []time.Time {
	for i, t := range ts {
		if t.After(cutoff) {
			return ts[i:]
		}
	}
	return nil
}

// sweep drops principals whose every timestamp has aged out, keeping the
// map bounded by active principals rather than all principals ever seen.
func (l *Limiter) sweep(cutoff time.Time) {
	for principal, ts := range l.hits {
		kept := pruneBefore(ts, cutoff)
		if len(kept) == 0 {
			delete(l.hits, principal)
			continue
		}
		l.hits[principal] = kept
	}
}

// Tracked reports how many principals currently hold state.
func (l *Limiter) Tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hits)
}
