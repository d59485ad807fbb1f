package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func TestLimiter_SlidingWindow(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := New(2, 60*time.Second)

	steps := []struct {
		at      time.Duration
		allowed bool
	}{
		{0, true},
		{1 * time.Second, true},
		{2 * time.Second, false},
		{61 * time.Second, true}, // first timestamp now outside the window
	}

	for i, step := range steps {
		got := l.Admit("alice@example.com", base.Add(step.at))
		if got.Allowed != step.allowed {
			t.Errorf("step %d at +%v: allowed = %v, want %v", i, step.at, got.Allowed, step.allowed)
		}
	}
}

func TestLimiter_RejectionCarriesRetryAfter(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := New(1, 60*time.Second)

	if got := l.Admit("p", base); !got.Allowed {
		t.Fatal("first request should be admitted")
	}

	got := l.Admit("p", base.Add(10*time.Second))
	if got.Allowed {
		t.Fatal("second request within window should be rejected")
	}
	if want := 50 * time.Second; got.RetryAfter != want {
		t.Errorf("RetryAfter = %v, want %v", got.RetryAfter, want)
	}
}

func TestLimiter_ZeroLimitRejectsUnconditionally(t *testing.T) {
	l := New(0, 60*time.Second)
	now := time.Now()

	for i := 0; i < 3; i++ {
		if got := l.Admit("p", now); got.Allowed {
			t.Fatalf("request %d admitted with limit 0", i)
		}
	}
}

func TestLimiter_PrincipalsAreIndependent(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := New(1, 60*time.Second)

	if got := l.Admit("a@x.com", base); !got.Allowed {
		t.Fatal("first principal should be admitted")
	}
	if got := l.Admit("b@x.com", base); !got.Allowed {
		t.Fatal("second principal should not share the first's window")
	}
	if got := l.Admit("a@x.com", base.Add(time.Second)); got.Allowed {
		t.Fatal("first principal should be at capacity")
	}
}

func TestLimiter_UnknownPrincipalStartsEmpty(t *testing.T) {
	l := New(5, time.Minute)
	got := l.Admit("never-seen@example.com", time.Now())
	if !got.Allowed {
		t.Fatal("first request for an unknown principal should be admitted")
	}
	if got.Remaining != 4 {
		t.Errorf("Remaining = %d, want 4", got.Remaining)
	}
}

func TestLimiter_ConcurrentAdmissionNeverExceedsLimit(t *testing.T) {
	const limit = 10
	const attempts = 200

	l := New(limit, time.Minute)
	now := time.Now()

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := l.Admit("hot@example.com", now); got.Allowed {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if admitted != limit {
		t.Errorf("admitted %d requests, want exactly %d", admitted, limit)
	}
}

func TestLimiter_SweepEvictsIdlePrincipals(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := New(1000, 60*time.Second)

	// Populate many principals, then age them all out.
	for i := 0; i < sweepEvery-1; i++ {
		l.Admit(string(rune('a'+i%26))+"-"+time.Duration(i).String(), base)
	}
	if l.Tracked() == 0 {
		t.Fatal("expected tracked principals before sweep")
	}

	// This admit crosses the sweep threshold two minutes later, when every
	// earlier principal's timestamps are stale.
	l.Admit("fresh@example.com", base.Add(2*time.Minute))

	if got := l.Tracked(); got != 1 {
		t.Errorf("tracked principals after sweep = %d, want 1", got)
	}
}

func TestLimiter_RejectionDoesNotConsumeSlot(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := New(2, 60*time.Second)

	l.Admit("p", base)
	l.Admit("p", base.Add(time.Second))

	// Hammer rejections; they must not extend the window.
	for i := 0; i < 50; i++ {
		if got := l.Admit("p", base.Add(30*time.Second)); got.Allowed {
			t.Fatal("rejected burst should stay rejected")
		}
	}

	if got := l.Admit("p", base.Add(61*time.Second)); !got.Allowed {
		t.Error("slot should free once the oldest admitted timestamp ages out")
	}
}
