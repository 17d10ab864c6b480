package quota

import (
	"context"
	"sync"
	"time"

	"lunarly/config"
)

// AnalysisQuotaLimiter enforces per-minute pacing and a daily cap on
// analysis LLM calls. It is in-memory and assumes a single API instance;
// counters reset when the process restarts.
type AnalysisQuotaLimiter struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time
}

// NewAnalysisQuotaLimiter builds a limiter from the analysis quota
// settings. Values of 0 or less disable that direction of the limit.
func NewAnalysisQuotaLimiter(q config.QuotaConfig) *AnalysisQuotaLimiter {
	requestsPerDay := q.RequestsPerDay
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}

	requestsPerMinute := q.RequestsPerMinute
	if requestsPerMinute < 0 {
		requestsPerMinute = 0
	}

	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}

	return &AnalysisQuotaLimiter{
		dailyLimit: requestsPerDay,
		interval:   interval,
	}
}

// WaitAndReserve applies the limits before a model call.
//   - daily cap reached: returns (false, nil); the caller must not call
//     the model and should surface a quota error.
//   - context cancelled while pacing: returns (false, ctx.Err()).
//   - otherwise reserves one slot, pacing the call if needed.
func (l *AnalysisQuotaLimiter) WaitAndReserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()

		now := time.Now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			nextAllowed := l.lastCall.Add(l.interval)
			delay = time.Until(nextAllowed)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		l.mu.Unlock()
		select {
		case <-time.After(delay):
			// re-evaluate under the lock
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
