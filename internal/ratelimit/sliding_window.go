// Package ratelimit ограничивает частоту запросов клиента скользящим окном.
package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindow хранит для каждого ключа отметки времени принятых запросов.
type SlidingWindow struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	max      int
	window   time.Duration
	now      func() time.Time
}

// New создает ограничитель: не более maxRequests запросов за window на ключ.
func New(maxRequests int, window time.Duration) *SlidingWindow {
	return &SlidingWindow{
		requests: make(map[string][]time.Time),
		max:      maxRequests,
		window:   window,
		now:      time.Now,
	}
}

// WithClock подменяет источник времени (для тестов).
func (l *SlidingWindow) WithClock(now func() time.Time) *SlidingWindow {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
	return l
}

// Allow отбрасывает устаревшие отметки и принимает запрос, если лимит не исчерпан.
// Отклоненный запрос не записывается.
func (l *SlidingWindow) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	recent := l.recent(l.requests[key], now)

	if len(recent) >= l.max {
		l.requests[key] = recent
		return false
	}

	l.requests[key] = append(recent, now)
	return true
}

// Prune удаляет ключи без запросов внутри окна и возвращает их количество.
func (l *SlidingWindow) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, times := range l.requests {
		recent := l.recent(times, now)
		if len(recent) == 0 {
			delete(l.requests, key)
			removed++
			continue
		}
		l.requests[key] = recent
	}
	return removed
}

// Keys возвращает число отслеживаемых ключей.
func (l *SlidingWindow) Keys() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.requests)
}

// recent оставляет отметки моложе окна. Отметки упорядочены по возрастанию.
func (l *SlidingWindow) recent(times []time.Time, now time.Time) []time.Time {
	i := 0
	for i < len(times) && now.Sub(times[i]) >= l.window {
		i++
	}
	if i == 0 {
		return times
	}
	return append(times[:0:0], times[i:]...)
}
