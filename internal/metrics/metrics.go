package metrics

import (
	"sync"
	"time"
)

// Metrics tracks process-wide interview counters. Sessions themselves
// hold no shared state; this is the only cross-session aggregate.
type Metrics struct {
	mu                sync.RWMutex
	SessionsStarted   int64
	SessionsCompleted int64
	SessionsAbandoned int64
	AnswersCollected  int64
	AICallsTotal      int64
	AIFallbacks       int64
	LastUpdateTime    time.Time
}

func New() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementSessionsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsStarted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementSessionsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsCompleted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementSessionsAbandoned() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsAbandoned++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAnswersCollected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnswersCollected++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAICall(fallback bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AICallsTotal++
	if fallback {
		m.AIFallbacks++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Metrics{
		SessionsStarted:   m.SessionsStarted,
		SessionsCompleted: m.SessionsCompleted,
		SessionsAbandoned: m.SessionsAbandoned,
		AnswersCollected:  m.AnswersCollected,
		AICallsTotal:      m.AICallsTotal,
		AIFallbacks:       m.AIFallbacks,
		LastUpdateTime:    m.LastUpdateTime,
	}
}
