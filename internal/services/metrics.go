package services

import (
	"sync"
	"time"
)

type MetricsSnapshot struct {
	ResumesParsed      int64     `json:"resumes_parsed"`
	QuestionSets       int64     `json:"question_sets"`
	ReportsGenerated   int64     `json:"reports_generated"`
	ModelCallsTotal    int64     `json:"model_calls_total"`
	ModelCallsFailed   int64     `json:"model_calls_failed"`
	ModelTimeouts      int64     `json:"model_timeouts"`
	ModelQuotaExceeded int64     `json:"model_quota_exceeded"`
	LastUpdateTime     time.Time `json:"last_update_time"`
}

type Metrics struct {
	mu       sync.RWMutex
	counters MetricsSnapshot
}

func NewMetrics() *Metrics {
	return &Metrics{
		counters: MetricsSnapshot{LastUpdateTime: time.Now()},
	}
}

func (m *Metrics) IncrementResumesParsed() {
	m.update(func(c *MetricsSnapshot) { c.ResumesParsed++ })
}

func (m *Metrics) IncrementQuestionSets() {
	m.update(func(c *MetricsSnapshot) { c.QuestionSets++ })
}

func (m *Metrics) IncrementReportsGenerated() {
	m.update(func(c *MetricsSnapshot) { c.ReportsGenerated++ })
}

// RecordModelCall counts one model invocation by its error kind.
func (m *Metrics) RecordModelCall(errorKind string) {
	m.update(func(c *MetricsSnapshot) {
		c.ModelCallsTotal++
		if errorKind != "" {
			c.ModelCallsFailed++
		}
		switch errorKind {
		case "timeout":
			c.ModelTimeouts++
		case "quota":
			c.ModelQuotaExceeded++
		}
	})
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.counters
}

func (m *Metrics) update(fn func(c *MetricsSnapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.counters)
	m.counters.LastUpdateTime = time.Now()
}
