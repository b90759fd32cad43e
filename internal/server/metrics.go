package server

import (
	"sync/atomic"
	"time"
)

// Metrics tracks request statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal atomic.Int64
	ClientErrors  atomic.Int64
	ServerErrors  atomic.Int64
	TaskMutations atomic.Int64
	StartTime     time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// ObserveStatus counts one finished request by its response status
func (m *Metrics) ObserveStatus(status int) {
	m.RequestsTotal.Add(1)
	switch {
	case status >= 500:
		m.ServerErrors.Add(1)
	case status >= 400:
		m.ClientErrors.Add(1)
	}
}

// IncTaskMutations increments the successful create/update/delete/move counter
func (m *Metrics) IncTaskMutations() {
	m.TaskMutations.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	Status        string    `json:"status"`
	RequestsTotal int64     `json:"requests_total"`
	ClientErrors  int64     `json:"client_errors"`
	ServerErrors  int64     `json:"server_errors"`
	TaskMutations int64     `json:"task_mutations"`
	StartTime     time.Time `json:"start_time"`
	Uptime        string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Status:        "ok",
		RequestsTotal: m.RequestsTotal.Load(),
		ClientErrors:  m.ClientErrors.Load(),
		ServerErrors:  m.ServerErrors.Load(),
		TaskMutations: m.TaskMutations.Load(),
		StartTime:     m.StartTime,
		Uptime:        time.Since(m.StartTime).String(),
	}
}
