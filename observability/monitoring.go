package observability

import (
	"sync"
	"time"
)

// Stats is the latest health sample of the server process.
type Stats struct {
	PID          int32     `json:"pid"`
	Status       string    `json:"status"`
	Connections  int       `json:"connections"`
	Goroutines   int       `json:"goroutines"`
	RSSBytes     uint64    `json:"rss_bytes"`
	CPUPercent   float64   `json:"cpu_percent"`
	IndexBacklog int       `json:"index_backlog"`
	SampledAt    time.Time `json:"sampled_at"`
}

// MonitoringManager keeps the latest Stats for readers such as the health endpoint.
type MonitoringManager struct {
	mu          sync.RWMutex
	latestStats Stats
	startedAt   time.Time
}

func NewMonitoringManager() *MonitoringManager {
	return &MonitoringManager{startedAt: time.Now().UTC()}
}

func (mm *MonitoringManager) Update(stats Stats) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats = stats
}

func (mm *MonitoringManager) GetLatest() Stats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}

func (mm *MonitoringManager) Uptime() time.Duration {
	return time.Since(mm.startedAt)
}
