package workers

import (
	"chatterbox/observability"
	"context"
	"log/slog"
	"os"
	goruntime "runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/process"
)

// HealthMonitoringWorker samples the server process every metricInterval
// and publishes the result to the monitoring manager.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	monitoring     *observability.MonitoringManager
	connections    func() int
	indexBacklog   func() int
	metricInterval time.Duration
}

func NewHealthMonitoringWorker(
	log *slog.Logger,
	monitoring *observability.MonitoringManager,
	connections func() int,
	indexBacklog func() int,
	metricInterval time.Duration,
) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		monitoring:     monitoring,
		connections:    connections,
		indexBacklog:   indexBacklog,
		metricInterval: metricInterval,
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	w.sample(p)

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			stats := w.sample(p)
			w.log.Debug("Health sample",
				"connections", stats.Connections,
				"goroutines", stats.Goroutines,
				"rss_bytes", stats.RSSBytes,
				"cpu_percent", stats.CPUPercent,
				"index_backlog", stats.IndexBacklog,
			)
		}
	}
}

func (w *HealthMonitoringWorker) sample(p *process.Process) observability.Stats {
	stats := observability.Stats{
		PID:          p.Pid,
		Connections:  w.connections(),
		Goroutines:   goruntime.NumGoroutine(),
		IndexBacklog: w.indexBacklog(),
		SampledAt:    time.Now().UTC(),
	}
	if status, err := p.Status(); err == nil {
		stats.Status = strings.TrimSpace(status)
	} else {
		w.log.Debug("Error while finding process status", "err", err)
	}
	if cpu, err := p.CPUPercent(); err == nil {
		stats.CPUPercent = cpu
	} else {
		w.log.Debug("Error while finding process cpu usage", "err", err)
	}
	if mem, err := p.MemoryInfo(); err == nil {
		stats.RSSBytes = mem.RSS
	} else {
		w.log.Debug("Error while finding process memory", "err", err)
	}
	w.monitoring.Update(stats)
	return stats
}
