package internal

import (
	"github.com/2beens/fittrack/internal/backup"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/program"
	"github.com/2beens/fittrack/internal/reminders"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/tracker"
)

// Services are the domain services built on one record accessor.
type Services struct {
	Store     *store.Accessor
	Tracker   *tracker.Service
	Stats     *stats.Service
	Reminders *reminders.Service
	Backup    *backup.Service
}

func NewServices(accessor *store.Accessor, cfg *config.Config, metricsManager *metrics.Manager) *Services {
	tr := tracker.NewService(accessor, program.DefaultCatalog())
	return &Services{
		Store:     accessor,
		Tracker:   tr,
		Stats:     stats.NewService(tr, cfg.StatsCacheSizeMB*1024*1024, cfg.LookbackDays, metricsManager),
		Reminders: reminders.NewService(tr),
		Backup:    backup.NewService(accessor, metricsManager),
	}
}

func (s *Services) Close() {
	s.Stats.Close()
}
