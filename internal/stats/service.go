package stats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/calendar"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/tracker"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneDay           = 24 * 60 * 60
	statsCacheExpire = oneDay

	DefaultLookbackDays = 28
	// MaxLookbackDays bounds adherence windows to a year and a day.
	MaxLookbackDays = 366
	weightTrendDays = 30
	waistTrendDays  = 30
	stepsTrendDays  = 14
)

// Service computes statistics from the tracker's records. Results are
// cached per day and store data version, so a write by any process
// invalidates them.
type Service struct {
	tracker        *tracker.Service
	cache          *freecache.Cache
	metricsManager *metrics.Manager
	lookbackDays   int
	unsubscribe    func()
}

func NewService(tr *tracker.Service, cacheSize, lookbackDays int, metricsManager *metrics.Manager) *Service {
	if lookbackDays <= 0 || lookbackDays > MaxLookbackDays {
		lookbackDays = DefaultLookbackDays
	}
	s := &Service{
		tracker:        tr,
		cache:          freecache.NewCache(cacheSize),
		metricsManager: metricsManager,
		lookbackDays:   lookbackDays,
	}
	s.unsubscribe = tr.Subscribe("", func(c store.Change) {
		log.Tracef("stats cache cleared after %s of %s %s", c.Op, c.Kind, c.Date)
		s.cache.Clear()
	})
	return s
}

// Close stops listening for record changes.
func (s *Service) Close() {
	s.unsubscribe()
}

// cached serves key from the cache or computes and stores it. The data
// version is read before compute, so a write landing during compute leaves
// the result under a version no later call asks for.
func cached[T any](ctx context.Context, s *Service, key string, compute func() (T, error)) (T, error) {
	version, err := s.tracker.DataVersion(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	key = fmt.Sprintf("%s::v%d", key, version)

	if data, err := s.cache.Get([]byte(key)); err == nil {
		var v T
		if err := json.Unmarshal(data, &v); err == nil {
			if s.metricsManager != nil {
				s.metricsManager.CounterStatsCacheHits.Inc()
			}
			return v, nil
		} else {
			log.Errorf("failed to unmarshal cached stats %s: %s", key, err)
		}
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterStatsCacheMisses.Inc()
	}

	v, err := compute()
	if err != nil {
		return v, err
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal stats %s: %s", key, err)
		return v, nil
	}
	if err := s.cache.Set([]byte(key), data, statsCacheExpire); err != nil {
		log.Errorf("failed to cache stats %s: %s", key, err)
	}
	return v, nil
}

func (s *Service) Streak(ctx context.Context) (_ Streak, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := s.tracker.Today()
	return cached(ctx, s, "streak::"+today, func() (Streak, error) {
		sessions, err := s.tracker.WorkoutSessions(ctx, store.Query{To: today})
		if err != nil {
			return Streak{}, err
		}
		steps, err := s.tracker.StepsLogs(ctx, store.Query{To: today})
		if err != nil {
			return Streak{}, err
		}
		return ComputeStreak(ActivityDates(sessions, steps), today)
	})
}

// Adherence scores the last days calendar days; days <= 0 uses the
// configured lookback.
func (s *Service) Adherence(ctx context.Context, days int) (_ Adherence, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.adherence")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if days <= 0 {
		days = s.lookbackDays
	}
	if days > MaxLookbackDays {
		return Adherence{}, apperr.Validation("days must be at most %d", MaxLookbackDays)
	}
	today := s.tracker.Today()
	key := fmt.Sprintf("adherence::%s::%d", today, days)
	return cached(ctx, s, key, func() (Adherence, error) {
		settings, err := s.tracker.SettingsOrDefault(ctx)
		if err != nil {
			return Adherence{}, err
		}
		from, err := calendar.AddDays(today, -(days - 1))
		if err != nil {
			return Adherence{}, err
		}
		sessions, steps, err := s.activity(ctx, store.Query{From: from, To: today})
		if err != nil {
			return Adherence{}, err
		}
		return ComputeAdherence(s.tracker.Resolver(), sessions, steps, AdherenceParams{
			Mode:      settings.Mode,
			WeekStart: settings.GymStartDay,
			Today:     today,
			Days:      days,
		})
	})
}

func (s *Service) WeeklyAdherence(ctx context.Context) (_ WeeklyAdherence, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.adherence.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := s.tracker.Today()
	return cached(ctx, s, "weekly::"+today, func() (WeeklyAdherence, error) {
		settings, err := s.tracker.SettingsOrDefault(ctx)
		if err != nil {
			return WeeklyAdherence{}, err
		}
		weekStart, err := calendar.WeekStart(today, calendar.Monday)
		if err != nil {
			return WeeklyAdherence{}, err
		}
		sessions, steps, err := s.activity(ctx, store.Query{From: weekStart, To: today})
		if err != nil {
			return WeeklyAdherence{}, err
		}
		return ComputeWeeklyAdherence(s.tracker.Resolver(), sessions, steps, settings.Mode, settings.GymStartDay, today)
	})
}

// Trends returns 30 days of weight and waist in the user's units and 14
// days of steps.
func (s *Service) Trends(ctx context.Context) (_ Trends, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.trends")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	today := s.tracker.Today()
	return cached(ctx, s, "trends::"+today, func() (Trends, error) {
		settings, err := s.tracker.SettingsOrDefault(ctx)
		if err != nil {
			return Trends{}, err
		}
		bodyFrom, _ := calendar.AddDays(today, -(max(weightTrendDays, waistTrendDays) - 1))
		body, err := s.tracker.BodyLogs(ctx, store.Query{From: bodyFrom, To: today})
		if err != nil {
			return Trends{}, err
		}
		stepsFrom, _ := calendar.AddDays(today, -(stepsTrendDays - 1))
		steps, err := s.tracker.StepsLogs(ctx, store.Query{From: stepsFrom, To: today})
		if err != nil {
			return Trends{}, err
		}
		stepPoints, err := StepsTrend(steps, today, stepsTrendDays)
		if err != nil {
			return Trends{}, err
		}
		return Trends{
			WeightUnit: settings.WeightUnit,
			Weight:     WeightTrend(body, settings.WeightUnit),
			WaistUnit:  settings.WaistUnit,
			Waist:      WaistTrend(body, settings.WaistUnit),
			Steps:      stepPoints,
		}, nil
	})
}

func (s *Service) activity(ctx context.Context, q store.Query) ([]tracker.WorkoutSession, []tracker.StepsLog, error) {
	sessions, err := s.tracker.WorkoutSessions(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	steps, err := s.tracker.StepsLogs(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	return sessions, steps, nil
}
