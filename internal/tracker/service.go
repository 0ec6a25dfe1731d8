package tracker

import (
	"context"
	"time"

	"github.com/2beens/fittrack/internal/calendar"
	"github.com/2beens/fittrack/internal/program"
	"github.com/2beens/fittrack/internal/schedule"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

// Service is the single entry point for reading and writing user data.
// All persistence goes through the store accessor.
type Service struct {
	store    *store.Accessor
	catalog  *program.Catalog
	resolver *schedule.Resolver
	now      func() time.Time
}

func NewService(accessor *store.Accessor, catalog *program.Catalog) *Service {
	return &Service{
		store:    accessor,
		catalog:  catalog,
		resolver: schedule.NewResolver(catalog),
		now:      time.Now,
	}
}

// WithClock replaces the wall clock, for tests and tools that replay a day.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Now() time.Time {
	return s.now()
}

// Today is the local calendar date.
func (s *Service) Today() string {
	return calendar.ToISO(s.now())
}

func (s *Service) Catalog() *program.Catalog {
	return s.catalog
}

func (s *Service) Resolver() *schedule.Resolver {
	return s.resolver
}

// Subscribe forwards to the store accessor so callers can react to writes.
func (s *Service) Subscribe(kind store.Kind, fn func(store.Change)) func() {
	return s.store.Subscribe(kind, fn)
}

// DataVersion moves whenever any record changes, in this process or another.
func (s *Service) DataVersion(ctx context.Context) (int64, error) {
	return s.store.Version(ctx)
}

// Plan is the resolved session for a date under the user's settings.
type Plan struct {
	schedule.DayPlan
	DayLabel  string                `json:"dayLabel"`
	IsGymDay  bool                  `json:"isGymDay"`
	ProgramID string                `json:"programId"`
	Mode      program.Mode          `json:"mode"`
	IsToday   bool                  `json:"isToday"`
	Exercises []program.PlannedSlot `json:"exercises"`
}

// Plan resolves the session scheduled for date. An empty date means today.
func (s *Service) Plan(ctx context.Context, date string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.plan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}
	return s.planFor(settings, date)
}

func (s *Service) planFor(settings *Settings, date string) (*Plan, error) {
	today := s.Today()
	if date == "" {
		date = today
	}

	day, err := s.resolver.Day(settings.Mode, settings.GymStartDay, date)
	if err != nil {
		return nil, err
	}
	p, err := s.catalog.ProgramFor(settings.Mode)
	if err != nil {
		return nil, err
	}
	return &Plan{
		DayPlan:   day,
		DayLabel:  day.Weekday.Name(),
		IsGymDay:  day.Session.GymDay,
		ProgramID: p.ID,
		Mode:      settings.Mode,
		IsToday:   date == today,
		Exercises: s.catalog.Slots(day.Session),
	}, nil
}

// WeekPlan resolves every day of the week containing date.
func (s *Service) WeekPlan(ctx context.Context, date string) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.plan.week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}
	if date == "" {
		date = s.Today()
	}
	days, err := calendar.WeekDays(date, settings.GymStartDay)
	if err != nil {
		return nil, err
	}

	plans := make([]Plan, 0, len(days))
	for _, d := range days {
		p, err := s.planFor(settings, d)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}
	return plans, nil
}
