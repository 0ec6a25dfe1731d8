// Package reminders decides which in-app reminder banners are due. It only
// computes them; delivering notifications is left to the UI.
package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/calendar"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/tracker"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

type Kind string

const (
	KindWorkout Kind = "workout"
	KindSteps   Kind = "steps"
	KindWeighIn Kind = "weigh-in"
)

// Action is the banner's call to action: a button label and the client
// route it opens.
type Action struct {
	Label string `json:"label"`
	To    string `json:"to"`
}

type Banner struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  Action `json:"action"`
}

const (
	routeWorkout = "/workout"
	routeMetrics = "/metrics"
)

// Day is what is known about today when deciding on banners.
type Day struct {
	Now         time.Time
	Weekday     calendar.Weekday
	IsGymDay    bool
	SessionName string
	// HasSession is true once a workout was started, finished or skipped.
	HasSession bool
	Steps      int
	HasBodyLog bool
}

// Due returns the banners for day, in display order. Nothing is due when
// notifications are disabled.
func Due(settings *tracker.Settings, day Day) []Banner {
	banners := []Banner{}
	if !settings.NotificationsEnabled {
		return banners
	}

	if day.IsGymDay && !day.HasSession && reached(day.Now, settings.NotifyWorkoutTime) {
		banners = append(banners, Banner{
			Kind:    KindWorkout,
			Title:   "Gym session today",
			Message: fmt.Sprintf("Your %s session is scheduled. Time to train!", day.SessionName),
			Action:  Action{Label: "Start workout", To: routeWorkout},
		})
	}
	if day.Steps < settings.StepGoalPerDay && reached(day.Now, settings.NotifyStepsTime) {
		banners = append(banners, Banner{
			Kind:  KindSteps,
			Title: "Step goal",
			Message: fmt.Sprintf("You've walked %s / %s steps today.",
				humanize.Comma(int64(day.Steps)), humanize.Comma(int64(settings.StepGoalPerDay))),
			Action: Action{Label: "Log steps", To: routeMetrics},
		})
	}
	if day.Weekday == settings.NotifyWeighInDay && !day.HasBodyLog {
		banners = append(banners, Banner{
			Kind:    KindWeighIn,
			Title:   "Weekly weigh-in",
			Message: "Log your weight and waist measurement to track your trend.",
			Action:  Action{Label: "Log measurements", To: routeMetrics},
		})
	}
	return banners
}

// reached reports whether the wall clock of now is at or past clock (HH:mm).
// An unparsable clock never fires.
func reached(now time.Time, clock string) bool {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		log.Warnf("invalid reminder time %q: %s", clock, err)
		return false
	}
	return now.Hour()*60+now.Minute() >= t.Hour()*60+t.Minute()
}

type Service struct {
	tracker *tracker.Service
}

func NewService(tr *tracker.Service) *Service {
	return &Service{tracker: tr}
}

// Banners gathers today's records and returns the due banners. Before
// onboarding there are none.
func (s *Service) Banners(ctx context.Context) (_ []Banner, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reminders.banners")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	settings, err := s.tracker.Settings(ctx)
	if apperr.IsNotFound(err) {
		return []Banner{}, nil
	}
	if err != nil {
		return nil, err
	}
	if !settings.NotificationsEnabled {
		return []Banner{}, nil
	}

	plan, err := s.tracker.Plan(ctx, "")
	if err != nil {
		return nil, err
	}
	day := Day{
		Now:         s.tracker.Now(),
		Weekday:     plan.Weekday,
		IsGymDay:    plan.IsGymDay,
		SessionName: plan.Session.Name,
	}

	today := plan.Date
	if _, err := s.tracker.Workout(ctx, today); err == nil {
		day.HasSession = true
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}
	if steps, err := s.tracker.StepsLog(ctx, today); err == nil {
		day.Steps = steps.Steps
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}
	if _, err := s.tracker.BodyLog(ctx, today); err == nil {
		day.HasBodyLog = true
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	return Due(settings, day), nil
}
