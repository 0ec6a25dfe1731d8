package stats

import (
	"math"

	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/calendar"
	"github.com/2beens/fittrack/internal/program"
	"github.com/2beens/fittrack/internal/schedule"
	"github.com/2beens/fittrack/internal/tracker"
)

type Adherence struct {
	From              string `json:"from"`
	To                string `json:"to"`
	CompletedGym      int    `json:"completedGym"`
	ScheduledGym      int    `json:"scheduledGym"`
	CompletedSteps    int    `json:"completedSteps"`
	ScheduledStepDays int    `json:"scheduledStepDays"`
	Percentage        int    `json:"percentage"`
}

// AdherenceParams describes the window and plan adherence is measured against.
type AdherenceParams struct {
	Mode      program.Mode
	WeekStart calendar.Weekday
	Today     string
	Days      int
}

// ComputeAdherence scores the Days calendar days ending with Today. Gym
// days count when a completed session exists, step days when the logged
// count met its goal, rest days are left out.
func ComputeAdherence(
	resolver *schedule.Resolver,
	sessions []tracker.WorkoutSession,
	steps []tracker.StepsLog,
	p AdherenceParams,
) (Adherence, error) {
	if p.Days <= 0 {
		return Adherence{}, apperr.Validation("lookback days must be positive")
	}
	if p.Days > MaxLookbackDays {
		return Adherence{}, apperr.Validation("lookback days must be at most %d", MaxLookbackDays)
	}
	days, err := calendar.LastNDays(p.Today, p.Days)
	if err != nil {
		return Adherence{}, err
	}
	return adherenceOver(resolver, sessions, steps, p.Mode, p.WeekStart, days)
}

func adherenceOver(
	resolver *schedule.Resolver,
	sessions []tracker.WorkoutSession,
	steps []tracker.StepsLog,
	mode program.Mode,
	weekStart calendar.Weekday,
	days []string,
) (Adherence, error) {
	completed := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		if s.Status == tracker.StatusCompleted {
			completed[s.Date] = true
		}
	}
	goalMet := make(map[string]bool, len(steps))
	for _, l := range steps {
		goalMet[l.Date] = l.GoalMet
	}

	var a Adherence
	if len(days) > 0 {
		a.From, a.To = days[0], days[len(days)-1]
	}
	for _, d := range days {
		session, err := resolver.ResolveSession(mode, weekStart, d)
		if err != nil {
			return Adherence{}, err
		}
		switch {
		case session.GymDay:
			a.ScheduledGym++
			if completed[d] {
				a.CompletedGym++
			}
		case session.IsStepDay():
			a.ScheduledStepDays++
			if goalMet[d] {
				a.CompletedSteps++
			}
		}
	}
	a.Percentage = percentage(a.CompletedGym+a.CompletedSteps, a.ScheduledGym+a.ScheduledStepDays)
	return a, nil
}

func percentage(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

type WeeklyAdherence struct {
	WeekStart    string `json:"weekStart"`
	GymScheduled int    `json:"gymScheduled"`
	GymCompleted int    `json:"gymCompleted"`
	StepDays     int    `json:"stepDays"`
	StepGoalMet  int    `json:"stepGoalMet"`
	Percentage   int    `json:"percentage"`
}

// ComputeWeeklyAdherence scores the Monday-anchored week containing today,
// up to and including today. Days still ahead are not due yet. weekStart
// only rotates which session each day resolves to.
func ComputeWeeklyAdherence(
	resolver *schedule.Resolver,
	sessions []tracker.WorkoutSession,
	steps []tracker.StepsLog,
	mode program.Mode,
	weekStart calendar.Weekday,
	today string,
) (WeeklyAdherence, error) {
	week, err := calendar.WeekDays(today, calendar.Monday)
	if err != nil {
		return WeeklyAdherence{}, err
	}
	due := make([]string, 0, len(week))
	for _, d := range week {
		if d <= today {
			due = append(due, d)
		}
	}

	a, err := adherenceOver(resolver, sessions, steps, mode, weekStart, due)
	if err != nil {
		return WeeklyAdherence{}, err
	}
	return WeeklyAdherence{
		WeekStart:    week[0],
		GymScheduled: a.ScheduledGym,
		GymCompleted: a.CompletedGym,
		StepDays:     a.ScheduledStepDays,
		StepGoalMet:  a.CompletedSteps,
		Percentage:   a.Percentage,
	}, nil
}
