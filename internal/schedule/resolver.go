package schedule

import (
	"github.com/2beens/fittrack/internal/apperr"
	"github.com/2beens/fittrack/internal/calendar"
	"github.com/2beens/fittrack/internal/program"
)

// Resolver maps calendar dates to the session templates scheduled for them.
// It is pure: the result depends only on mode, week start and date.
type Resolver struct {
	catalog *program.Catalog
}

func NewResolver(catalog *program.Catalog) *Resolver {
	return &Resolver{
		catalog: catalog,
	}
}

// DayPlan is the resolved session for one date.
type DayPlan struct {
	Date    string                  `json:"date"`
	Weekday calendar.Weekday        `json:"weekday"`
	Session program.SessionTemplate `json:"session"`
}

// ResolveSession returns the session scheduled for date when the weekly cycle
// begins on weekStart. Templates are authored Monday first, so a different
// week start rotates the canonical mapping.
func (r *Resolver) ResolveSession(mode program.Mode, weekStart calendar.Weekday, date string) (program.SessionTemplate, error) {
	p, err := r.catalog.ProgramFor(mode)
	if err != nil {
		return program.SessionTemplate{}, err
	}

	wd, err := calendar.WeekdayOf(date)
	if err != nil {
		return program.SessionTemplate{}, err
	}
	offset := weekStart.Index() - calendar.Monday.Index()
	if offset < 0 {
		return program.SessionTemplate{}, apperr.Validation("invalid week start day %q", weekStart)
	}

	slot := (wd.Index() - offset + 7) % 7
	return p.Session(p.Schedule[slot])
}

func (r *Resolver) Day(mode program.Mode, weekStart calendar.Weekday, date string) (DayPlan, error) {
	s, err := r.ResolveSession(mode, weekStart, date)
	if err != nil {
		return DayPlan{}, err
	}
	wd, _ := calendar.WeekdayOf(date)
	return DayPlan{
		Date:    date,
		Weekday: wd,
		Session: s,
	}, nil
}

// Week resolves all 7 days of the week containing date, starting at weekStart.
func (r *Resolver) Week(mode program.Mode, weekStart calendar.Weekday, date string) ([]DayPlan, error) {
	days, err := calendar.WeekDays(date, weekStart)
	if err != nil {
		return nil, err
	}
	plans := make([]DayPlan, 0, len(days))
	for _, d := range days {
		plan, err := r.Day(mode, weekStart, d)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
