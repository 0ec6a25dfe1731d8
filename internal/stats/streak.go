package stats

import (
	"sort"

	"github.com/2beens/fittrack/internal/calendar"
	"github.com/2beens/fittrack/internal/tracker"
)

type Streak struct {
	Current          int    `json:"current"`
	Longest          int    `json:"longest"`
	LastActivityDate string `json:"lastActivityDate,omitempty"`
}

// ComputeStreak counts consecutive activity days. The current streak is
// counted back from today, or from yesterday when nothing is logged today
// yet, so an open day does not break it.
func ComputeStreak(activityDates []string, today string) (Streak, error) {
	if _, err := calendar.ParseISO(today); err != nil {
		return Streak{}, err
	}

	present := make(map[string]struct{}, len(activityDates))
	for _, d := range activityDates {
		if _, err := calendar.ParseISO(d); err != nil {
			return Streak{}, err
		}
		present[d] = struct{}{}
	}
	if len(present) == 0 {
		return Streak{}, nil
	}

	sorted := make([]string, 0, len(present))
	for d := range present {
		sorted = append(sorted, d)
	}
	// ISO dates sort lexically
	sort.Strings(sorted)

	var streak Streak
	streak.LastActivityDate = sorted[len(sorted)-1]

	start := today
	if _, ok := present[today]; !ok {
		start, _ = calendar.AddDays(today, -1)
	}
	for d := start; ; {
		if _, ok := present[d]; !ok {
			break
		}
		streak.Current++
		d, _ = calendar.AddDays(d, -1)
	}

	run := 1
	streak.Longest = 1
	for i := 1; i < len(sorted); i++ {
		gap, _ := calendar.DaysBetween(sorted[i-1], sorted[i])
		if gap == 1 {
			run++
		} else {
			run = 1
		}
		streak.Longest = max(streak.Longest, run)
	}

	return streak, nil
}

// ActivityDates is the set of days with a completed gym session or a met
// step goal, in no particular order.
func ActivityDates(sessions []tracker.WorkoutSession, steps []tracker.StepsLog) []string {
	seen := make(map[string]struct{})
	var dates []string
	add := func(d string) {
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	for _, s := range sessions {
		if s.Status == tracker.StatusCompleted {
			add(s.Date)
		}
	}
	for _, l := range steps {
		if l.GoalMet {
			add(l.Date)
		}
	}
	return dates
}
