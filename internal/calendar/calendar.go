// Package calendar holds the date helpers every other package relies on.
// Dates travel through the system as ISO "YYYY-MM-DD" strings, which sort
// lexicographically in chronological order.
package calendar

import (
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/apperr"
)

const ISOLayout = "2006-01-02"

// ParseISO parses a "YYYY-MM-DD" date into midnight UTC of that day.
func ParseISO(iso string) (time.Time, error) {
	t, err := time.Parse(ISOLayout, iso)
	if err != nil {
		return time.Time{}, apperr.Validation("invalid date %q, expected YYYY-MM-DD", iso)
	}
	return t, nil
}

// ToISO formats the calendar day of t in t's own location.
func ToISO(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func IsValidISO(iso string) bool {
	_, err := time.Parse(ISOLayout, iso)
	return err == nil
}

// WeekdayOf returns the weekday label of an ISO date.
func WeekdayOf(iso string) (Weekday, error) {
	t, err := ParseISO(iso)
	if err != nil {
		return "", err
	}
	return FromTimeWeekday(t.Weekday()), nil
}

// AddDays shifts an ISO date by n days (n may be negative).
func AddDays(iso string, n int) (string, error) {
	t, err := ParseISO(iso)
	if err != nil {
		return "", err
	}
	return ToISO(t.AddDate(0, 0, n)), nil
}

// DaysBetween returns the number of whole days from a to b.
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseISO(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseISO(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}

// LastNDays returns the n days ending with today (inclusive), oldest first.
func LastNDays(today string, n int) ([]string, error) {
	t, err := ParseISO(today)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return []string{}, nil
	}
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, ToISO(t.AddDate(0, 0, -i)))
	}
	return days, nil
}

// WeekStart returns the first day of the week containing iso, where weeks
// begin on startDay.
func WeekStart(iso string, startDay Weekday) (string, error) {
	wd, err := WeekdayOf(iso)
	if err != nil {
		return "", err
	}
	if !startDay.IsValid() {
		return "", apperr.Validation("invalid week start day %q", startDay)
	}
	back := (wd.Index() - startDay.Index() + 7) % 7
	return AddDays(iso, -back)
}

// WeekDays returns the 7 ISO dates of the week containing iso.
func WeekDays(iso string, startDay Weekday) ([]string, error) {
	start, err := WeekStart(iso, startDay)
	if err != nil {
		return nil, err
	}
	days := make([]string, 7)
	for i := range days {
		if days[i], err = AddDays(start, i); err != nil {
			return nil, err
		}
	}
	return days, nil
}
