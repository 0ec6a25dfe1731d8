package calendar

import (
	"fmt"
)

// FormatDayFull renders e.g. "Monday, 3 Feb".
func FormatDayFull(iso string) (string, error) {
	t, err := ParseISO(iso)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s, %d %s", t.Weekday(), t.Day(), t.Format("Jan")), nil
}

// FormatDateShort renders e.g. "3 Feb".
func FormatDateShort(iso string) (string, error) {
	t, err := ParseISO(iso)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %s", t.Day(), t.Format("Jan")), nil
}

// FormatMonthYear renders e.g. "Feb 2025".
func FormatMonthYear(iso string) (string, error) {
	t, err := ParseISO(iso)
	if err != nil {
		return "", err
	}
	return t.Format("Jan 2006"), nil
}

// FormatDuration renders seconds as "45s", "12 min", "2 h" or "2 h 15 min".
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	mins := seconds / 60
	if mins < 60 {
		return fmt.Sprintf("%d min", mins)
	}
	h, m := mins/60, mins%60
	if m == 0 {
		return fmt.Sprintf("%d h", h)
	}
	return fmt.Sprintf("%d h %d min", h, m)
}

// DaysUntil returns the days left until end, 0 when end already passed.
func DaysUntil(today, end string) (int, error) {
	days, err := DaysBetween(today, end)
	if err != nil {
		return 0, err
	}
	return max(0, days), nil
}
