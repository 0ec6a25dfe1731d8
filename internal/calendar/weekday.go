package calendar

import (
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/apperr"
)

type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
	Sunday    Weekday = "SUN"
)

// Week lists the weekdays in canonical order, MON first.
var Week = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayNames = map[Weekday]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// Index returns the canonical position of d (MON=0 .. SUN=6), -1 if unknown.
func (d Weekday) Index() int {
	for i, w := range Week {
		if w == d {
			return i
		}
	}
	return -1
}

func (d Weekday) IsValid() bool {
	return d.Index() >= 0
}

// Name is the full English day name, e.g. "Monday".
func (d Weekday) Name() string {
	return weekdayNames[d]
}

// Short is the title-cased three letter label, e.g. "Mon".
func (d Weekday) Short() string {
	if !d.IsValid() {
		return ""
	}
	s := string(d)
	return s[:1] + strings.ToLower(s[1:])
}

// ParseWeekday accepts labels like "MON", "mon" or "Monday".
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 3 {
		d := Weekday(strings.ToUpper(s[:3]))
		if d.IsValid() && (len(s) == 3 || strings.EqualFold(s, d.Name())) {
			return d, nil
		}
	}
	return "", apperr.Validation("invalid weekday %q", s)
}

func FromTimeWeekday(wd time.Weekday) Weekday {
	// time.Weekday counts from Sunday
	return Week[(int(wd)+6)%7]
}
