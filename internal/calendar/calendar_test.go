package calendar

import (
	"testing"
	"time"

	"github.com/2beens/fittrack/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndFormatISO(t *testing.T) {
	d, err := ParseISO("2026-02-03")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, "2026-02-03", ToISO(d))

	_, err = ParseISO("03/02/2026")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.False(t, IsValidISO("2026-13-01"))
	assert.True(t, IsValidISO("2024-02-29"))

	// the calendar day is taken in the time's own location
	loc := time.FixedZone("UTC+14", 14*60*60)
	late := time.Date(2026, 1, 1, 23, 30, 0, 0, time.UTC).In(loc)
	assert.Equal(t, "2026-01-02", ToISO(late))
}

func TestWeekdayOf(t *testing.T) {
	for iso, want := range map[string]Weekday{
		"2026-10-12": Monday,
		"2026-10-13": Tuesday,
		"2026-10-14": Wednesday,
		"2026-10-15": Thursday,
		"2026-10-16": Friday,
		"2026-10-17": Saturday,
		"2026-10-18": Sunday,
	} {
		got, err := WeekdayOf(iso)
		require.NoError(t, err)
		assert.Equal(t, want, got, iso)
	}
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, 0, Monday.Index())
	assert.Equal(t, 6, Sunday.Index())
	assert.Equal(t, -1, Weekday("XYZ").Index())
	assert.Equal(t, "Wednesday", Wednesday.Name())
	assert.Equal(t, "Wed", Wednesday.Short())

	for _, in := range []string{"MON", "mon", "Monday", " monday "} {
		d, err := ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, Monday, d)
	}
	for _, in := range []string{"", "mo", "Mond", "funday"} {
		_, err := ParseWeekday(in)
		assert.ErrorIs(t, err, apperr.ErrValidation, in)
	}

	assert.Equal(t, Sunday, FromTimeWeekday(time.Sunday))
	assert.Equal(t, Monday, FromTimeWeekday(time.Monday))
	assert.Equal(t, Saturday, FromTimeWeekday(time.Saturday))
}

func TestAddDaysAndLastNDays(t *testing.T) {
	d, err := AddDays("2026-03-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", d)

	d, err = AddDays("2024-12-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", d)

	days, err := LastNDays("2026-01-02", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-12-30", "2025-12-31", "2026-01-01", "2026-01-02"}, days)

	days, err = LastNDays("2026-01-02", 0)
	require.NoError(t, err)
	assert.Empty(t, days)

	between, err := DaysBetween("2026-01-30", "2026-02-02")
	require.NoError(t, err)
	assert.Equal(t, 3, between)
}

func TestWeekStart(t *testing.T) {
	start, err := WeekStart("2026-10-18", Monday) // sunday
	require.NoError(t, err)
	assert.Equal(t, "2026-10-12", start)

	start, err = WeekStart("2026-10-12", Monday)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-12", start)

	start, err = WeekStart("2026-10-14", Sunday)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-11", start)

	_, err = WeekStart("2026-10-14", "NOPE")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	days, err := WeekDays("2026-10-15", Monday)
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, "2026-10-12", days[0])
	assert.Equal(t, "2026-10-18", days[6])
}

func TestDisplayHelpers(t *testing.T) {
	s, err := FormatDayFull("2025-02-03")
	require.NoError(t, err)
	assert.Equal(t, "Monday, 3 Feb", s)

	s, err = FormatDateShort("2025-02-03")
	require.NoError(t, err)
	assert.Equal(t, "3 Feb", s)

	s, err = FormatMonthYear("2025-02-03")
	require.NoError(t, err)
	assert.Equal(t, "Feb 2025", s)

	assert.Equal(t, "45s", FormatDuration(45))
	assert.Equal(t, "12 min", FormatDuration(12*60+5))
	assert.Equal(t, "2 h", FormatDuration(2*3600))
	assert.Equal(t, "2 h 15 min", FormatDuration(2*3600+15*60))

	left, err := DaysUntil("2026-03-18", "2026-03-20")
	require.NoError(t, err)
	assert.Equal(t, 2, left)
	left, err = DaysUntil("2026-03-25", "2026-03-20")
	require.NoError(t, err)
	assert.Equal(t, 0, left)
}
