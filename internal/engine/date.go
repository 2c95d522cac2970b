package engine

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"github.com/tartampluch/go-birthfacts/internal/config"
)

// CalendarDate is a Gregorian (year, month, day) triple.
// The zero value is not a valid date; use IsValid before relying on it.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: int(m), Day: d}
}

// IsValid reports whether the date exists in the proleptic Gregorian calendar.
// Years before 1 are rejected.
func (d CalendarDate) IsValid() bool {
	if d.Year < 1 || d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= int(datetime.DaysInMonth(d.Year, datetime.Month(d.Month)))
}

func (d CalendarDate) String() string {
	return fmt.Sprintf(config.FormatYMD, d.Year, d.Month, d.Day)
}

// key encodes month and day as month*100+day, the format of every boundary table.
func (d CalendarDate) key() int {
	return monthDayKey(d.Month, d.Day)
}

func monthDayKey(month, day int) int {
	return month*config.MonthDayMultiplier + day
}

// time returns midnight UTC of d. UTC has no DST so day arithmetic is exact.
func (d CalendarDate) time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// addMonthsClamped moves d by n months, clamping the day to the end of the
// target month (Jan 31 + 1 month is Feb 28 or 29).
func (d CalendarDate) addMonthsClamped(n int) CalendarDate {
	total := d.Year*12 + (d.Month - 1) + n
	y, m := total/12, total%12+1
	day := d.Day
	if last := int(datetime.DaysInMonth(y, datetime.Month(m))); day > last {
		day = last
	}
	return CalendarDate{Year: y, Month: m, Day: day}
}

func (d CalendarDate) before(o CalendarDate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	return d.key() < o.key()
}
