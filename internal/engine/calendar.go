package engine

import (
	"time"

	cerrors "cloudeng.io/errors"
	"github.com/tartampluch/go-birthfacts/internal/config"
)

const (
	opCountDays      = "countDays"
	opAge            = "age"
	opDaysToBirthday = "daysToBirthday"
)

// AgeOption selects the form of an Age result.
type AgeOption int

const (
	AgeYears AgeOption = iota // whole years
	AgeYMD                    // years, months and days
	AgeDays                   // total days
)

// BirthdayCount selects the direction of DaysToBirthday.
type BirthdayCount int

const (
	// CountToNext counts forward to the next birthday (0 on the birthday).
	CountToNext BirthdayCount = iota
	// CountFromLast counts back to the previous birthday. On the birthday
	// itself the previous one is last year's. Any non-zero value counts back.
	CountFromLast
)

// Interval is an elapsed time between a birth date and today.
// Only the fields selected by the AgeOption are set; they all carry the
// same sign, negative for a birth date in the future.
type Interval struct {
	Years     int
	Months    int
	Days      int
	TotalDays int
}

// Calendar answers the questions that depend on the current date.
// It is safe for concurrent use as long as its Clock is.
type Calendar struct {
	Clock Clock
}

// NewCalendar returns a Calendar reading today from clock.
// A nil clock uses the system clock.
func NewCalendar(clock Clock) *Calendar {
	if clock == nil {
		clock = RealClock{}
	}
	return &Calendar{Clock: clock}
}

// Today returns the current date in the clock's location.
func (c *Calendar) Today() CalendarDate {
	return DateOf(c.Clock.Now())
}

// HasPassedThisYear reports whether today is strictly after (month, day).
// (month, day) is compared as month*100+day and need not be a real date,
// which lets callers ask about "the day before" with day-1 == 0.
func (c *Calendar) HasPassedThisYear(month, day int) bool {
	return c.Today().key() > monthDayKey(month, day)
}

// CountDays returns the signed number of days from from to to.
// Every invalid side is reported.
func CountDays(from, to CalendarDate) (int, error) {
	errs := &cerrors.M{}
	if !from.IsValid() {
		errs.Append(invalidDate(opCountDays, config.ErrDateStart, from))
	}
	if !to.IsValid() {
		errs.Append(invalidDate(opCountDays, config.ErrDateEnd, to))
	}
	if err := errs.Err(); err != nil {
		return 0, err
	}
	return daysBetween(from, to), nil
}

// daysBetween works on Unix seconds: time.Duration saturates after ~292 years.
func daysBetween(from, to CalendarDate) int {
	return int((to.time().Unix() - from.time().Unix()) / int64(24*time.Hour/time.Second))
}

// Age returns the interval between d and today in the form selected by opt.
// ok is false for an unknown option; an invalid d is an error.
func (c *Calendar) Age(d CalendarDate, opt AgeOption) (Interval, bool, error) {
	if !d.IsValid() {
		return Interval{}, false, invalidDate(opAge, "", d)
	}
	today := c.Today()

	switch opt {
	case AgeYears:
		y, _, _ := elapsed(d, today)
		return Interval{Years: y}, true, nil
	case AgeYMD:
		y, m, days := elapsed(d, today)
		return Interval{Years: y, Months: m, Days: days}, true, nil
	case AgeDays:
		return Interval{TotalDays: daysBetween(d, today)}, true, nil
	default:
		return Interval{}, false, nil
	}
}

// elapsed decomposes to - from into years, months and days, negated when to
// precedes from.
func elapsed(from, to CalendarDate) (years, months, days int) {
	if to.before(from) {
		y, m, d := elapsed(to, from)
		return -y, -m, -d
	}
	total := (to.Year-from.Year)*12 + to.Month - from.Month
	if to.before(from.addMonthsClamped(total)) {
		total--
	}
	days = daysBetween(from.addMonthsClamped(total), to)
	return total / 12, total % 12, days
}

// DaysToBirthday counts the days between today and the next (CountToNext)
// or the previous (CountFromLast) occurrence of (month, day). The result is
// never negative. Feb 29 is celebrated on Mar 1 in common years.
func (c *Calendar) DaysToBirthday(month, day int, opt BirthdayCount) (int, error) {
	ref := CalendarDate{Year: config.DefaultLeapYear, Month: month, Day: day}
	if !ref.IsValid() {
		return 0, invalidDate(opDaysToBirthday, "", ref)
	}
	today := c.Today()

	if opt == CountToNext {
		next := occurrence(today.Year, month, day)
		if next.before(today) {
			next = occurrence(today.Year+1, month, day)
		}
		return daysBetween(today, next), nil
	}

	last := occurrence(today.Year, month, day)
	if !last.before(today) {
		last = occurrence(today.Year-1, month, day)
	}
	return daysBetween(last, today), nil
}

// occurrence relies on time.Date normalization: Feb 29 of a common year is Mar 1.
func occurrence(year, month, day int) CalendarDate {
	return DateOf(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}
