package engine

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-birthfacts/internal/config"
)

// ErrInvalidDate is wrapped by every DateError.
var ErrInvalidDate = errors.New(config.ErrInvalidDate)

// DateError reports a date that is not a valid Gregorian calendar date.
type DateError struct {
	// Op is the operation that rejected the date (e.g. "countDays").
	Op string
	// Side names the offending argument when an operation takes two dates.
	Side string
	Date CalendarDate
}

func (e *DateError) Error() string {
	if e.Side != "" {
		return fmt.Sprintf("%s: %s %s %s", e.Op, config.ErrInvalidDate, e.Side, e.Date)
	}
	return fmt.Sprintf("%s: %s %s", e.Op, config.ErrInvalidDate, e.Date)
}

func (e *DateError) Unwrap() error {
	return ErrInvalidDate
}

func invalidDate(op, side string, d CalendarDate) error {
	return &DateError{Op: op, Side: side, Date: d}
}
