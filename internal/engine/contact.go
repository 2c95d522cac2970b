package engine

import "time"

// BirthdayEntry represents a contact's birthday and the facts derived from it.
type BirthdayEntry struct {
	// UID is a stable name-based identifier, also used for iCalendar events.
	UID string

	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// DateOfBirth is the original parsed date.
	DateOfBirth time.Time

	// YearKnown indicates if the vCard contained a year or just --MM-DD.
	YearKnown bool

	// NextOccurrence is the calculated date of the birthday for the current or next year.
	// This is the primary sorting key for the "Upcoming Birthdays" view.
	NextOccurrence time.Time

	// AgeNext is the age the person will turn at NextOccurrence.
	// Only valid if YearKnown is true.
	AgeNext int

	// Zodiac is the Western sign, always known.
	Zodiac string

	// Animal is the symbolic animal, empty when the year is unknown or
	// outside the Chinese New Year table.
	Animal string
}
