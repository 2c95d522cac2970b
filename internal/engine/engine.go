package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
	"github.com/tartampluch/go-birthfacts/internal/config"
)

// uidNamespace scopes the name-based UUIDs of contacts and events.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(config.ICalUIDNamespace))

// ExportConfig contains the parameters of a calendar generation.
type ExportConfig struct {
	LocalPath       string // Path to the .vcf file
	ReminderTrigger string // ISO8601 duration string (e.g., "-P1D"), empty for none
}

// Generator turns a vCard address book into birthday entries and an iCalendar feed.
type Generator struct {
	Calendar *Calendar // Source of "today".
	Language Language  // Language of zodiac and animal names.

	// FormatSummary renders the event title. Nil uses config.FallbackSummary.
	FormatSummary func(name string, age int, yearKnown bool) string

	// FormatDescription renders the event description from the sign and the
	// animal (empty when unknown). Nil leaves events without a description.
	FormatDescription func(zodiac, animal string) string
}

// Run opens the vCard file at cfg.LocalPath and generates its feed.
// It returns the ICS data, the contacts with a birthday, the number of
// birthdays today, and any error.
func (g *Generator) Run(ctx context.Context, cfg ExportConfig) ([]byte, []BirthdayEntry, int, error) {
	if cfg.LocalPath == "" {
		return nil, nil, 0, errors.New(config.ErrFileRequired)
	}
	f, err := os.Open(cfg.LocalPath)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrVCardOpen, err)
	}
	defer func() { _ = f.Close() }() // Read-only file

	return g.Generate(ctx, f, cfg.ReminderTrigger)
}

// Generate reads every card of r, then renders one feed with the birthdays
// of last year, this year and next year.
func (g *Generator) Generate(ctx context.Context, r io.Reader, reminderTrigger string) ([]byte, []BirthdayEntry, int, error) {
	start := time.Now()
	slog.InfoContext(ctx, config.MsgGenStarted, config.LogKeyComponent, config.CompEngine)

	now := g.calendar().Clock.Now()
	entries, scanned, err := g.readEntries(ctx, r, now)
	if err != nil {
		return nil, nil, 0, err
	}

	f := newFeed(now)
	today := 0
	for _, e := range entries {
		var description string
		if g.FormatDescription != nil {
			description = g.FormatDescription(e.Zodiac, e.Animal)
		}
		if f.add(e, g.summary, description, reminderTrigger) {
			today++
			slog.Info(config.MsgBdayToday,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyName, e.Name,
				config.LogKeyDOB, e.DateOfBirth.Format(config.DateFormatFullDash))
		}
	}

	ics, err := f.encode()
	if err != nil {
		return nil, nil, 0, err
	}

	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, scanned),
			slog.Int(config.LogKeyFound, len(entries)),
			slog.Int(config.LogKeyToday, today),
		),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return ics, entries, today, nil
}

func (g *Generator) calendar() *Calendar {
	if g.Calendar == nil {
		return NewCalendar(nil)
	}
	return g.Calendar
}

func (g *Generator) summary(e BirthdayEntry, age int) string {
	if g.FormatSummary == nil {
		return fmt.Sprintf(config.FallbackSummary, e.Name)
	}
	return g.FormatSummary(e.Name, age, e.YearKnown)
}

// readEntries decodes r card by card and keeps the contacts with a parseable
// BDAY. Malformed cards are logged and skipped; a failure of r itself ends
// the read. scanned counts the decoded cards.
func (g *Generator) readEntries(ctx context.Context, r io.Reader, now time.Time) (entries []BirthdayEntry, scanned int, err error) {
	src := &sourceReader{r: r}
	dec := vcard.NewDecoder(src)
	for {
		if err := ctx.Err(); err != nil {
			return nil, scanned, err
		}

		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return entries, scanned, nil
		}
		if src.err != nil {
			return nil, scanned, fmt.Errorf("%s: %w", config.ErrVCardRead, src.err)
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}
		scanned++

		if e, ok := g.entryOf(card, now); ok {
			entries = append(entries, e)
		}
	}
}

// sourceReader keeps the first non-EOF error of r. vcard.Decoder returns
// read errors and syntax errors alike, and only the latter are recoverable.
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && s.err == nil {
		s.err = err
	}
	return n, err
}

func (g *Generator) entryOf(card vcard.Card, now time.Time) (BirthdayEntry, bool) {
	field := card.Get(config.VCardBDAY)
	if field == nil || field.Value == "" {
		return BirthdayEntry{}, false
	}
	birth, yearKnown, err := ParseDate(field.Value)
	if err != nil {
		slog.Debug(config.MsgSkippedDate,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyValue, field.Value)
		return BirthdayEntry{}, false
	}
	return g.buildEntry(displayName(card), birth, yearKnown, now), true
}

// displayName prefers the formatted name (FN) over the structured one (N).
func displayName(card vcard.Card) string {
	for _, key := range []string{config.VCardFN, config.VCardN} {
		if f := card.Get(key); f != nil && f.Value != "" {
			return f.Value
		}
	}
	return config.FallbackName
}

// buildEntry derives every displayable fact of a contact.
func (g *Generator) buildEntry(name string, birth time.Time, yearKnown bool, now time.Time) BirthdayEntry {
	next, ageNext := nextOccurrence(now, birth, yearKnown)

	dob := DateOf(birth)
	// A parsed date always has a valid month and day.
	zodiac, _ := Zodiac(dob.Month, dob.Day, g.Language)

	var animal string
	if yearKnown {
		if a, ok, err := Animal(dob, g.Language); err == nil && ok {
			animal = a
		}
	}

	// Same name and date, same UID: calendar clients update instead of duplicating.
	uidInput := fmt.Sprintf(config.FormatUIDInput, name, birth.Format(time.RFC3339))
	return BirthdayEntry{
		UID:            uuid.NewSHA1(uidNamespace, []byte(uidInput)).String(),
		Name:           name,
		DateOfBirth:    birth,
		YearKnown:      yearKnown,
		NextOccurrence: next,
		AgeNext:        ageNext,
		Zodiac:         zodiac,
		Animal:         animal,
	}
}

// nextOccurrence returns the first birthday on or after now's date and the
// age turned that day (0 when the year is unknown). Feb 29 becomes Mar 1 in
// common years.
func nextOccurrence(now time.Time, birth time.Time, yearKnown bool) (time.Time, int) {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	next := time.Date(now.Year(), birth.Month(), birth.Day(), 0, 0, 0, 0, loc)
	if next.Before(today) {
		next = time.Date(now.Year()+1, birth.Month(), birth.Day(), 0, 0, 0, 0, loc)
	}

	if !yearKnown {
		return next, 0
	}
	return next, next.Year() - birth.Year()
}

// ParseDate handles the vCard date formats and the layouts accepted on the
// command line. yearKnown is false for --MM-DD values, which are placed in a
// leap year so that --02-29 survives.
func ParseDate(value string) (t time.Time, yearKnown bool, err error) {
	for _, layout := range []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
		config.DateFormatSlash,
		config.DateFormatDotted,
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true, nil
		}
	}

	for _, layout := range []string{config.DateFormatNoYearD, config.DateFormatNoYearB} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), false, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("%s: %q", config.ErrDateParse, value)
}
