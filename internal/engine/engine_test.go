package engine_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-birthfacts/internal/config"
	"github.com/tartampluch/go-birthfacts/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func newGenerator(now time.Time) *engine.Generator {
	return &engine.Generator{
		Calendar: engine.NewCalendar(MockClock{CurrentTime: now}),
		Language: engine.English,
	}
}

func generate(t *testing.T, gen *engine.Generator, vcf, reminder string) (string, []engine.BirthdayEntry, int) {
	t.Helper()
	ics, contacts, count, err := gen.Generate(context.Background(), strings.NewReader(vcf), reminder)
	require.NoError(t, err)
	return string(ics), contacts, count
}

func card(name, bday string) string {
	return "BEGIN:VCARD\nVERSION:3.0\nFN:" + name + "\nBDAY:" + bday + "\nEND:VCARD\n"
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestRun_LocalFile_Success(t *testing.T) {
	// Scenario: A vCard file with one contact having a birthday today.
	path := filepath.Join(t.TempDir(), "contacts.vcf")
	require.NoError(t, os.WriteFile(path, []byte(card("John Doe", "2000-01-01")), 0o600))

	gen := newGenerator(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	icsData, contacts, count, err := gen.Run(context.Background(), engine.ExportConfig{LocalPath: path})

	require.NoError(t, err)
	assert.Equal(t, 1, count, "Should identify one birthday today")

	require.Len(t, contacts, 1)
	assert.Equal(t, "John Doe", contacts[0].Name)
	assert.Equal(t, 25, contacts[0].AgeNext)
	assert.Equal(t, "Capricorn", contacts[0].Zodiac)
	// Jan 1 2000 is before Chinese New Year (Feb 5): still the Hare year.
	assert.Equal(t, "Hare", contacts[0].Animal)

	icsStr := string(icsData)
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: John Doe")
}

func TestRun_Errors(t *testing.T) {
	gen := newGenerator(time.Now())

	_, _, _, err := gen.Run(context.Background(), engine.ExportConfig{})
	assert.Error(t, err, "Empty path must be rejected")

	_, _, _, err = gen.Run(context.Background(), engine.ExportConfig{
		LocalPath: filepath.Join(t.TempDir(), "missing.vcf"),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerate_LeapYear_EdgeCase(t *testing.T) {
	// 2025 is not a leap year: Feb 29 is celebrated on March 1st.
	gen := newGenerator(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	_, contacts, count := generate(t, gen, card("Leap Baby", "2000-02-29"), "")

	assert.Equal(t, 1, count)
	require.Len(t, contacts, 1)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), contacts[0].NextOccurrence)
	assert.Equal(t, "Pisces", contacts[0].Zodiac)
}

func TestGenerate_ContactListNextOccurrence(t *testing.T) {
	vcf := card("Past Birthday", "1990-01-01") +
		card("Future Birthday", "1990-12-31") +
		card("Today Birthday", "1990-06-01")

	gen := newGenerator(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	_, contacts, _ := generate(t, gen, vcf, "")
	require.Len(t, contacts, 3)

	byName := make(map[string]engine.BirthdayEntry)
	for _, c := range contacts {
		byName[c.Name] = c
	}

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), byName["Past Birthday"].NextOccurrence)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), byName["Future Birthday"].NextOccurrence)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), byName["Today Birthday"].NextOccurrence)
	assert.Equal(t, 35, byName["Today Birthday"].AgeNext)
}

func TestGenerate_Facts(t *testing.T) {
	vcf := card("Dragon", "2000-02-05") + card("No Year", "--10-25") + card("Too Old", "1850-07-01")

	gen := newGenerator(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	gen.Language = engine.SimplifiedChinese
	_, contacts, _ := generate(t, gen, vcf, "")
	require.Len(t, contacts, 3)

	assert.Equal(t, "水瓶座", contacts[0].Zodiac)
	assert.Equal(t, "龙", contacts[0].Animal)

	assert.False(t, contacts[1].YearKnown)
	assert.Equal(t, "天蝎座", contacts[1].Zodiac)
	assert.Empty(t, contacts[1].Animal, "Unknown year has no animal")

	assert.Equal(t, "巨蟹座", contacts[2].Zodiac)
	assert.Empty(t, contacts[2].Animal, "Year outside the Chinese New Year table")
}

func TestGenerate_StableUID(t *testing.T) {
	gen := newGenerator(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	vcf := card("Ada", "1815-12-10") + card("Alan", "1912-06-23")

	_, first, _ := generate(t, gen, vcf, "")
	_, second, _ := generate(t, gen, vcf, "")

	require.Len(t, first, 2)
	assert.Equal(t, first[0].UID, second[0].UID, "UID must survive a regeneration")
	assert.NotEqual(t, first[0].UID, first[1].UID)
}

func TestGenerate_Description(t *testing.T) {
	gen := newGenerator(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	gen.FormatDescription = func(zodiac, animal string) string {
		return zodiac + " / " + animal
	}

	icsStr, _, _ := generate(t, gen, card("Desc", "1990-08-10"), "")
	assert.Contains(t, icsStr, "DESCRIPTION:Leo / Horse")
}

func TestGenerate_WithReminders(t *testing.T) {
	gen := newGenerator(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	icsStr, _, _ := generate(t, gen, card("Alarm Test", "1990-01-01"), "-P1D")

	assert.Contains(t, icsStr, "BEGIN:VALARM", "ICS should contain an alarm component")
	assert.Contains(t, icsStr, "TRIGGER:-P1D", "Alarm trigger should match configuration")
	assert.Contains(t, icsStr, "ACTION:DISPLAY", "Alarm action should be DISPLAY")
}

func TestGenerate_YearRange(t *testing.T) {
	// Events are generated for the previous, current and next year.
	gen := newGenerator(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	icsStr, _, _ := generate(t, gen, card("Range Test", "1990-12-31"), "")

	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20241231")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20251231")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20261231")
	assert.Equal(t, 3, strings.Count(icsStr, "BEGIN:VEVENT"))
}

func TestGenerate_BabyBornThisYear(t *testing.T) {
	gen := newGenerator(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	gen.FormatSummary = func(name string, age int, yearKnown bool) string {
		if age == 0 {
			return fmt.Sprintf("Birthday: %s (Birth)", name)
		}
		return fmt.Sprintf("Birthday: %s (%d)", name, age)
	}

	icsStr, _, _ := generate(t, gen, card("Baby", "2025-05-01"), "")

	assert.NotContains(t, icsStr, "DTSTART;VALUE=DATE:20240501", "No event before birth")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: Baby (Birth)")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: Baby (1)")
	assert.Equal(t, 2, strings.Count(icsStr, "BEGIN:VEVENT"))
}

func TestGenerate_FutureBirth(t *testing.T) {
	gen := newGenerator(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	icsStr, contacts, _ := generate(t, gen, card("Future Baby", "2027-01-01"), "")

	assert.NotContains(t, icsStr, "BEGIN:VEVENT")
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR", "An empty feed is still a calendar")
	assert.Len(t, contacts, 1)
}

func TestGenerate_DateFormats_TableDriven(t *testing.T) {
	tests := []struct {
		name      string
		bdayValue string
		expectEvt bool
	}{
		{"ISO8601 Standard", "1990-10-25", true},
		{"Basic Format", "19901025", true},
		{"RFC3339", "1990-10-25T00:00:00Z", true},
		{"Slash", "1990/10/25", true},
		{"Dotted", "25.10.1990", true},
		{"Truncated (Month-Day)", "--10-25", true},
		{"Truncated Basic", "--1025", true},
		{"Garbage Data", "not-a-date", false},
		{"Empty Date", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newGenerator(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
			ics, _, _, _ := gen.Generate(context.Background(), strings.NewReader(card("Test", tt.bdayValue)), "")

			if tt.expectEvt {
				assert.Contains(t, string(ics), "BEGIN:VEVENT")
			} else {
				assert.NotContains(t, string(ics), "BEGIN:VEVENT", "Invalid date should be skipped silently")
			}
		})
	}
}

func TestParseDate_NoYearKeepsLeapDay(t *testing.T) {
	d, yearKnown, err := engine.ParseDate("--02-29")
	require.NoError(t, err)
	assert.False(t, yearKnown)
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 29, d.Day())
}

func TestGenerate_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := newGenerator(time.Now())
	_, _, _, err := gen.Generate(ctx, strings.NewReader(card("X", "1990-01-01")), "")

	assert.ErrorIs(t, err, context.Canceled)
}

// failingReader returns its error on every read.
type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestGenerate_ReadErrorStops(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	diskErr := errors.New("disk error")

	gen := newGenerator(time.Now())
	_, contacts, _, err := gen.Generate(ctx, failingReader{err: diskErr}, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, diskErr)
	assert.NotErrorIs(t, err, context.DeadlineExceeded, "A failing reader must end the read")
	assert.Contains(t, err.Error(), config.ErrVCardRead)
	assert.Nil(t, contacts)
}

func TestRun_Directory(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	gen := newGenerator(time.Now())
	_, _, _, err := gen.Run(ctx, engine.ExportConfig{LocalPath: t.TempDir()})

	require.Error(t, err)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), config.ErrVCardRead)
}

func TestGenerate_MalformedCardSkipped(t *testing.T) {
	vcf := "BEGIN:VCALENDAR\nEND:VCALENDAR\n" + card("Ada", "1990-08-10")

	gen := newGenerator(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	_, contacts, _ := generate(t, gen, vcf, "")

	require.Len(t, contacts, 1, "Syntax errors skip the card, not the stream")
	assert.Equal(t, "Ada", contacts[0].Name)
}
