package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-birthfacts/internal/config"
)

func TestNextOccurrence(t *testing.T) {
	// Reference "Now": June 15th, 2025 (Non-Leap Year)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		birthDate    time.Time
		yearKnown    bool
		expectedDate time.Time
		expectedAge  int
	}{
		{"Earlier this year", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), true, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 36},
		{"Later this year", time.Date(1990, 12, 31, 0, 0, 0, 0, time.UTC), true, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 35},
		{"Today", time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC), true, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), 35},
		{"Year unknown", time.Date(config.DefaultLeapYear, 1, 1, 0, 0, 0, 0, time.UTC), false, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"Leapling in a common year", time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC), true, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, age := nextOccurrence(now, tt.birthDate, tt.yearKnown)
			assert.Equal(t, tt.expectedDate, next)
			assert.Equal(t, tt.expectedAge, age)
		})
	}
}

func TestNextOccurrence_LeapYearContext(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	birthDate := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC)

	next, _ := nextOccurrence(now, birthDate, true)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), next, "Feb 29 exists in 2024")
}

func TestFeed_EmptyIsStub(t *testing.T) {
	ics, err := newFeed(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)).encode()
	assert.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(ics))
}

func TestFeed_SkipsYearsBeforeBirth(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	f := newFeed(now)
	entry := BirthdayEntry{
		UID:         "uid",
		Name:        "Baby",
		DateOfBirth: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		YearKnown:   true,
	}

	var ages []int
	summary := func(_ BirthdayEntry, age int) string {
		ages = append(ages, age)
		return "x"
	}
	assert.True(t, f.add(entry, summary, "", ""), "Born today")
	assert.Equal(t, []int{0, 1}, ages)
	assert.Len(t, f.cal.Children, 2)
}

func TestFindIndex_HintInvariance(t *testing.T) {
	for month := 0; month <= 13; month++ {
		for day := 0; day <= 32; day++ {
			key := monthDayKey(month, day)
			want := FindIndex(key, zodiacBounds[:], -1)
			for hint := -1; hint <= len(zodiacBounds)+2; hint++ {
				assert.Equal(t, want, FindIndex(key, zodiacBounds[:], hint), "key %d hint %d", key, hint)
			}
		}
	}
}

func TestFindIndex_Edges(t *testing.T) {
	bounds := []int{10, 20, 30}
	assert.Equal(t, 0, FindIndex(10, bounds, 0))
	assert.Equal(t, 1, FindIndex(29, bounds, 0))
	assert.Equal(t, NotFound, FindIndex(30, bounds, 1), "The sentinel closes the table")
	assert.Equal(t, NotFound, FindIndex(9, bounds, -1))
	assert.Equal(t, NotFound, FindIndex(10, []int{10}, 0), "A lone sentinel has no bucket")
	assert.Equal(t, NotFound, FindIndex(10, nil, 0))
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		from CalendarDate
		n    int
		want CalendarDate
	}{
		{CalendarDate{2024, 1, 31}, 1, CalendarDate{2024, 2, 29}},
		{CalendarDate{2023, 1, 31}, 1, CalendarDate{2023, 2, 28}},
		{CalendarDate{2023, 11, 15}, 3, CalendarDate{2024, 2, 15}},
		{CalendarDate{2000, 2, 29}, 12, CalendarDate{2001, 2, 28}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.addMonthsClamped(tt.n), "%s + %d months", tt.from, tt.n)
	}
}

func TestElapsed(t *testing.T) {
	y, m, d := elapsed(CalendarDate{1990, 1, 20}, CalendarDate{2025, 6, 15})
	assert.Equal(t, []int{35, 4, 26}, []int{y, m, d})

	y, m, d = elapsed(CalendarDate{2025, 6, 15}, CalendarDate{1990, 1, 20})
	assert.Equal(t, []int{-35, -4, -26}, []int{y, m, d}, "Reversed interval is negated")

	y, m, d = elapsed(CalendarDate{2000, 2, 29}, CalendarDate{2001, 2, 28})
	assert.Equal(t, []int{1, 0, 0}, []int{y, m, d})

	y, m, d = elapsed(CalendarDate{2000, 1, 31}, CalendarDate{2000, 3, 1})
	assert.Equal(t, []int{0, 1, 1}, []int{y, m, d})
}

func TestSortEntries(t *testing.T) {
	day := func(m, d int) time.Time { return time.Date(2025, time.Month(m), d, 0, 0, 0, 0, time.UTC) }
	entries := []BirthdayEntry{
		{Name: "carol", NextOccurrence: day(3, 1), YearKnown: true, AgeNext: 40},
		{Name: "Alice", NextOccurrence: day(1, 5), YearKnown: false},
		{Name: "bob", NextOccurrence: day(1, 5), YearKnown: true, AgeNext: 12},
	}
	names := func() []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = e.Name
		}
		return out
	}

	SortEntries(entries, config.SortByDate, true)
	assert.Equal(t, []string{"Alice", "bob", "carol"}, names())

	SortEntries(entries, config.SortByName, false)
	assert.Equal(t, []string{"carol", "bob", "Alice"}, names())

	SortEntries(entries, config.SortByAge, true)
	assert.Equal(t, []string{"bob", "carol", "Alice"}, names(), "Unknown years sort last")

	SortEntries(entries, "unknown", true)
	assert.Equal(t, []string{"Alice", "bob", "carol"}, names(), "Unknown keys sort by date")
}

func TestLanguageCount_MatchesSelectors(t *testing.T) {
	assert.Equal(t, config.LanguageCount, int(TraditionalChineseAlt))
	assert.Equal(t, TraditionalChineseAlt, Language(config.LanguageCount).Normalize())
	assert.Equal(t, English, Language(config.LanguageCount+1).Normalize())
}
