package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-birthfacts/internal/config"
	"github.com/tartampluch/go-birthfacts/internal/engine"
)

var errAnimalIndex = errors.New(config.ErrAnimalIndex)

// YearsQuery is the input of the animal-years search. Every field is optional;
// Age1Set and Age2Set tell a missing age from an explicit zero.
type YearsQuery struct {
	Animal  int
	Age1    int
	Age2    int
	Age1Set bool
	Age2Set bool
	Month   int
	Day     int
}

// Normalize fills the missing fields: a single age is used for both ends,
// ages are clamped to [0, config.MaxAgeInput], and a month or day that does
// not exist falls back to January or the 1st. Only the animal index is
// checked strictly.
func (q YearsQuery) Normalize() (YearsQuery, error) {
	if q.Animal < 0 || q.Animal >= config.AnimalCycle {
		return q, fmt.Errorf("%w: %d", errAnimalIndex, q.Animal)
	}

	if !q.Age2Set {
		q.Age2 = 0
	}
	if q.Age1Set {
		if q.Age2 == 0 {
			q.Age2 = q.Age1
		}
	} else {
		q.Age1 = q.Age2
	}
	q.Age1 = clampAge(q.Age1)
	q.Age2 = clampAge(q.Age2)
	q.Age1Set, q.Age2Set = true, true

	if q.Month < 1 || q.Month > 12 {
		q.Month = config.DefaultMonth
	}
	if !(engine.CalendarDate{Year: config.DefaultLeapYear, Month: q.Month, Day: q.Day}).IsValid() {
		q.Day = config.DefaultDay
	}
	return q, nil
}

func clampAge(age int) int {
	return max(0, min(age, config.MaxAgeInput))
}

// YearsResult is the answer to a normalized YearsQuery.
type YearsResult struct {
	Query    YearsQuery
	Today    engine.CalendarDate
	FromYear int
	ToYear   int
	Years    []int
}

// BuildYears normalizes q and runs the range queries against cal.
func BuildYears(cal *engine.Calendar, q YearsQuery) (YearsResult, error) {
	q, err := q.Normalize()
	if err != nil {
		return YearsResult{}, err
	}
	from, to := cal.YearsByAge(q.Age1, q.Age2, q.Month, q.Day)
	return YearsResult{
		Query:    q,
		Today:    cal.Today(),
		FromYear: from,
		ToYear:   to,
		Years:    cal.AnimalYearsByAge(q.Animal, q.Age1, q.Age2, q.Month, q.Day),
	}, nil
}

// RenderYears writes the search parameters, the birth-year range and the
// matching animal years.
func (t *Translator) RenderYears(w io.Writer, r YearsResult) error {
	heading := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	p := &printer{w: w}

	p.line(heading.Render(t.text(config.TKeyToday, map[string]any{"Date": r.Today})))
	p.line(t.text(config.TKeyAgeRange, map[string]any{"From": r.Query.Age1, "To": r.Query.Age2}))
	p.line(t.text(config.TKeyAnchor, map[string]any{"Month": r.Query.Month, "Day": r.Query.Day}))
	p.blank()

	p.line(t.text(config.TKeyYearRange, map[string]any{"From": r.FromYear, "To": r.ToYear}))

	years := t.Msg(config.TKeyNone)
	if len(r.Years) > 0 {
		parts := make([]string, len(r.Years))
		for i, y := range r.Years {
			parts[i] = fmt.Sprint(y)
		}
		years = strings.Join(parts, " ")
	}
	p.line(t.text(config.TKeyAnimalYears, map[string]any{
		"Animal": engine.AnimalName(r.Query.Animal, t.Lang),
		"Years":  years,
	}))
	return p.err
}
