package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-birthfacts/internal/config"
	"github.com/tartampluch/go-birthfacts/internal/engine"
)

// Report gathers every fact about one birth date.
type Report struct {
	Today engine.CalendarDate
	Birth engine.CalendarDate

	// Zodiac and Animal are rendered in English and, when different, in the
	// selected language.
	Zodiac      []string
	Animal      []string
	AnimalKnown bool

	Age           engine.Interval // Years only
	AgeYMD        engine.Interval
	DaysLived     int
	DaysSinceLast int
	DaysToNext    int
}

// BuildReport computes the facts of birth as seen from cal's today.
func BuildReport(cal *engine.Calendar, birth engine.CalendarDate, lang engine.Language) (Report, error) {
	r := Report{Today: cal.Today(), Birth: birth}

	for _, l := range displayLanguages(lang) {
		z, err := engine.Zodiac(birth.Month, birth.Day, l)
		if err != nil {
			return Report{}, err
		}
		r.Zodiac = append(r.Zodiac, z)

		a, ok, err := engine.Animal(birth, l)
		if err != nil {
			return Report{}, err
		}
		r.AnimalKnown = ok
		if ok {
			r.Animal = append(r.Animal, a)
		}
	}

	var err error
	if r.Age, _, err = cal.Age(birth, engine.AgeYears); err != nil {
		return Report{}, err
	}
	if r.AgeYMD, _, err = cal.Age(birth, engine.AgeYMD); err != nil {
		return Report{}, err
	}
	days, _, err := cal.Age(birth, engine.AgeDays)
	if err != nil {
		return Report{}, err
	}
	r.DaysLived = days.TotalDays

	if r.DaysSinceLast, err = cal.DaysToBirthday(birth.Month, birth.Day, engine.CountFromLast); err != nil {
		return Report{}, err
	}
	if r.DaysToNext, err = cal.DaysToBirthday(birth.Month, birth.Day, engine.CountToNext); err != nil {
		return Report{}, err
	}
	return r, nil
}

// displayLanguages lists English first, then lang when it is another one.
func displayLanguages(lang engine.Language) []engine.Language {
	if lang = lang.Normalize(); lang == engine.English {
		return []engine.Language{engine.English}
	}
	return []engine.Language{engine.English, lang}
}

// RenderReport writes r, one fact per line.
func (t *Translator) RenderReport(w io.Writer, r Report) error {
	heading := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	p := &printer{w: w}

	p.line(heading.Render(t.text(config.TKeyToday, map[string]any{"Date": r.Today})))
	p.line(heading.Render(t.text(config.TKeyBirthday, map[string]any{"Date": r.Birth})))
	p.blank()

	p.line(t.text(config.TKeyZodiac, map[string]any{"Value": joinNames(r.Zodiac)}))
	animal := t.Msg(config.TKeyOutOfRange)
	if r.AnimalKnown {
		animal = joinNames(r.Animal)
	}
	p.line(t.text(config.TKeyAnimal, map[string]any{"Value": animal}))
	p.blank()

	p.line(t.text(config.TKeyAge, map[string]any{"Years": r.Age.Years}))
	p.line(t.text(config.TKeyAgeYMD, map[string]any{
		"Years":  r.AgeYMD.Years,
		"Months": r.AgeYMD.Months,
		"Days":   r.AgeYMD.Days,
	}))
	p.line(t.text(config.TKeyDaysLived, map[string]any{"Days": r.DaysLived}))
	p.blank()

	p.line(t.text(config.TKeyDaysSinceLast, map[string]any{"Days": r.DaysSinceLast}))
	p.line(t.text(config.TKeyDaysToNext, map[string]any{"Days": r.DaysToNext}))
	return p.err
}

// text localizes key, falling back to the key followed by its data.
func (t *Translator) text(key string, data map[string]any) string {
	msg, ok := t.Localize(key, data)
	if !ok && len(data) > 0 {
		return fmt.Sprintf("%s %v", key, data)
	}
	return msg
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			if n == names[i-1] {
				continue
			}
			out += " "
		}
		out += n
	}
	return out
}

// printer keeps the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) blank() {
	p.line("")
}
