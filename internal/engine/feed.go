package engine

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-birthfacts/internal/config"
)

// feed accumulates the all-day birthday events of one VCALENDAR.
type feed struct {
	cal   *ical.Calendar
	stamp *ical.Prop
	now   time.Time
}

func newFeed(now time.Time) *feed {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986
	refresh := ical.NewProp(config.PropRefresh)
	refresh.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refresh)

	// DTSTAMP is an instant; event dates stay local calendar dates.
	stamp := ical.NewProp(config.PropDTStamp)
	stamp.SetDateTime(now.UTC())

	return &feed{cal: cal, stamp: stamp, now: now}
}

// add appends one event per year from last year to next year, skipping the
// years before birth, and reports whether one of them falls today.
// An empty description is omitted; an empty trigger adds no alarm.
func (f *feed) add(e BirthdayEntry, summary func(BirthdayEntry, int) string, description, trigger string) (today bool) {
	born := e.DateOfBirth
	for y := f.now.Year() - 1; y <= f.now.Year()+1; y++ {
		if e.YearKnown && y < born.Year() {
			continue
		}
		age := 0
		if e.YearKnown {
			age = y - born.Year()
		}

		date := time.Date(y, born.Month(), born.Day(), 0, 0, 0, 0, f.now.Location())
		if sameDay(date, f.now) {
			today = true
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, e.UID, y, config.ICalDomain))
		event.Props.Set(f.stamp)

		title := summary(e, age)
		event.Props.SetText(config.PropSummary, title)
		if description != "" {
			event.Props.SetText(config.PropDescription, description)
		}

		start := ical.NewProp(config.PropDTStart)
		start.SetDate(date)
		event.Props.Set(start)

		if trigger != "" {
			event.Children = append(event.Children, displayAlarm(trigger, title))
		}
		f.cal.Children = append(f.cal.Children, event.Component)
	}
	return today
}

// encode renders the feed. A feed without events is the minimal valid
// VCALENDAR, which ical.Encoder would reject.
func (f *feed) encode() ([]byte, error) {
	if len(f.cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}
	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(f.cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// displayAlarm builds a VALARM notification firing at trigger.
func displayAlarm(trigger, text string) *ical.Component {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, text)

	// Raw value: SetText would add VALUE=TEXT.
	prop := ical.NewProp(config.PropTrigger)
	prop.Value = trigger
	alarm.Props.Set(prop)
	return alarm
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
