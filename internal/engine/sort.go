package engine

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/tartampluch/go-birthfacts/internal/config"
)

// SortEntries orders entries in place by config.SortByDate (next occurrence,
// then name), config.SortByName (case-insensitive) or config.SortByAge.
// Contacts with an unknown birth year sort after every known age when ascending.
// Unknown keys sort by date.
func SortEntries(entries []BirthdayEntry, key string, asc bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		if asc {
			return lessEntry(key, entries[i], entries[j])
		}
		return lessEntry(key, entries[j], entries[i])
	})

	slog.Debug(config.MsgSorted,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeySortCol, key,
		config.LogKeySortAsc, asc)
}

func lessEntry(key string, a, b BirthdayEntry) bool {
	switch key {
	case config.SortByName:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case config.SortByAge:
		if a.YearKnown != b.YearKnown {
			return a.YearKnown
		}
		return a.AgeNext < b.AgeNext
	default:
		if a.NextOccurrence.Equal(b.NextOccurrence) {
			return a.Name < b.Name
		}
		return a.NextOccurrence.Before(b.NextOccurrence)
	}
}
