package engine

import (
	"github.com/tartampluch/go-birthfacts/internal/config"
	"golang.org/x/text/language"
)

// Language selects one of the parallel name tables.
type Language int

const (
	English Language = iota + 1
	SimplifiedChinese
	TraditionalChinese
	// SimplifiedChineseAlt uses the alternative zodiac names and
	// Earthly Branch prefixed animal names.
	SimplifiedChineseAlt
	TraditionalChineseAlt
)

// languageCount sizes the name tables.
const languageCount = config.LanguageCount

// Normalize clamps an unknown selector to English.
func (l Language) Normalize() Language {
	if l < English || l > TraditionalChineseAlt {
		return English
	}
	return l
}

// Tag returns the BCP 47 tag of the selector's script.
func (l Language) Tag() language.Tag {
	switch l.Normalize() {
	case SimplifiedChinese, SimplifiedChineseAlt:
		return language.SimplifiedChinese
	case TraditionalChinese, TraditionalChineseAlt:
		return language.TraditionalChinese
	default:
		return language.English
	}
}

func (l Language) index() int {
	return int(l.Normalize()) - 1
}
