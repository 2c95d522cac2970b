package engine

import (
	"log/slog"

	"github.com/tartampluch/go-birthfacts/internal/config"
)

// cnyDates holds the Gregorian date of Chinese New Year for every year from
// 1876 to 2163 as month*100+day. Index 0 is 1876; each row is one 12-year
// animal cycle starting with a Rat year.
var cnyDates = [config.CNYLastYear - config.CNYFirstYear + 1]int{
	126, 213, 202, 122, 210, 130, 218, 208, 128, 215, 204, 124, // 1876
	212, 131, 121, 209, 130, 217, 206, 126, 213, 202, 122, 210, // 1888
	131, 219, 208, 129, 216, 204, 125, 213, 202, 122, 210, 130, // 1900
	218, 206, 126, 214, 204, 123, 211, 201, 220, 208, 128, 216, // 1912
	205, 124, 213, 202, 123, 210, 130, 217, 206, 126, 214, 204, // 1924
	124, 211, 131, 219, 208, 127, 215, 205, 125, 213, 202, 122, // 1936
	210, 129, 217, 206, 127, 214, 203, 124, 212, 131, 218, 208, // 1948
	128, 215, 205, 125, 213, 202, 121, 209, 130, 217, 206, 127, // 1960
	215, 203, 123, 211, 131, 218, 207, 128, 216, 205, 125, 213, // 1972
	202, 220, 209, 129, 217, 206, 127, 215, 204, 123, 210, 131, // 1984
	219, 207, 128, 216, 205, 124, 212, 201, 122, 209, 129, 218, // 1996
	207, 126, 214, 203, 123, 210, 131, 219, 208, 128, 216, 205, // 2008
	125, 212, 201, 122, 210, 129, 217, 206, 126, 213, 203, 123, // 2020
	211, 131, 219, 208, 128, 215, 204, 124, 212, 201, 122, 210, // 2032
	130, 217, 206, 126, 214, 202, 123, 211, 201, 219, 208, 128, // 2044
	215, 204, 124, 212, 202, 121, 209, 129, 217, 205, 126, 214, // 2056
	203, 123, 211, 131, 219, 207, 127, 215, 205, 124, 212, 202, // 2068
	122, 209, 129, 217, 206, 126, 214, 203, 124, 210, 130, 218, // 2080
	207, 127, 215, 205, 125, 212, 201, 121, 209, 129, 217, 207, // 2092
	128, 215, 204, 124, 212, 131, 219, 208, 129, 216, 206, 126, // 2104
	214, 202, 122, 210, 130, 217, 207, 127, 215, 203, 123, 211, // 2116
	201, 219, 208, 129, 217, 205, 125, 213, 202, 122, 210, 130, // 2128
	218, 207, 127, 215, 204, 123, 211, 201, 220, 208, 129, 216, // 2140
	205, 125, 212, 202, 123, 210, 130, 218, 207, 126, 214, 203, // 2152
}

// CNYDate returns the month and day of Chinese New Year in year.
// ok is false when year is outside the table (1876..2163).
func CNYDate(year int) (month, day int, ok bool) {
	v, ok := cnyKey(year)
	if !ok {
		return 0, 0, false
	}
	return v / config.MonthDayMultiplier, v % config.MonthDayMultiplier, true
}

func cnyKey(year int) (int, bool) {
	if year < config.CNYFirstYear || year > config.CNYLastYear {
		return 0, false
	}
	return cnyDates[year-config.CNYFirstYear], true
}

// PassedCNY reports whether (month, day) is on or after Chinese New Year of year.
//
// Any date after February has passed. For a year outside the table the answer
// is also true so that animal indexing stays on the Gregorian year; the
// fallback is logged at debug level.
func PassedCNY(year, month, day int) bool {
	if month > config.LatestCNYMonth {
		return true
	}
	key, ok := cnyKey(year)
	if !ok {
		slog.Debug(config.MsgCNYOutOfRange,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyYear, year)
		return true
	}
	return monthDayKey(month, day) >= key
}
