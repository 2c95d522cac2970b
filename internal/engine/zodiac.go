package engine

// zodiacBounds holds the first day of each sign as month*100+day.
// Bucket 0 (Jan 1..19) and bucket 12 (Dec 22..31) are both Capricorn;
// 1232 closes the last bucket.
var zodiacBounds = [...]int{101, 120, 219, 321, 420, 521, 621, 723, 823, 923, 1023, 1122, 1222, 1232}

var zodiacNames = [languageCount][len(zodiacBounds) - 1]string{
	{"Capricorn", "Aquarius", "Pisces", "Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo", "Libra", "Scorpio", "Sagittarius", "Capricorn"},
	{"摩羯座", "水瓶座", "双鱼座", "牡羊座", "金牛座", "双子座", "巨蟹座", "狮子座", "处女座", "天秤座", "天蝎座", "射手座", "摩羯座"},
	{"摩羯座", "水瓶座", "雙魚座", "牡羊座", "金牛座", "雙子座", "巨蟹座", "獅子座", "處女座", "天秤座", "天蠍座", "射手座", "摩羯座"},
	{"山羊座", "水瓶座", "双鱼座", "白羊座", "金牛座", "双子座", "巨蟹座", "狮子座", "处女座", "天秤座", "天蝎座", "人马座", "山羊座"},
	{"山羊座", "水瓶座", "雙魚座", "白羊座", "金牛座", "雙子座", "巨蟹座", "獅子座", "處女座", "天秤座", "天蠍座", "人馬座", "山羊座"},
}

const opZodiac = "zodiac"

// Zodiac returns the Western zodiac sign of (month, day) in lang.
//
// The month seeds the search hint. Only keys outside the table (month 0,
// month 13, Jan 0...) are rejected; full calendar validation is left to the
// operations that take a year.
func Zodiac(month, day int, lang Language) (string, error) {
	i := FindIndex(monthDayKey(month, day), zodiacBounds[:], month-1)
	if i == NotFound {
		return "", invalidDate(opZodiac, "", CalendarDate{Month: month, Day: day})
	}
	return zodiacNames[lang.index()][i], nil
}
