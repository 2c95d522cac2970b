package engine

import "github.com/tartampluch/go-birthfacts/internal/config"

var animalNames = [languageCount][config.AnimalCycle]string{
	{"Rat", "Ox", "Tiger", "Hare", "Dragon", "Snake", "Horse", "Sheep", "Monkey", "Rooster", "Dog", "Boar"},
	{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"},
	{"鼠", "牛", "虎", "兔", "龍", "蛇", "馬", "羊", "猴", "雞", "狗", "豬"},
	// Earthly Branch + animal.
	{"子鼠", "丑牛", "寅虎", "卯兔", "辰龙", "巳蛇", "午马", "未羊", "申猴", "酉鸡", "戌狗", "亥猪"},
	{"子鼠", "丑牛", "寅虎", "卯兔", "辰龍", "巳蛇", "午馬", "未羊", "申猴", "酉雞", "戌狗", "亥豬"},
}

const opAnimal = "animal"

// AnimalIndex returns the symbolic animal of d as an index in [0, 11]
// (0 is the Rat, 1900 is a Rat year).
// The animal year starts at Chinese New Year, not on January 1.
func AnimalIndex(d CalendarDate) (int, error) {
	if !d.IsValid() {
		return 0, invalidDate(opAnimal, "", d)
	}
	return animalIndexOf(d.Year, d.Month, d.Day), nil
}

// animalIndexOf skips date validation; range scans call it with a fixed
// (month, day) that may not exist in every year (Feb 29).
func animalIndexOf(year, month, day int) int {
	offset := year - config.EpochYear
	if !PassedCNY(year, month, day) {
		offset--
	}
	i := offset % config.AnimalCycle
	if i < 0 {
		i += config.AnimalCycle
	}
	return i
}

// AnimalName renders an animal index in lang. The index is taken modulo 12.
func AnimalName(index int, lang Language) string {
	i := index % config.AnimalCycle
	if i < 0 {
		i += config.AnimalCycle
	}
	return animalNames[lang.index()][i]
}

// Animal returns the symbolic animal name of d.
//
// An invalid date is an error. A valid date whose year is outside the
// Chinese New Year table is not: ok is false and the name is empty.
func Animal(d CalendarDate, lang Language) (name string, ok bool, err error) {
	if !d.IsValid() {
		return "", false, invalidDate(opAnimal, "", d)
	}
	if d.Year < config.CNYFirstYear || d.Year > config.CNYLastYear {
		return "", false, nil
	}
	return AnimalName(animalIndexOf(d.Year, d.Month, d.Day), lang), true, nil
}
