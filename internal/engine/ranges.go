package engine

// YearsByAge converts an age range into the birth-year range of people
// having their birthday on (month, day). The ages are reordered so that
// age1 >= age2, hence year1 <= year2.
//
// While this year's birthday is still ahead, a person of a given age was born
// one year earlier. Age 0 is never shifted.
func (c *Calendar) YearsByAge(age1, age2, month, day int) (year1, year2 int) {
	if age1 < age2 {
		age1, age2 = age2, age1
	}
	thisYear := c.Today().Year
	reached := c.HasPassedThisYear(month, day-1)

	year1, year2 = thisYear-age1, thisYear-age2
	if !reached {
		if age1 > 0 {
			year1--
		}
		if age2 > 0 {
			year2--
		}
	}
	return year1, year2
}

// AnimalYearsByRange lists, in ascending order, the years Y in [year1, year2]
// (reordered if needed) for which someone born on (Y, month, day) has the
// animal index. A (month, day) before Chinese New Year belongs to the animal
// year that started the previous January or February.
func AnimalYearsByRange(index, year1, year2, month, day int) []int {
	if year1 > year2 {
		year1, year2 = year2, year1
	}
	var years []int
	for y := year1; y <= year2; y++ {
		if animalIndexOf(y, month, day) == index {
			years = append(years, y)
		}
	}
	return years
}

// AnimalYearsByAge combines YearsByAge and AnimalYearsByRange.
func (c *Calendar) AnimalYearsByAge(index, age1, age2, month, day int) []int {
	year1, year2 := c.YearsByAge(age1, age2, month, day)
	return AnimalYearsByRange(index, year1, year2, month, day)
}
