package nationalid

import "time"

// AgeAt returns the number of full years between birth and now. A birthday
// that has not yet occurred in now's year does not count. Birth dates after
// now yield 0.
//
// For someone born on 29 February, the birthday is taken to occur on
// 1 March in non-leap years.
func AgeAt(birth BirthDate, now time.Time) int {
	age := now.Year() - birth.Year
	m, d := int(now.Month()), now.Day()
	if m < birth.Month || (m == birth.Month && d < birth.Day) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
