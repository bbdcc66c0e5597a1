package nationalid

import (
	"fmt"
	"time"
)

// DecodeBirthDate decodes the first seven digits of an ID (century, year,
// month, day).
//
// Dates that do not exist on the calendar, such as 30 February or
// 29 February in a non-leap year, are rejected rather than rolled over
// into the following month.
func DecodeBirthDate(digits string) (BirthDate, error) {
	if len(digits) != 7 || !allDigits(digits) {
		return BirthDate{}, newError(InvalidFormat, digits, "invalid birth date digits: must be exactly 7 digits")
	}

	var base int
	switch digits[0] {
	case '2':
		base = 1900
	case '3':
		base = 2000
	default:
		c := digits[0:1]
		return BirthDate{}, newError(InvalidCentury, c, fmt.Sprintf("invalid century digit %q: must be 2 or 3", c))
	}

	b := BirthDate{
		Year:  base + twoDigits(digits[1:3]),
		Month: twoDigits(digits[3:5]),
		Day:   twoDigits(digits[5:7]),
	}
	if b.Month < 1 || b.Month > 12 || b.Day < 1 || b.Day > 31 {
		return BirthDate{}, invalidDate(b)
	}

	t := b.Time()
	if t.Month() != time.Month(b.Month) || t.Day() != b.Day {
		return BirthDate{}, invalidDate(b)
	}
	return b, nil
}

// DecodeGender maps the parity digit to a gender: odd is male, even is female.
func DecodeGender(d int) Gender {
	if d%2 == 0 {
		return GenderFemale
	}
	return GenderMale
}

// Extract validates raw and decodes every field. Checks run in order
// (format, birth date, governorate) and the first failure is returned with
// no partial result.
func Extract(raw string) (ExtractedInfo, error) {
	id, err := ParseNationalID(raw)
	if err != nil {
		return ExtractedInfo{}, err
	}
	return ExtractFrom(id)
}

// ExtractFrom decodes an already format-validated ID.
func ExtractFrom(id NationalID) (ExtractedInfo, error) {
	if id.IsZero() {
		return ExtractedInfo{}, newError(InvalidFormat, "", "invalid national ID: must be exactly 14 digits")
	}
	birth, err := DecodeBirthDate(id.BirthDigits())
	if err != nil {
		return ExtractedInfo{}, err
	}
	gov, err := LookupGovernorate(id.GovernorateCode())
	if err != nil {
		return ExtractedInfo{}, err
	}
	return ExtractedInfo{
		BirthDate:   birth,
		Governorate: gov,
		Gender:      DecodeGender(id.GenderDigit()),
	}, nil
}

func invalidDate(b BirthDate) *Error {
	s := b.String()
	return newError(InvalidDate, s, fmt.Sprintf("invalid birth date %s", s))
}

func twoDigits(s string) int {
	return digit(s[0])*10 + digit(s[1])
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
