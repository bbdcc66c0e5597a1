package nationalid

import (
	"fmt"
	"regexp"
	"time"
)

// Length is the number of digits in a National ID.
const Length = 14

var nationalIDPattern = regexp.MustCompile(`^[0-9]{14}$`)

// NationalID is a format-validated Egyptian National ID.
//
// Invariants:
//   - Exactly 14 characters
//   - ASCII digits only
//
// A NationalID is not necessarily decodable: century, date and governorate
// are checked by Extract.
type NationalID struct {
	value string
}

// ParseNationalID validates the format of raw. It does not trim whitespace.
func ParseNationalID(raw string) (NationalID, error) {
	if !nationalIDPattern.MatchString(raw) {
		return NationalID{}, newError(InvalidFormat, "", "invalid national ID: must be exactly 14 digits")
	}
	return NationalID{value: raw}, nil
}

// MustNationalID creates a NationalID, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustNationalID(raw string) NationalID {
	id, err := ParseNationalID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the 14-digit value.
func (n NationalID) String() string {
	return n.value
}

// IsZero returns true if this is the zero value (uninitialized).
func (n NationalID) IsZero() bool {
	return n.value == ""
}

// BirthDigits returns the century, year, month and day digits.
func (n NationalID) BirthDigits() string {
	return n.value[0:7]
}

// Century returns the century indicator digit.
func (n NationalID) Century() int {
	return digit(n.value[0])
}

// Year returns the two-digit year within the century.
func (n NationalID) Year() int {
	return twoDigits(n.value[1:3])
}

// Month returns the month digits as written, without range checks.
func (n NationalID) Month() int {
	return twoDigits(n.value[3:5])
}

// Day returns the day digits as written, without range checks.
func (n NationalID) Day() int {
	return twoDigits(n.value[5:7])
}

// GovernorateCode returns the two-digit governorate code.
func (n NationalID) GovernorateCode() string {
	return n.value[7:9]
}

// Sequence returns the three-digit registration sequence.
func (n NationalID) Sequence() string {
	return n.value[9:12]
}

// GenderDigit returns the parity digit encoding gender.
func (n NationalID) GenderDigit() int {
	return digit(n.value[12])
}

// CheckDigit returns the trailing check digit.
func (n NationalID) CheckDigit() int {
	return digit(n.value[13])
}

// BirthDate is a calendar date decoded from an ID.
type BirthDate struct {
	Year  int
	Month int
	Day   int
}

// Time returns the date at midnight UTC.
func (b BirthDate) Time() time.Time {
	return time.Date(b.Year, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (b BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", b.Year, b.Month, b.Day)
}

// Gender is the holder's gender as encoded by the parity digit.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ExtractedInfo is everything decoded from a single ID.
type ExtractedInfo struct {
	BirthDate   BirthDate
	Governorate string
	Gender      Gender
}

func digit(b byte) int {
	return int(b - '0')
}
