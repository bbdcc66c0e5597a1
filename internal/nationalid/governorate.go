package nationalid

import (
	"fmt"
	"sort"
)

// governorates maps the two-digit code at positions 7-8 to a display name.
// Never mutated after init.
var governorates = map[string]string{
	"01": "Cairo",
	"02": "Alexandria",
	"03": "Port Said",
	"04": "Suez",
	"11": "Damietta",
	"12": "Dakahlia",
	"13": "Al Sharqia",
	"14": "Kaliobeya",
	"15": "Kafr El-Sheikh",
	"16": "Al Gharbia",
	"17": "Al Monoufia",
	"18": "Al Beheira",
	"19": "Ismailia",
	"21": "Giza",
	"22": "Beni Suef",
	"23": "Fayoum",
	"24": "Al Menia",
	"25": "Assiut",
	"26": "Sohag",
	"27": "Qena",
	"28": "Aswan",
	"29": "Luxor",
	"31": "Red Sea",
	"32": "New Valley",
	"33": "Matrouh",
	"34": "North Sinai",
	"35": "South Sinai",
	"88": "Foreign",
}

var governorateCodes = func() []string {
	codes := make([]string, 0, len(governorates))
	for code := range governorates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}()

// LookupGovernorate returns the display name for a two-digit code.
func LookupGovernorate(code string) (string, error) {
	name, ok := governorates[code]
	if !ok {
		return "", newError(InvalidGovernorate, code, fmt.Sprintf("invalid governorate code %q", code))
	}
	return name, nil
}

// GovernorateCodes returns every known code in ascending order. The slice is
// a copy and may be modified by the caller.
func GovernorateCodes() []string {
	out := make([]string, len(governorateCodes))
	copy(out, governorateCodes)
	return out
}
