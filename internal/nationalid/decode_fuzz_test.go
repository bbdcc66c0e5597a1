package nationalid

import (
	"regexp"
	"testing"
)

var fourteenDigits = regexp.MustCompile(`^[0-9]{14}$`)

// FuzzExtract checks that decoding never panics and that the result is
// consistent with the format and field rules for any input.
func FuzzExtract(f *testing.F) {
	f.Add("29902150112305")
	f.Add("30002290112315")
	f.Add("29902300112305")
	f.Add("19902150112305")
	f.Add("29902159912305")
	f.Add("")
	f.Add("٢٩٩٠٢١٥٠١١٢٣٠٥")
	f.Add("2990215011230\x00")

	f.Fuzz(func(t *testing.T, input string) {
		info, err := Extract(input)

		if !fourteenDigits.MatchString(input) {
			if kind, _ := KindOf(err); kind != InvalidFormat {
				t.Fatalf("expected invalid_format for %q, got %v", input, err)
			}
			return
		}
		if err != nil {
			if _, ok := KindOf(err); !ok {
				t.Fatalf("unclassified error for %q: %v", input, err)
			}
			if info != (ExtractedInfo{}) {
				t.Fatalf("partial result returned with error for %q", input)
			}
			return
		}

		b := info.BirthDate
		if b.Time().Format("2006-01-02") != b.String() {
			t.Fatalf("decoded date %s does not exist on the calendar", b)
		}
		if info.Governorate == "" {
			t.Fatalf("empty governorate for %q", input)
		}
		if want := DecodeGender(digit(input[12])); info.Gender != want {
			t.Fatalf("gender %s, want %s", info.Gender, want)
		}
	})
}
