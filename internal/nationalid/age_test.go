package nationalid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	birth := BirthDate{Year: 1999, Month: 2, Day: 15}
	at := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day before birthday", at(2025, time.February, 14), 25},
		{"on birthday", at(2025, time.February, 15), 26},
		{"after birthday", at(2025, time.December, 1), 26},
		{"earlier month", at(2025, time.January, 31), 25},
		{"day of birth", at(1999, time.February, 15), 0},
		{"before birth", at(1990, time.January, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeAt(birth, tt.now))
		})
	}

	t.Run("leap day birthday counts from 1 March", func(t *testing.T) {
		leap := BirthDate{Year: 2000, Month: 2, Day: 29}
		assert.Equal(t, 24, AgeAt(leap, at(2025, time.February, 28)))
		assert.Equal(t, 25, AgeAt(leap, at(2025, time.March, 1)))
		assert.Equal(t, 24, AgeAt(leap, at(2024, time.February, 29)))
	})
}

func TestBirthDateFormatting(t *testing.T) {
	b := BirthDate{Year: 2005, Month: 1, Day: 9}
	assert.Equal(t, "2005-01-09", b.String())
	assert.Equal(t, time.Date(2005, time.January, 9, 0, 0, 0, 0, time.UTC), b.Time())
}
