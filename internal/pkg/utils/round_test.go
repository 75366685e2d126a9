package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	cases := []struct {
		name   string
		in     float64
		places int
		want   float64
	}{
		{"one place", 66.66666, 1, 66.7},
		{"half up", 2.25, 1, 2.3},
		{"half away from zero negative", -2.25, 1, -2.3},
		{"integer half", 46.5, 0, 47},
		{"integer below half", 46.4, 0, 46},
		{"already rounded", 4.0, 1, 4.0},
		{"zero", 0, 1, 0},
		{"tie stored below half", 2.35, 1, 2.4},
		{"tie stored below half rating", 4.15, 1, 4.2},
		{"negative tie stored below half", -2.35, 1, -2.4},
		{"two places", 1.005, 2, 1.01},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Round(c.in, c.places))
		})
	}
}

func TestRoundRatio(t *testing.T) {
	cases := []struct {
		name     string
		num, den int64
		places   int
		want     float64
	}{
		{"rating tie 4.15", 83 * 5, 100, 1, 4.2},
		{"rating tie 2.35", 47 * 5, 100, 1, 2.4},
		{"percent tie 28.75", 23 * 100, 80, 1, 28.8},
		{"repeating", 200, 3, 1, 66.7},
		{"whole tie", 125, 2, 0, 63},
		{"whole below tie", 124, 3, 0, 41},
		{"negative whole tie", -7, 2, 0, -4},
		{"exact", 40, 10, 1, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, RoundRatio(c.num, c.den, c.places))
		})
	}
}

func TestFormatHoursMinutes(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatHoursMinutes(0))
	assert.Equal(t, "8h 30m", FormatHoursMinutes(8*time.Hour+30*time.Minute))
	assert.Equal(t, "41h 5m", FormatHoursMinutes(41*time.Hour+5*time.Minute+59*time.Second))
	assert.Equal(t, "0h 0m", FormatHoursMinutes(-time.Hour))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", Initials("john doe smith"))
	assert.Equal(t, "A", Initials("admin"))
	assert.Equal(t, "", Initials("   "))
	assert.Equal(t, "ÉB", Initials("élise  brun"))
}
