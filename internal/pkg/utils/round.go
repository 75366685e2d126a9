package utils

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Round rounds x to the given number of decimal places, half away from zero.
// x is taken at its shortest decimal representation, so 2.35 rounds to 2.4
// even though the nearest float64 is just below the tie.
func Round(x float64, places int) float64 {
	return decimal.NewFromFloat(x).Round(int32(places)).InexactFloat64()
}

// RoundRatio rounds num/den to the given number of decimal places, half away
// from zero, without passing through a binary float. den must not be zero.
func RoundRatio(num, den int64, places int) float64 {
	return decimal.NewFromInt(num).DivRound(decimal.NewFromInt(den), int32(places)).InexactFloat64()
}

// FormatHoursMinutes renders d as "Xh Ym" with whole hours and the remaining
// whole minutes. Negative durations render as "0h 0m".
func FormatHoursMinutes(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// Initials returns the upper-cased first letters of the first two words of name.
func Initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
