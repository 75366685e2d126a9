package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverallRating(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{"no skills", nil, 0},
		{"mean 80", []int{80, 60, 100}, 4.0},
		{"single perfect score", []int{100}, 5.0},
		{"all zero", []int{0, 0}, 0},
		{"rounds to one decimal", []int{77}, 3.9},      // 3.85
		{"rounds half away from zero", []int{73}, 3.7}, // 3.65
		{"uneven mean", []int{90, 85, 70}, 4.1},        // 81.67 -> 4.083
		{"tie below half in binary", []int{83}, 4.2},   // 4.15
		{"tie 2.35", []int{47}, 2.4},                   // 2.35
		{"tie over two skills", []int{80, 86}, 4.2},    // 83 -> 4.15
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverallRating(tt.values))
		})
	}
}
