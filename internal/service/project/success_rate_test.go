package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessRate(t *testing.T) {
	tests := []struct {
		name       string
		progresses []int
		want       int
	}{
		{"empty", nil, 0},
		{"mean 46", []int{10, 40, 70, 20, 90}, 46},
		{"half rounds up", []int{0, 1}, 1},
		{"rounds down", []int{10, 11, 11}, 11},
		{"all complete", []int{100, 100}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuccessRate(tt.progresses))
		})
	}
}
