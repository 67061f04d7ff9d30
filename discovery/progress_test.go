package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		goal    float64
		want    float64
	}{
		{"partial", 25000, 40000, 62.5},
		{"zero goal", 5000, 0, 0},
		{"negative goal", 5000, -10, 0},
		{"zero current", 0, 40000, 0},
		{"negative current clamps", -50, 40000, 0},
		{"overfunded clamps", 90000, 40000, 100},
		{"exact goal", 30000, 30000, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Progress(tt.current, tt.goal))
		})
	}
}

func TestProgressBounds(t *testing.T) {
	for _, current := range []float64{-1000, 0, 1, 99999, 1e12} {
		for _, goal := range []float64{-5, 0, 1, 40000} {
			p := Progress(current, goal)
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 100.0)
		}
	}
}
