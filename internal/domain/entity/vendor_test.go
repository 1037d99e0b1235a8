package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRating(t *testing.T) {
	tests := []struct {
		avg  float64
		want float64
	}{
		{avg: 0, want: 0},
		{avg: 4, want: 4},
		{avg: 14.0 / 3.0, want: 4.67},
		{avg: 10.0 / 3.0, want: 3.33},
		{avg: 4.125, want: 4.13},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, RoundRating(tt.avg), 1e-9)
	}
}
