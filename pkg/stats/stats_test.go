package stats

import "testing"

func TestRate(t *testing.T) {
	tests := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{1, 4, 25},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{0, 10, 0},
	}
	for _, tt := range tests {
		if got := Rate(tt.part, tt.total); got != tt.want {
			t.Errorf("Rate(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
		}
	}
}
