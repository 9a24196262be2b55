package core

import (
	"testing"
	"time"
)

func TestFrameDelta(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		prev     time.Time
		now      time.Time
		expected float64
	}{
		{"first tick", time.Time{}, base, 0},
		{"normal frame", base, base.Add(16 * time.Millisecond), 0.016},
		{"clamped after suspend", base, base.Add(3 * time.Second), 0.05},
		{"clock went backwards", base, base.Add(-time.Second), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FrameDelta(tc.prev, tc.now, MaxFrameDelta)
			if diff := got - tc.expected; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("FrameDelta() = %f, expected %f", got, tc.expected)
			}
		})
	}
}
