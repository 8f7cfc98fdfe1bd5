package core

import (
	"testing"
	"time"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		rate     int
		expected int
	}{
		{"zero duration", 0, 60, 0},
		{"negative duration", -time.Second, 60, 0},
		{"one second at 60", time.Second, 60, 60},
		{"highlight at 60", 600 * time.Millisecond, 60, 36},
		{"pause at 60", 400 * time.Millisecond, 60, 24},
		{"rounds up", 10 * time.Millisecond, 60, 1},
		{"flash at 30", 150 * time.Millisecond, 30, 5},
		{"zero rate uses default", time.Second, 0, 60},
		{"huge rate is capped", 600 * time.Millisecond, 2_000_000_000, 600},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Ticks(tc.d, tc.rate); got != tc.expected {
				t.Errorf("Ticks(%v, %d) = %d, expected %d", tc.d, tc.rate, got, tc.expected)
			}
		})
	}
}

func TestClampTickRate(t *testing.T) {
	tests := []struct {
		rate, expected int
	}{
		{0, 60},
		{-5, 60},
		{30, 30},
		{MaxTickRate, MaxTickRate},
		{2_000_000_000, MaxTickRate},
	}

	for _, tc := range tests {
		if got := ClampTickRate(tc.rate); got != tc.expected {
			t.Errorf("ClampTickRate(%d) = %d, expected %d", tc.rate, got, tc.expected)
		}
	}
}
