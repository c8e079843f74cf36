package core

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0:00"},
		{999 * time.Millisecond, "0:00"},
		{9 * time.Second, "0:09"},
		{61*time.Second + 500*time.Millisecond, "1:01"},
		{12*time.Minute + 34*time.Second, "12:34"},
		{-time.Second, "0:00"},
	}

	for _, tc := range tests {
		if got := FormatClock(tc.d); got != tc.expected {
			t.Errorf("FormatClock(%v) = %q, expected %q", tc.d, got, tc.expected)
		}
	}
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		percent  float64
		expected Color
	}{
		{100, ColorGreen},
		{61, ColorGreen},
		{60, ColorOrange},
		{31, ColorOrange},
		{30, ColorRed},
		{0, ColorRed},
	}

	for _, tc := range tests {
		if got := HealthColor(tc.percent); got != tc.expected {
			t.Errorf("HealthColor(%v) = %v, expected %v", tc.percent, got, tc.expected)
		}
	}
}
