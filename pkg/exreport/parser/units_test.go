package parser

import "testing"

func TestCentimetresToPixels(t *testing.T) {
	tests := []struct {
		cm       float64
		expected uint
	}{
		{0, 0},
		{-3, 0},
		{2.54, 96},
		{12, 453},
		{15, 566},
	}

	for _, tt := range tests {
		result := CentimetresToPixels(tt.cm)
		if result != tt.expected {
			t.Errorf("CentimetresToPixels(%v) = %d, expected %d", tt.cm, result, tt.expected)
		}
	}
}

func TestEMUToPixels(t *testing.T) {
	if got := EMUToPixels(914400); got != 96 {
		t.Errorf("EMUToPixels(914400) = %d, expected 96", got)
	}
}
