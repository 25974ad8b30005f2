package exreport

import (
	"errors"
	"testing"
)

func TestValueOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       any
		expected Value
	}{
		{"nil", nil, Empty()},
		{"empty string", "", Empty()},
		{"text", "Ready", Text("Ready")},
		{"formula", "=B28*24", Formula("B28*24")},
		{"lone equals is text", "=", Text("=")},
		{"int", 250, Number(250)},
		{"int64", int64(-3), Number(-3)},
		{"uint8", uint8(7), Number(7)},
		{"float", 0.05, Number(0.05)},
		{"value passthrough", Percent(0.05), Percent(0.05)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ValueOf(tt.in)
			if err != nil {
				t.Fatalf("ValueOf(%v) error: %v", tt.in, err)
			}
			if got != tt.expected {
				t.Errorf("ValueOf(%v) = %+v, expected %+v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestValueOfUnsupported(t *testing.T) {
	t.Parallel()

	_, err := ValueOf(struct{}{})
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("expected ErrUnsupportedValue, got %v", err)
	}
}

func TestRowFormulaResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    Value
		row      int
		expected string
	}{
		{RowFormula("=A{row}*$B$5*24"), 13, "A13*$B$5*24"},
		{RowFormula("=D{prev}+B{row}-C{row}"), 21, "D20+B21-C21"},
		{Formula("=SUM(B35:B41)"), 42, "SUM(B35:B41)"},
		{Formula("A{row}"), 9, "A{row}"},
	}

	for _, tt := range tests {
		if got := tt.value.resolve(tt.row); got != tt.expected {
			t.Errorf("resolve(%d) = %q, expected %q", tt.row, got, tt.expected)
		}
	}
}

func TestValueLiteral(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    Value
		expected string
	}{
		{Text("Pending"), "Pending"},
		{Number(250), "250"},
		{Number(0.5), "0.5"},
		{Formula("B1"), "=B1"},
		{Empty(), ""},
	}

	for _, tt := range tests {
		if got := tt.value.Literal(); got != tt.expected {
			t.Errorf("Literal(%+v) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}
