package exreport

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the type of a cell value.
type Kind int

const (
	// KindEmpty leaves the cell without a value (styling still applies).
	KindEmpty Kind = iota
	// KindText is a literal string.
	KindText
	// KindNumber is a numeric value.
	KindNumber
	// KindPercent is a fraction rendered with a percentage format (0.05 -> 5%).
	KindPercent
	// KindFormula is an expression evaluated by the spreadsheet application.
	KindFormula
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindPercent:
		return "percent"
	case KindFormula:
		return "formula"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a typed cell value.
type Value struct {
	Kind Kind
	// Text holds the string for KindText and the expression for KindFormula.
	Text string
	// Number holds the value for KindNumber and KindPercent.
	Number float64
	// rowTemplate marks a formula whose {row} and {prev} placeholders are
	// resolved against the row the value is written to.
	rowTemplate bool
}

// Empty returns an empty value.
func Empty() Value { return Value{Kind: KindEmpty} }

// Text returns a literal string value. A leading "=" is kept as text.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Number returns a numeric value.
func Number(n float64) Value { return Value{Kind: KindNumber, Number: n} }

// Percent returns a fraction displayed as a percentage.
func Percent(fraction float64) Value { return Value{Kind: KindPercent, Number: fraction} }

// Formula returns a formula value. The leading "=" is optional.
func Formula(expr string) Value {
	return Value{Kind: KindFormula, Text: strings.TrimPrefix(expr, "=")}
}

// RowFormula returns a formula template resolved when written: {row} becomes
// the absolute row of the cell and {prev} the row above it.
//
//	RowFormula("=A{row}*$B$5*24")
func RowFormula(template string) Value {
	v := Formula(template)
	v.rowTemplate = true
	return v
}

// Literal returns the text used to match conditional fills.
func (v Value) Literal() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber, KindPercent:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindFormula:
		return "=" + v.Text
	}
	return ""
}

// resolve returns the formula expression for the given row.
func (v Value) resolve(row int) string {
	if !v.rowTemplate {
		return v.Text
	}
	r := strings.NewReplacer("{row}", strconv.Itoa(row), "{prev}", strconv.Itoa(row-1))
	return r.Replace(v.Text)
}

// ValueOf converts a Go value to a cell value.
// Strings beginning with "=" become formulas, as in the spreadsheet itself.
func ValueOf(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Empty(), nil
	case Value:
		return v, nil
	case string:
		if strings.HasPrefix(v, "=") && len(v) > 1 {
			return Formula(v), nil
		}
		if v == "" {
			return Empty(), nil
		}
		return Text(v), nil
	case int:
		return Number(float64(v)), nil
	case int8:
		return Number(float64(v)), nil
	case int16:
		return Number(float64(v)), nil
	case int32:
		return Number(float64(v)), nil
	case int64:
		return Number(float64(v)), nil
	case uint:
		return Number(float64(v)), nil
	case uint8:
		return Number(float64(v)), nil
	case uint16:
		return Number(float64(v)), nil
	case uint32:
		return Number(float64(v)), nil
	case uint64:
		return Number(float64(v)), nil
	case float32:
		return Number(float64(v)), nil
	case float64:
		return Number(v), nil
	case fmt.Stringer:
		return Text(v.String()), nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, x)
}

// cellValue returns the value handed to the spreadsheet library. Whole
// numbers are written as integers so they read back without a fraction.
func (v Value) cellValue() interface{} {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber, KindPercent:
		if v.Number == math.Trunc(v.Number) && math.Abs(v.Number) < 1<<53 {
			return int64(v.Number)
		}
		return v.Number
	}
	return nil
}
