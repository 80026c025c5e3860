package lang

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Duration is a numeric quantity with a time unit (ms, s, m, h, d, w).
// It is kept symbolic; nothing in the language converts between units.
type Duration struct {
	Value float64
	Unit  string
}

func (d Duration) String() string {
	return formatNumber(d.Value) + d.Unit
}

// Size is a numeric quantity with a byte unit (B, KB, MiB, ...).
type Size struct {
	Value float64
	Unit  string
}

func (s Size) String() string {
	return formatNumber(s.Value) + s.Unit
}

// Date is a YYYY-MM-DD literal, kept as written.
type Date string

// Time is an HH:MM or HH:MM:SS literal, kept as written.
type Time string

// DateTime is a combined date and time literal, kept as written.
type DateTime string

// Identifier is a bare word used as a value, e.g. `level = debug;`.
type Identifier string

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Simplify collapses language-internal value types into plain Go values fit
// for output encoding and string conversion: identifiers and temporal
// literals become strings, durations and sizes their literal spelling, and
// decimals become floats. Everything else passes through.
func Simplify(v interface{}) interface{} {
	switch val := v.(type) {
	case Identifier:
		return string(val)
	case Date:
		return string(val)
	case Time:
		return string(val)
	case DateTime:
		return string(val)
	case Duration:
		return val.String()
	case Size:
		return val.String()
	case decimal.Decimal:
		f, _ := val.Float64()
		return f
	}
	return v
}

// Stringify renders a simplified value the way string contexts (concat, join,
// interpolation) see it.
func Stringify(v interface{}) string {
	switch val := Simplify(v).(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return formatNumber(val)
	default:
		return fmt.Sprint(val)
	}
}
