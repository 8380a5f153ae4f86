package evaluation

import (
	"strconv"
	"time"
)

// ValueKind represents the type of a cell value read from a workbook.
type ValueKind int

const (
	ValueBlank ValueKind = iota
	ValueNumber
	ValueText
	ValueTime     // time of day without a date component
	ValueDateTime // calendar date, possibly with a time component
)

// String returns a human-readable name for the ValueKind.
func (k ValueKind) String() string {
	switch k {
	case ValueBlank:
		return "Blank"
	case ValueNumber:
		return "Number"
	case ValueText:
		return "Text"
	case ValueTime:
		return "Time"
	case ValueDateTime:
		return "DateTime"
	default:
		return "Unknown"
	}
}

// CellValue is a cell value tagged with its kind. Number carries
// ValueNumber values, Text carries ValueText values, and Clock carries
// both ValueTime and ValueDateTime values; the remaining fields are zero.
type CellValue struct {
	Kind   ValueKind
	Number float64
	Text   string
	Clock  time.Time
}

// BlankValue returns the value of an empty cell.
func BlankValue() CellValue {
	return CellValue{Kind: ValueBlank}
}

// NumberValue returns a numeric cell value.
func NumberValue(n float64) CellValue {
	return CellValue{Kind: ValueNumber, Number: n}
}

// TextValue returns a textual cell value.
func TextValue(s string) CellValue {
	return CellValue{Kind: ValueText, Text: s}
}

// TimeValue returns a time-of-day cell value; only the clock part of t is
// meaningful.
func TimeValue(t time.Time) CellValue {
	return CellValue{Kind: ValueTime, Clock: t}
}

// DateTimeValue returns a calendar date cell value.
func DateTimeValue(t time.Time) CellValue {
	return CellValue{Kind: ValueDateTime, Clock: t}
}

// String renders the raw value for diagnostics.
func (v CellValue) String() string {
	switch v.Kind {
	case ValueBlank:
		return "<empty>"
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case ValueText:
		return v.Text
	case ValueTime:
		return clockString(v.Clock)
	case ValueDateTime:
		return v.Clock.Format("2006-01-02 15:04:05")
	default:
		return "<invalid>"
	}
}
