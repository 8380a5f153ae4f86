package evaluation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// dateEpoch is day zero of the workbook serial date system. Dates are
// compared as whole day counts from this point.
var dateEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// normalizedKind identifies the shape of a value after normalization. The
// five raw kinds collapse to three: times become strings and dates become
// numbers.
type normalizedKind int

const (
	normEmpty normalizedKind = iota
	normNumber
	normText
)

// normalized is the canonical comparable form of a cell value.
type normalized struct {
	kind normalizedKind
	num  float64
	text string
}

// emptyish reports whether the value is blank or an empty string; the two
// compare equal to each other.
func (n normalized) emptyish() bool {
	return n.kind == normEmpty || (n.kind == normText && n.text == "")
}

// normalize canonicalizes a cell value for comparison. The coercion order
// is fixed: numbers round to 2 decimals; times of day render as clock
// strings with the last 3 characters dropped; dates become whole serial day
// counts; text that parses as a number joins the numeric case and otherwise
// passes through unchanged; blanks stay empty.
func normalize(v CellValue) normalized {
	switch v.Kind {
	case ValueNumber:
		return normalized{kind: normNumber, num: roundTo(v.Number, 2)}
	case ValueTime:
		return normalized{kind: normText, text: truncateClock(clockString(v.Clock))}
	case ValueDateTime:
		return normalized{kind: normNumber, num: roundTo(serialDays(v.Clock), 0)}
	case ValueText:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v.Text), 64); err == nil {
			return normalized{kind: normNumber, num: roundTo(n, 2)}
		}
		return normalized{kind: normText, text: v.Text}
	default:
		return normalized{kind: normEmpty}
	}
}

// ValuesEqual reports whether two cell values are equal under the
// normalization rules. A blank cell and an empty string are equal in either
// order; beyond that the normalized kinds must match exactly, so a string
// that fails numeric coercion never equals a number even if the digits
// coincide.
func ValuesEqual(a, b CellValue) bool {
	na, nb := normalize(a), normalize(b)
	if na.emptyish() && nb.emptyish() {
		return true
	}
	if na.kind != nb.kind {
		return false
	}
	switch na.kind {
	case normNumber:
		return na.num == nb.num
	case normText:
		return na.text == nb.text
	default:
		return true
	}
}

// roundTo rounds to the given number of decimal places, ties to even.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(v*scale) / scale
}

// serialDays converts a date to its serial day offset from the epoch:
// whole days plus the fraction contributed by whole seconds of the clock
// time. Sub-second precision is discarded.
func serialDays(t time.Time) float64 {
	d := t.Sub(dateEpoch)
	days := math.Floor(d.Hours() / 24)
	secs := math.Floor(d.Seconds() - days*86400)
	return days + secs/86400
}

// clockString renders a time of day as "HH:MM:SS", with a ".ffffff"
// microsecond suffix only when microseconds are present.
func clockString(t time.Time) string {
	s := t.Format("15:04:05")
	if micro := t.Nanosecond() / 1000; micro != 0 {
		s += fmt.Sprintf(".%06d", micro)
	}
	return s
}

// truncateClock drops the trailing 3 characters: "14:30:59" becomes
// "14:30", "14:30:59.123456" becomes "14:30:59.123".
func truncateClock(s string) string {
	if len(s) <= 3 {
		return ""
	}
	return s[:len(s)-3]
}
