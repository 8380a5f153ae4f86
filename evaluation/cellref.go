package evaluation

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnName converts a 1-based column number to its letter name.
// 1→"A", 26→"Z", 27→"AA".
func ColumnName(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("invalid column number: %d", n)
	}
	name := ""
	for n > 0 {
		n-- // shift to 0-indexed letter
		name = string(rune('A'+n%26)) + name
		n /= 26
	}
	return name, nil
}

// ColumnNumber converts a column letter name to its 1-based number.
// "A"→1, "Z"→26, "AA"→27. The name is upper-folded first.
func ColumnNumber(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	n := 0
	for _, ch := range strings.ToUpper(name) {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column name: %q", name)
		}
		n = n*26 + int(ch-'A') + 1
	}
	return n, nil
}

// RangeBounds is the inclusive rectangle described by a range string,
// 1-based columns and rows.
type RangeBounds struct {
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

// splitCellName separates a cell name into its column letters and row
// number. Characters are classified one by one: digits accumulate into the
// row part, everything else into the column part, so "$" or interleaved
// forms surface as column-name errors rather than being silently accepted.
func splitCellName(cell string) (col string, row int, err error) {
	var colPart, rowPart strings.Builder
	for _, ch := range cell {
		if ch >= '0' && ch <= '9' {
			rowPart.WriteRune(ch)
		} else {
			colPart.WriteRune(ch)
		}
	}
	if colPart.Len() == 0 || rowPart.Len() == 0 {
		return "", 0, fmt.Errorf("invalid cell name: %q", cell)
	}
	row, err = strconv.Atoi(rowPart.String())
	if err != nil {
		return "", 0, fmt.Errorf("invalid cell name %q: %w", cell, err)
	}
	return colPart.String(), row, nil
}

// ParseRange parses a range string like "A1:AB12" into its bounds.
func ParseRange(s string) (RangeBounds, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return RangeBounds{}, fmt.Errorf("invalid cell range (missing ':'): %q", s)
	}

	startColName, startRow, err := splitCellName(parts[0])
	if err != nil {
		return RangeBounds{}, fmt.Errorf("invalid cell range %q: %w", s, err)
	}
	endColName, endRow, err := splitCellName(parts[1])
	if err != nil {
		return RangeBounds{}, fmt.Errorf("invalid cell range %q: %w", s, err)
	}

	startCol, err := ColumnNumber(startColName)
	if err != nil {
		return RangeBounds{}, fmt.Errorf("invalid cell range %q: %w", s, err)
	}
	endCol, err := ColumnNumber(endColName)
	if err != nil {
		return RangeBounds{}, fmt.Errorf("invalid cell range %q: %w", s, err)
	}

	return RangeBounds{
		StartCol: startCol,
		StartRow: startRow,
		EndCol:   endCol,
		EndRow:   endRow,
	}, nil
}

// EnumerateCells expands a range string into individual cell names. A
// string without ":" is returned unchanged as a single-element slice.
// Rectangles expand column-major: every row of the first column, then the
// next column. A range whose start lies past its end expands to nothing.
func EnumerateCells(s string) ([]string, error) {
	if !strings.Contains(s, ":") {
		return []string{s}, nil
	}

	b, err := ParseRange(s)
	if err != nil {
		return nil, err
	}

	var cells []string
	for col := b.StartCol; col <= b.EndCol; col++ {
		name, err := ColumnName(col)
		if err != nil {
			return nil, err
		}
		for row := b.StartRow; row <= b.EndRow; row++ {
			cells = append(cells, fmt.Sprintf("%s%d", name, row))
		}
	}
	return cells, nil
}

// SheetRange pairs a sheet name with a cell range within that sheet.
type SheetRange struct {
	Sheet string
	Range string
}

// String formats the SheetRange as "Sheet1!A1:C5".
func (r SheetRange) String() string {
	return r.Sheet + "!" + r.Range
}

// ParseAnswerPosition splits a comma-separated answer position into its
// sheet/range segments. A segment without a "Sheet!" prefix falls back to
// defaultSheet; single quotes around sheet names are stripped. Segment text
// is taken verbatim, whitespace included.
func ParseAnswerPosition(position, defaultSheet string) ([]SheetRange, error) {
	var segments []SheetRange
	for _, seg := range strings.Split(position, ",") {
		sheet := defaultSheet
		cellRange := seg
		if strings.Contains(seg, "!") {
			parts := strings.Split(seg, "!")
			if len(parts) != 2 {
				return nil, fmt.Errorf("invalid answer position segment: %q", seg)
			}
			sheet = strings.Trim(parts[0], "'")
			cellRange = parts[1]
		}
		segments = append(segments, SheetRange{Sheet: sheet, Range: cellRange})
	}
	return segments, nil
}
