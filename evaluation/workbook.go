package evaluation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Workbook is the minimal reading surface the comparator needs. Colors are
// hex strings as stored in the file, "" when absent; values carry their
// kind so normalization can apply the right coercion.
type Workbook interface {
	HasSheet(name string) bool
	ValueAt(sheet, cell string) (CellValue, error)
	FillColorsAt(sheet, cell string) (fg, bg string, err error)
	FontColorAt(sheet, cell string) (string, error)
}

// ExcelWorkbook reads cell values and style colors from an xlsx file via
// excelize. Formula cells surface their cached results, matching how the
// benchmark snapshots spreadsheets. Not safe for concurrent use; handles
// are meant to live for one task and be closed.
type ExcelWorkbook struct {
	file       *excelize.File
	sheets     []string
	styleCache map[int]*excelize.Style
}

// OpenWorkbook opens an xlsx file for reading.
func OpenWorkbook(path string) (*ExcelWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	return &ExcelWorkbook{
		file:       f,
		sheets:     f.GetSheetList(),
		styleCache: make(map[int]*excelize.Style),
	}, nil
}

// Close closes the underlying file.
func (w *ExcelWorkbook) Close() error {
	return w.file.Close()
}

// FirstSheet returns the workbook's first sheet name, or "" when the
// workbook has no sheets.
func (w *ExcelWorkbook) FirstSheet() string {
	if len(w.sheets) == 0 {
		return ""
	}
	return w.sheets[0]
}

// HasSheet reports whether the workbook contains the named sheet. The match
// is exact: excelize resolves sheet names case-insensitively, but
// membership here is not forgiving.
func (w *ExcelWorkbook) HasSheet(name string) bool {
	for _, s := range w.sheets {
		if s == name {
			return true
		}
	}
	return false
}

// ValueAt reads one cell as a tagged value. Numeric cells styled with a
// date or time number format surface as dates (serial >= 1) or times of day
// (serial < 1); booleans surface as 1/0; error cells surface as their error
// text.
func (w *ExcelWorkbook) ValueAt(sheet, cell string) (CellValue, error) {
	raw, err := w.file.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		return CellValue{}, fmt.Errorf("read cell %s!%s: %w", sheet, cell, err)
	}
	if raw == "" {
		return BlankValue(), nil
	}

	cellType, err := w.file.GetCellType(sheet, cell)
	if err != nil {
		return CellValue{}, fmt.Errorf("read cell %s!%s: %w", sheet, cell, err)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return TextValue(raw), nil
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "true") {
			return NumberValue(1), nil
		}
		return NumberValue(0), nil
	case excelize.CellTypeError:
		return TextValue(raw), nil
	case excelize.CellTypeDate:
		// ISO 8601 date cells store text, not serials.
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return DateTimeValue(t.UTC()), nil
			}
		}
		return w.classifyNumeric(sheet, cell, raw)
	default:
		return w.classifyNumeric(sheet, cell, raw)
	}
}

// classifyNumeric turns the raw content of a numeric cell into a value:
// date or time of day when the cell's number format says so, plain number
// otherwise. Content that does not parse as a number stays text.
func (w *ExcelWorkbook) classifyNumeric(sheet, cell, raw string) (CellValue, error) {
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return TextValue(raw), nil
	}

	dateStyled, err := w.hasDateTimeFormat(sheet, cell)
	if err != nil {
		return CellValue{}, err
	}
	if dateStyled {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			if serial < 1 {
				return TimeValue(t), nil
			}
			return DateTimeValue(t), nil
		}
		// Out-of-range serials fall through as plain numbers.
	}
	return NumberValue(serial), nil
}

// FillColorsAt returns the cell's pattern-fill foreground and background
// colors, "" when absent.
func (w *ExcelWorkbook) FillColorsAt(sheet, cell string) (string, string, error) {
	style, err := w.styleOf(sheet, cell)
	if err != nil || style == nil {
		return "", "", err
	}
	var fg, bg string
	if len(style.Fill.Color) > 0 {
		fg = style.Fill.Color[0]
	}
	if len(style.Fill.Color) > 1 {
		bg = style.Fill.Color[1]
	}
	return fg, bg, nil
}

// FontColorAt returns the cell's font color, "" when absent.
func (w *ExcelWorkbook) FontColorAt(sheet, cell string) (string, error) {
	style, err := w.styleOf(sheet, cell)
	if err != nil || style == nil || style.Font == nil {
		return "", err
	}
	return style.Font.Color, nil
}

// styleOf resolves a cell's style definition, caching by style ID. A nil
// style means the cell carries the default (empty) style.
func (w *ExcelWorkbook) styleOf(sheet, cell string) (*excelize.Style, error) {
	styleID, err := w.file.GetCellStyle(sheet, cell)
	if err != nil {
		return nil, fmt.Errorf("read cell style %s!%s: %w", sheet, cell, err)
	}
	if style, ok := w.styleCache[styleID]; ok {
		return style, nil
	}
	style, err := w.file.GetStyle(styleID)
	if err != nil {
		style = nil
	}
	w.styleCache[styleID] = style
	return style, nil
}

// hasDateTimeFormat reports whether the cell's number format renders dates
// or times.
func (w *ExcelWorkbook) hasDateTimeFormat(sheet, cell string) (bool, error) {
	style, err := w.styleOf(sheet, cell)
	if err != nil || style == nil {
		return false, err
	}
	if style.CustomNumFmt != nil {
		return isDateTimeFormatCode(*style.CustomNumFmt), nil
	}
	return builtinDateTimeFormats[style.NumFmt], nil
}

// builtinDateTimeFormats are the standard number format IDs that render
// dates or times.
var builtinDateTimeFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true,
	19: true, 20: true, 21: true, 22: true,
	45: true, 46: true, 47: true,
}

// isDateTimeFormatCode reports whether a custom number format code renders
// dates or times: the first ";"-separated section, with quoted literals,
// bracketed sections, and escaped characters removed, contains a date/time
// token character.
func isDateTimeFormatCode(code string) bool {
	if i := strings.IndexByte(code, ';'); i >= 0 {
		code = code[:i]
	}
	var stripped strings.Builder
	var inQuote, inBracket, skipNext bool
	for _, ch := range code {
		switch {
		case skipNext:
			skipNext = false
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			inBracket = true
		case ch == '\\' || ch == '_':
			// Backslash escapes and skip-width codes hide one character.
			skipNext = true
		default:
			stripped.WriteRune(ch)
		}
	}
	return strings.ContainsAny(stripped.String(), "dmhysDMHYS")
}
