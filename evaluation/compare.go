package evaluation

import "fmt"

// Verdict is the outcome of comparing one answer range: pass, or fail with
// a message describing the first difference found.
type Verdict struct {
	Pass    bool
	Message string
}

// CompareRange checks every cell of one range in the produced workbook
// against the ground truth, stopping at the first difference. Values are
// always compared; fill and font colors only when checkStyle is set. Only
// the produced workbook is checked for the sheet; the ground truth is
// assumed to have it, and a read against a sheet it lacks surfaces as an
// error.
func CompareRange(gt, proc Workbook, sheet, rangeSpec string, checkStyle bool) (Verdict, error) {
	if !proc.HasSheet(sheet) {
		return Verdict{Message: "worksheet not found"}, nil
	}
	cells, err := EnumerateCells(rangeSpec)
	if err != nil {
		return Verdict{}, err
	}
	for _, cell := range cells {
		verdict, err := compareCell(gt, proc, sheet, cell, checkStyle)
		if err != nil {
			return Verdict{}, err
		}
		if !verdict.Pass {
			return verdict, nil
		}
	}
	return Verdict{Pass: true}, nil
}

// compareCell checks a single cell, value first, then fill, then font
// color.
func compareCell(gt, proc Workbook, sheet, cell string, checkStyle bool) (Verdict, error) {
	gtVal, err := gt.ValueAt(sheet, cell)
	if err != nil {
		return Verdict{}, err
	}
	procVal, err := proc.ValueAt(sheet, cell)
	if err != nil {
		return Verdict{}, err
	}
	if !ValuesEqual(gtVal, procVal) {
		return Verdict{
			Message: fmt.Sprintf("Value difference at cell %s: ground truth has %s, produced has %s", cell, gtVal, procVal),
		}, nil
	}

	if !checkStyle {
		return Verdict{Pass: true}, nil
	}

	gtFg, gtBg, err := gt.FillColorsAt(sheet, cell)
	if err != nil {
		return Verdict{}, err
	}
	procFg, procBg, err := proc.FillColorsAt(sheet, cell)
	if err != nil {
		return Verdict{}, err
	}
	if !ColorsEqual(gtFg, procFg) || !ColorsEqual(gtBg, procBg) {
		return Verdict{
			Message: fmt.Sprintf("Fill color difference at cell %s: ground truth has %s, produced has %s", cell, rgbOrDefault(gtFg), rgbOrDefault(procFg)),
		}, nil
	}

	gtFont, err := gt.FontColorAt(sheet, cell)
	if err != nil {
		return Verdict{}, err
	}
	procFont, err := proc.FontColorAt(sheet, cell)
	if err != nil {
		return Verdict{}, err
	}
	if !ColorsEqual(gtFont, procFont) {
		// Font colors are reported without their values.
		return Verdict{Message: fmt.Sprintf("Font color difference at cell %s", cell)}, nil
	}
	return Verdict{Pass: true}, nil
}
