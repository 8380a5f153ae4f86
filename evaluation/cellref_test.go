package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnName_KnownValues(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
		{16384, "XFD"},
	}
	for _, tc := range cases {
		got, err := ColumnName(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "column %d", tc.n)
	}
}

func TestColumnName_Invalid(t *testing.T) {
	_, err := ColumnName(0)
	assert.Error(t, err)
	_, err = ColumnName(-5)
	assert.Error(t, err)
}

func TestColumnNumber_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"A", 1},
		{"Z", 26},
		{"AA", 27},
		{"AZ", 52},
		{"ZZ", 702},
		{"AAA", 703},
		{"a", 1},
		{"aa", 27},
	}
	for _, tc := range cases {
		got, err := ColumnNumber(tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "column %q", tc.name)
	}
}

func TestColumnNumber_Invalid(t *testing.T) {
	for _, name := range []string{"", "A1", "A B", "$A"} {
		_, err := ColumnNumber(name)
		assert.Error(t, err, "column %q", name)
	}
}

func TestColumnRoundTrip(t *testing.T) {
	for n := 1; n <= 20000; n++ {
		name, err := ColumnName(n)
		require.NoError(t, err)
		back, err := ColumnNumber(name)
		require.NoError(t, err)
		require.Equal(t, n, back, "column %d", n)
	}
}

func TestParseRange_Valid(t *testing.T) {
	b, err := ParseRange("A1:C5")
	require.NoError(t, err)
	assert.Equal(t, RangeBounds{StartCol: 1, StartRow: 1, EndCol: 3, EndRow: 5}, b)

	b, err = ParseRange("AB12:AB12")
	require.NoError(t, err)
	assert.Equal(t, RangeBounds{StartCol: 28, StartRow: 12, EndCol: 28, EndRow: 12}, b)
}

func TestParseRange_Invalid(t *testing.T) {
	for _, spec := range []string{"A1", "A:B2", "1:B2", ":A1", "A1:", "A1:B", "X:Y"} {
		_, err := ParseRange(spec)
		assert.Error(t, err, "range %q", spec)
	}
}

func TestEnumerateCells_SingleCell(t *testing.T) {
	cells, err := EnumerateCells("B7")
	require.NoError(t, err)
	assert.Equal(t, []string{"B7"}, cells)

	// Anything without a colon passes through untouched.
	cells, err = EnumerateCells("not a cell")
	require.NoError(t, err)
	assert.Equal(t, []string{"not a cell"}, cells)
}

func TestEnumerateCells_Rectangle(t *testing.T) {
	cells, err := EnumerateCells("A1:B2")
	require.NoError(t, err)
	// Column-major: all of column A, then column B.
	assert.Equal(t, []string{"A1", "A2", "B1", "B2"}, cells)

	cells, err = EnumerateCells("C3:C5")
	require.NoError(t, err)
	assert.Equal(t, []string{"C3", "C4", "C5"}, cells)
}

func TestEnumerateCells_ReversedIsEmpty(t *testing.T) {
	cells, err := EnumerateCells("B2:A1")
	require.NoError(t, err)
	assert.Empty(t, cells)
}

func TestEnumerateCells_BadRange(t *testing.T) {
	_, err := EnumerateCells("A1:")
	assert.Error(t, err)
}

func TestParseAnswerPosition_SingleRange(t *testing.T) {
	segs, err := ParseAnswerPosition("B2:D4", "Sheet1")
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, SheetRange{Sheet: "Sheet1", Range: "B2:D4"}, segs[0])
}

func TestParseAnswerPosition_ExplicitSheet(t *testing.T) {
	segs, err := ParseAnswerPosition("Data!A1:C5", "Sheet1")
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, "Data", segs[0].Sheet)
	assert.Equal(t, "A1:C5", segs[0].Range)
	assert.Equal(t, "Data!A1:C5", segs[0].String())
}

func TestParseAnswerPosition_QuotedSheet(t *testing.T) {
	segs, err := ParseAnswerPosition("'My Sheet'!A1", "Sheet1")
	require.NoError(t, err)
	require.Len(t, segs, 1)
	assert.Equal(t, "My Sheet", segs[0].Sheet)
	assert.Equal(t, "A1", segs[0].Range)
}

func TestParseAnswerPosition_MultipleSegments(t *testing.T) {
	segs, err := ParseAnswerPosition("Sheet2!A1:A5,B1:B5,Sheet3!C1", "First")
	require.NoError(t, err)
	require.Len(t, segs, 3)
	assert.Equal(t, SheetRange{Sheet: "Sheet2", Range: "A1:A5"}, segs[0])
	assert.Equal(t, SheetRange{Sheet: "First", Range: "B1:B5"}, segs[1])
	assert.Equal(t, SheetRange{Sheet: "Sheet3", Range: "C1"}, segs[2])
}

func TestParseAnswerPosition_KeepsWhitespace(t *testing.T) {
	// Segment text is taken verbatim; a space after the comma stays part
	// of the range and will fail to resolve to a cell downstream.
	segs, err := ParseAnswerPosition("A1, B2", "Sheet1")
	require.NoError(t, err)
	require.Len(t, segs, 2)
	assert.Equal(t, " B2", segs[1].Range)
}

func TestParseAnswerPosition_DoubleBang(t *testing.T) {
	_, err := ParseAnswerPosition("Sheet1!A1!B2", "Sheet1")
	assert.Error(t, err)
}
