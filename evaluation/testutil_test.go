package evaluation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds an xlsx file at path, creating parent directories,
// with setup applied to the fresh workbook.
func writeWorkbook(t *testing.T, path string, setup func(f *excelize.File)) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if setup != nil {
		setup(f)
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, f.SaveAs(path))
}

// tempWorkbook builds an xlsx file under the test's temp dir and returns
// its path.
func tempWorkbook(t *testing.T, setup func(f *excelize.File)) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book.xlsx")
	writeWorkbook(t, path, setup)
	return path
}

// openTestWorkbook opens a fixture and closes it when the test ends.
func openTestWorkbook(t *testing.T, path string) *ExcelWorkbook {
	t.Helper()
	wb, err := OpenWorkbook(path)
	require.NoError(t, err)
	t.Cleanup(func() { wb.Close() })
	return wb
}

// fillStyle registers a pattern fill style with the given foreground
// color.
func fillStyle(t *testing.T, f *excelize.File, color string) int {
	t.Helper()
	id, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
	require.NoError(t, err)
	return id
}

// fontStyle registers a style with the given font color.
func fontStyle(t *testing.T, f *excelize.File, color string) int {
	t.Helper()
	id, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: color},
	})
	require.NoError(t, err)
	return id
}

// benchmarkTree lays out a benchmark data root and a master folder of
// produced workbooks under one temp dir, following the dataset's path
// conventions.
type benchmarkTree struct {
	dataRoot string
	dataset  string
	master   string
}

func newBenchmarkTree(t *testing.T, dataset, masterName string) *benchmarkTree {
	t.Helper()
	dir := t.TempDir()
	bt := &benchmarkTree{
		dataRoot: filepath.Join(dir, "data"),
		dataset:  dataset,
		master:   filepath.Join(dir, masterName),
	}
	require.NoError(t, os.MkdirAll(bt.master, 0o755))
	return bt
}

// writeTasks writes the dataset's task listing.
func (bt *benchmarkTree) writeTasks(t *testing.T, tasks []Task) {
	t.Helper()
	data, err := json.Marshal(tasks)
	require.NoError(t, err)
	path := DatasetFile(bt.dataRoot, bt.dataset)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

// writeAnswer builds a task's ground-truth workbook.
func (bt *benchmarkTree) writeAnswer(t *testing.T, id TaskID, setup func(f *excelize.File)) {
	t.Helper()
	writeWorkbook(t, AnswerPath(bt.dataRoot, bt.dataset, id), setup)
}

// writeOutput builds a task's produced workbook.
func (bt *benchmarkTree) writeOutput(t *testing.T, id TaskID, setup func(f *excelize.File)) {
	t.Helper()
	writeWorkbook(t, ProducedPath(bt.master, id), setup)
}
