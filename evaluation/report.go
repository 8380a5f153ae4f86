package evaluation

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Summary aggregates one run's counts. Evaluated excludes tasks whose
// output file was missing; SuccessRate is passed over evaluated as a
// percentage rounded to two decimal places.
type Summary struct {
	TotalTasks   int     `json:"total_tasks"`
	Evaluated    int     `json:"evaluated"`
	MissingFiles int     `json:"missing_files"`
	Passed       int     `json:"passed"`
	Failed       int     `json:"failed"`
	SuccessRate  float64 `json:"success_rate"`
}

// TaskResult is one task's outcome. Result is 1 for pass, 0 for fail, and
// null when the output file was missing.
type TaskResult struct {
	ID              TaskID `json:"id"`
	InstructionType string `json:"instruction_type"`
	Result          *int   `json:"result"`
	Message         string `json:"message"`
}

// Report is the full outcome of one evaluation run.
type Report struct {
	Summary      Summary      `json:"summary"`
	MissingFiles []string     `json:"missing_files"`
	Results      []TaskResult `json:"results"`
}

// Save writes the report as indented JSON, atomically: the report lands at
// path complete or not at all.
func (r *Report) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save report %q: %w", path, err)
		}
	}
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("save report %q: %w", path, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(r); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("save report %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save report %q: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("save report %q: %w", path, err)
	}
	return nil
}

// WriteSummary prints the run's counts as a framed block.
func (r *Report) WriteSummary(w io.Writer) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "Evaluation Summary")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total tasks:       %d\n", r.Summary.TotalTasks)
	fmt.Fprintf(w, "Evaluated:         %d\n", r.Summary.Evaluated)
	fmt.Fprintf(w, "Missing files:     %d\n", r.Summary.MissingFiles)
	fmt.Fprintf(w, "Passed:            %d\n", r.Summary.Passed)
	fmt.Fprintf(w, "Failed:            %d\n", r.Summary.Failed)
	fmt.Fprintf(w, "Success rate:      %v%%\n", r.Summary.SuccessRate)
	fmt.Fprintln(w, rule)
}

// DefaultReportPath names the report after the master folder's base name,
// under outputDir.
func DefaultReportPath(outputDir, masterFolder string) string {
	base := filepath.Base(filepath.Clean(masterFolder))
	return filepath.Join(outputDir, fmt.Sprintf("eval_%s.json", base))
}
