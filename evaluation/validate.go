package evaluation

import (
	"fmt"
	"os"
	"strings"
)

// Severity indicates the severity of a dataset validation issue.
type Severity int

const (
	SeverityError   Severity = iota // Task cannot be evaluated correctly
	SeverityWarning                 // Task evaluates, but probably not as intended
)

// ValidationIssue is a single problem found while checking a dataset.
type ValidationIssue struct {
	Severity Severity
	TaskID   TaskID
	Message  string
}

// String formats the issue as "[ERROR] task 42: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] task %s: %s", sev, v.TaskID, v.Message)
}

// ValidateDataset checks tasks for problems that would break or distort an
// evaluation run: unparsable answer positions, malformed ranges, missing
// ground-truth files, and multi-range positions of which only the last
// range would be compared.
func ValidateDataset(tasks []Task, dataRoot, dataset string) []ValidationIssue {
	var issues []ValidationIssue
	for _, task := range tasks {
		issues = append(issues, validateTask(task, dataRoot, dataset)...)
	}
	return issues
}

// validateTask checks one task's id, answer position, and ground-truth
// file.
func validateTask(task Task, dataRoot, dataset string) []ValidationIssue {
	var issues []ValidationIssue
	if task.ID == "" {
		issues = append(issues, ValidationIssue{
			Severity: SeverityError,
			Message:  "task has no id",
		})
		return issues
	}

	positions, err := ParseAnswerPosition(task.AnswerPosition, "Sheet1")
	if err != nil {
		issues = append(issues, ValidationIssue{
			Severity: SeverityError,
			TaskID:   task.ID,
			Message:  fmt.Sprintf("unparsable answer position %q: %v", task.AnswerPosition, err),
		})
		return issues
	}
	if len(positions) > 1 {
		issues = append(issues, ValidationIssue{
			Severity: SeverityWarning,
			TaskID:   task.ID,
			Message:  fmt.Sprintf("answer position has %d segments; only the last is evaluated", len(positions)),
		})
	}
	for i, pos := range positions {
		if msg := checkRangeSpec(pos.Range); msg != "" {
			sev := SeverityWarning
			if i == len(positions)-1 {
				sev = SeverityError
			}
			issues = append(issues, ValidationIssue{
				Severity: sev,
				TaskID:   task.ID,
				Message:  fmt.Sprintf("bad range %q: %s", pos.Range, msg),
			})
		}
	}

	answerPath := AnswerPath(dataRoot, dataset, task.ID)
	if _, err := os.Stat(answerPath); err != nil {
		issues = append(issues, ValidationIssue{
			Severity: SeverityError,
			TaskID:   task.ID,
			Message:  fmt.Sprintf("ground-truth answer file missing: %s", answerPath),
		})
	}
	return issues
}

// checkRangeSpec reports why a range specification is malformed, "" when it
// is fine. Single cells are checked against the A1 grammar; A1:B2 forms by
// attempting enumeration.
func checkRangeSpec(spec string) string {
	if strings.Contains(spec, ":") {
		if _, err := EnumerateCells(spec); err != nil {
			return err.Error()
		}
		return ""
	}
	col, _, err := splitCellName(spec)
	if err != nil {
		return err.Error()
	}
	if _, err := ColumnNumber(col); err != nil {
		return err.Error()
	}
	return ""
}
