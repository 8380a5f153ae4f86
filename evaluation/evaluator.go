// Package evaluation scores generated spreadsheets against the
// SpreadsheetBench ground truth. Each task names an output workbook, an
// answer workbook, and the answer position to compare; the evaluator walks
// a run's master folder, compares every task, and produces a report of
// pass/fail verdicts and an overall success rate.
package evaluation

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// progressInterval is how many tasks pass between progress log lines.
const progressInterval = 50

// Evaluator scores one run of the benchmark: a master folder of produced
// workbooks against one dataset's ground truth.
type Evaluator struct {
	masterFolder string
	dataset      string
	opts         *Options
}

// NewEvaluator creates an evaluator for the produced workbooks under
// masterFolder, scored against the named dataset.
func NewEvaluator(masterFolder, dataset string, opts ...Option) *Evaluator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Evaluator{
		masterFolder: masterFolder,
		dataset:      dataset,
		opts:         o,
	}
}

// Run loads the dataset, evaluates every task in order, and returns the
// report. Tasks whose produced workbook is missing are recorded but not
// evaluated; tasks that error during comparison count as failed.
func (e *Evaluator) Run() (*Report, error) {
	tasks, err := LoadDataset(DatasetFile(e.opts.dataRoot, e.dataset))
	if err != nil {
		return nil, err
	}
	e.opts.logger.Info("evaluation started",
		zap.String("master_folder", e.masterFolder),
		zap.String("dataset", e.dataset),
		zap.Int("tasks", len(tasks)))
	if e.opts.filter != nil {
		kept, err := FilterTasks(tasks, e.opts.filter)
		if err != nil {
			return nil, err
		}
		e.opts.logger.Info("filter applied",
			zap.String("filter", e.opts.filter.String()),
			zap.Int("matched", len(kept)),
			zap.Int("total", len(tasks)))
		tasks = kept
	}

	report := &Report{
		Summary:      Summary{TotalTasks: len(tasks)},
		MissingFiles: []string{},
		Results:      []TaskResult{},
	}
	for i, task := range tasks {
		e.evaluateTask(task, report)
		if (i+1)%progressInterval == 0 {
			e.opts.logger.Info("progress",
				zap.Int("done", i+1),
				zap.Int("total", len(tasks)),
				zap.Int("passed", report.Summary.Passed))
		}
	}
	report.Summary.SuccessRate = successRate(report.Summary.Passed, report.Summary.Evaluated)
	e.opts.logger.Info("evaluation complete",
		zap.Int("evaluated", report.Summary.Evaluated),
		zap.Int("passed", report.Summary.Passed),
		zap.Int("failed", report.Summary.Failed),
		zap.Int("missing", report.Summary.MissingFiles),
		zap.Float64("success_rate", report.Summary.SuccessRate))
	return report, nil
}

// evaluateTask scores one task and appends its outcome to the report.
func (e *Evaluator) evaluateTask(task Task, report *Report) {
	procPath := ProducedPath(e.masterFolder, task.ID)
	if _, err := os.Stat(procPath); err != nil {
		report.Summary.MissingFiles++
		report.MissingFiles = append(report.MissingFiles, procPath)
		report.Results = append(report.Results, TaskResult{
			ID:              task.ID,
			InstructionType: task.InstructionType,
			Message:         "Output file not found",
		})
		e.opts.logger.Debug("output file missing",
			zap.String("task", string(task.ID)),
			zap.String("path", procPath))
		return
	}

	report.Summary.Evaluated++
	verdict, err := e.compareTask(task, procPath)
	if err != nil {
		// Errors fail the task without a message in the report.
		verdict = Verdict{}
		e.opts.logger.Warn("task comparison error",
			zap.String("task", string(task.ID)),
			zap.Error(err))
	}

	res := 0
	if verdict.Pass {
		res = 1
		report.Summary.Passed++
	} else {
		report.Summary.Failed++
	}
	report.Results = append(report.Results, TaskResult{
		ID:              task.ID,
		InstructionType: task.InstructionType,
		Result:          &res,
		Message:         verdict.Message,
	})
	e.opts.logger.Debug("task evaluated",
		zap.String("task", string(task.ID)),
		zap.Bool("pass", verdict.Pass),
		zap.String("message", verdict.Message))
}

// compareTask opens both workbooks and compares the task's answer range.
// Opening failures are failed verdicts; malformed answer positions are
// errors.
func (e *Evaluator) compareTask(task Task, procPath string) (Verdict, error) {
	// Conditional-formatting runs keep "CF" in their folder name; only
	// those have their fill and font colors checked.
	checkStyle := strings.Contains(procPath, "CF")

	gt, err := OpenWorkbook(AnswerPath(e.opts.dataRoot, e.dataset, task.ID))
	if err != nil {
		return Verdict{Message: err.Error()}, nil
	}
	defer gt.Close()

	proc, err := OpenWorkbook(procPath)
	if err != nil {
		return Verdict{Message: err.Error()}, nil
	}
	defer proc.Close()

	positions, err := ParseAnswerPosition(task.AnswerPosition, gt.FirstSheet())
	if err != nil {
		return Verdict{}, err
	}
	// Only the final comma-separated segment is compared. Multi-range
	// positions are rare in the datasets; ValidateDataset flags them.
	last := positions[len(positions)-1]
	return CompareRange(gt, proc, last.Sheet, last.Range, checkStyle)
}

// successRate is the percentage of evaluated tasks that passed, rounded to
// two decimal places, 0 when nothing was evaluated.
func successRate(passed, evaluated int) float64 {
	if evaluated == 0 {
		return 0
	}
	return roundTo(float64(passed)/float64(evaluated)*100, 2)
}
