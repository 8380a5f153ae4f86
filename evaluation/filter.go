package evaluation

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// TaskFilter selects tasks by a boolean expression over task fields, e.g.
// `instruction_type == "cell_filling"` or `id startsWith "10"`. Unknown
// variables are allowed and evaluate to nil, so a filter naming a field a
// dataset lacks simply matches nothing.
type TaskFilter struct {
	source  string
	program *vm.Program
}

// NewTaskFilter compiles a filter expression.
func NewTaskFilter(source string) (*TaskFilter, error) {
	program, err := expr.Compile(source,
		expr.Env(filterEnv(Task{})),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", source, err)
	}
	return &TaskFilter{source: source, program: program}, nil
}

// Matches reports whether the task satisfies the filter expression.
func (f *TaskFilter) Matches(task Task) (bool, error) {
	out, err := expr.Run(f.program, filterEnv(task))
	if err != nil {
		return false, fmt.Errorf("run filter %q: %w", f.source, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("filter %q evaluated to %T, want bool", f.source, out)
	}
	return ok, nil
}

// String returns the filter's source expression.
func (f *TaskFilter) String() string {
	return f.source
}

// filterEnv exposes a task's fields under their dataset names.
func filterEnv(task Task) map[string]any {
	return map[string]any{
		"id":               string(task.ID),
		"instruction_type": task.InstructionType,
		"answer_position":  task.AnswerPosition,
	}
}

// FilterTasks returns the tasks matching the filter, all tasks when the
// filter is nil.
func FilterTasks(tasks []Task, filter *TaskFilter) ([]Task, error) {
	if filter == nil {
		return tasks, nil
	}
	kept := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		ok, err := filter.Matches(task)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, task)
		}
	}
	return kept, nil
}
