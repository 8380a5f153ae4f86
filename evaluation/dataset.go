package evaluation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TaskID identifies a benchmark task. Dataset files carry ids as JSON
// strings or numbers; both decode to the string form used in paths.
type TaskID string

// UnmarshalJSON accepts a JSON string or number.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("task id %s: %w", data, err)
	}
	*id = TaskID(n.String())
	return nil
}

// Task is one benchmark entry: an instruction category and the answer
// position naming where the result must appear.
type Task struct {
	ID              TaskID `json:"id"`
	InstructionType string `json:"instruction_type"`
	AnswerPosition  string `json:"answer_position"`
}

// LoadDataset reads a dataset file, a JSON array of tasks.
func LoadDataset(path string) ([]Task, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", path, err)
	}
	defer f.Close()

	var tasks []Task
	if err := json.NewDecoder(f).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", path, err)
	}
	return tasks, nil
}

// DatasetFile returns the path of a dataset's task listing.
func DatasetFile(dataRoot, dataset string) string {
	return filepath.Join(dataRoot, dataset, "dataset.json")
}

// ProducedPath returns where a run places its output workbook for a task.
func ProducedPath(masterFolder string, id TaskID) string {
	return filepath.Join(masterFolder, fmt.Sprintf("spreadsheet_bench_%s_run_1", id), "output_ooxml.xlsx")
}

// AnswerPath returns the ground-truth workbook path for a task.
func AnswerPath(dataRoot, dataset string, id TaskID) string {
	return filepath.Join(dataRoot, dataset, "spreadsheet", string(id), fmt.Sprintf("1_%s_answer.xlsx", id))
}
