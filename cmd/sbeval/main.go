// Package main provides the CLI entry point for sbeval, the
// SpreadsheetBench evaluator.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pwang724/SpreadsheetBench/evaluation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	masterFolder string
	dataset      string
	dataRoot     string
	outputDir    string
	filterExpr   string
	logLevel     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sbeval",
		Short: "Evaluate generated spreadsheets against SpreadsheetBench ground truth",
	}
	rootCmd.PersistentFlags().StringVar(&dataset, "dataset", "all_data_912", "Dataset name under the data root")
	rootCmd.PersistentFlags().StringVar(&dataRoot, "data-root", "../data", "Directory holding the benchmark datasets")
	rootCmd.PersistentFlags().StringVar(&filterExpr, "filter", "", `Task filter expression, e.g. 'instruction_type == "cell_filling"'`)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate one run's output workbooks and write a JSON report",
		RunE:  runEvaluation,
	}
	runCmd.Flags().StringVar(&masterFolder, "master-folder", "", "Folder holding the run's output workbooks (required)")
	runCmd.Flags().StringVar(&outputDir, "output-dir", "outputs", "Directory for the JSON report")
	runCmd.MarkFlagRequired("master-folder")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a dataset for problems without evaluating anything",
		RunE:  runValidation,
	}

	rootCmd.AddCommand(runCmd, validateCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runEvaluation(cmd *cobra.Command, args []string) error {
	logger, err := buildLogger(logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	master, err := filepath.Abs(masterFolder)
	if err != nil {
		return fmt.Errorf("resolve master folder: %w", err)
	}
	root, err := filepath.Abs(dataRoot)
	if err != nil {
		return fmt.Errorf("resolve data root: %w", err)
	}

	opts := []evaluation.Option{
		evaluation.WithDataRoot(root),
		evaluation.WithLogger(logger),
	}
	if filterExpr != "" {
		filter, err := evaluation.NewTaskFilter(filterExpr)
		if err != nil {
			return err
		}
		opts = append(opts, evaluation.WithFilter(filter))
	}

	report, err := evaluation.NewEvaluator(master, dataset, opts...).Run()
	if err != nil {
		return err
	}

	path := evaluation.DefaultReportPath(outputDir, master)
	if err := report.Save(path); err != nil {
		return err
	}
	report.WriteSummary(os.Stdout)
	fmt.Printf("\nResults saved to %s\n", path)
	return nil
}

func runValidation(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(dataRoot)
	if err != nil {
		return fmt.Errorf("resolve data root: %w", err)
	}
	tasks, err := evaluation.LoadDataset(evaluation.DatasetFile(root, dataset))
	if err != nil {
		return err
	}
	if filterExpr != "" {
		filter, err := evaluation.NewTaskFilter(filterExpr)
		if err != nil {
			return err
		}
		if tasks, err = evaluation.FilterTasks(tasks, filter); err != nil {
			return err
		}
	}

	issues := evaluation.ValidateDataset(tasks, root, dataset)
	errors := 0
	for _, issue := range issues {
		fmt.Println(issue)
		if issue.Severity == evaluation.SeverityError {
			errors++
		}
	}
	fmt.Printf("checked %d tasks: %d errors, %d warnings\n", len(tasks), errors, len(issues)-errors)
	if errors > 0 {
		return fmt.Errorf("%d dataset errors", errors)
	}
	return nil
}

// buildLogger builds a console logger writing to stderr at the given
// level, so log lines never mix into the report summary on stdout.
func buildLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "lvl",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(os.Stderr),
		lvl,
	)
	return zap.New(core), nil
}
