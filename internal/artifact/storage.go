package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	ExecutionFile  = "execution.json"
	EvaluationFile = "evaluation.json"
	ReportFile     = "report.json"
)

// CreateRunDir makes a fresh timestamped run directory under baseDir and
// repoints the "latest" symlink at it.
func CreateRunDir(baseDir string) (string, error) {
	runsDir := filepath.Join(baseDir, "runs")
	stamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	runDir := filepath.Join(runsDir, stamp)
	runDir, err := filepath.Abs(runDir)
	if err != nil {
		return "", fmt.Errorf("resolving run dir: %w", err)
	}
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("creating run dir: %w", err)
	}
	latest := filepath.Join(baseDir, "latest")
	os.Remove(latest)
	if err := os.Symlink(runDir, latest); err != nil {
		return "", fmt.Errorf("creating latest symlink: %w", err)
	}
	return runDir, nil
}

func WriteExecution(runDir string, rec *ExecutionRecord) error {
	return writeJSON(filepath.Join(runDir, ExecutionFile), rec)
}

func ReadExecution(runDir string) (*ExecutionRecord, error) {
	var rec ExecutionRecord
	if err := readJSON(filepath.Join(runDir, ExecutionFile), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func WriteEvaluation(runDir string, rec *EvaluationRecord) error {
	return writeJSON(filepath.Join(runDir, EvaluationFile), rec)
}

func ReadEvaluation(runDir string) (*EvaluationRecord, error) {
	var rec EvaluationRecord
	if err := readJSON(filepath.Join(runDir, EvaluationFile), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func WriteReport(runDir string, rec *ReportRecord) error {
	return writeJSON(filepath.Join(runDir, ReportFile), rec)
}

func ReadReport(runDir string) (*ReportRecord, error) {
	var rec ReportRecord
	if err := readJSON(filepath.Join(runDir, ReportFile), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating artifact dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, data, 0o644)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
