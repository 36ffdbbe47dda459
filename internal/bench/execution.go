package bench

import "time"

// Status of a single attempt.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusTimeout Status = "timeout"
)

// RunStatus of a whole execution.
type RunStatus string

const (
	RunSuccess  RunStatus = "success"
	RunDegraded RunStatus = "degraded"
	RunFailed   RunStatus = "failed"
)

// AttemptResult is the outcome of one model invocation for one instance.
// Error holds the failure detail and is set iff Status is not success.
// For timeouts Elapsed is recorded as the configured bound.
type AttemptResult struct {
	InstanceID   string        `json:"instance_id"`
	Attempt      int           `json:"attempt"`
	Output       string        `json:"output,omitempty"`
	Status       Status        `json:"status"`
	Elapsed      time.Duration `json:"elapsed_ns"`
	Error        string        `json:"error,omitempty"`
	InputTokens  int           `json:"input_tokens,omitempty"`
	OutputTokens int           `json:"output_tokens,omitempty"`
}

// Execution holds the selected attempt per instance, in definition order.
// It is built once by Run and never mutated afterwards.
type Execution struct {
	Definition *Definition
	Results    []AttemptResult
	Status     RunStatus
}

// runStatus derives the overall status: success when every selected result
// succeeded (vacuously for zero instances), failed when none did, degraded
// otherwise.
func runStatus(results []AttemptResult) RunStatus {
	succeeded := 0
	for _, r := range results {
		if r.Status == StatusSuccess {
			succeeded++
		}
	}
	switch {
	case succeeded == len(results):
		return RunSuccess
	case succeeded == 0:
		return RunFailed
	default:
		return RunDegraded
	}
}
