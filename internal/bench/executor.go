package bench

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Run invokes the model once per (instance, attempt) pair and reduces each
// instance's attempts to a single selected AttemptResult. Instances run
// concurrently up to Params.Parallel; Results always comes back in
// definition order regardless of completion order. Run never fails: model
// errors, panics and timeouts are recorded in the results.
func (d *Definition) Run(ctx context.Context, m Model, args Args) *Execution {
	results := make([]AttemptResult, len(d.Instances))
	runIndexed(d.Params.Parallel, len(d.Instances), func(i int) {
		results[i] = d.runInstance(ctx, m, d.Instances[i], args)
	})
	return &Execution{
		Definition: d,
		Results:    results,
		Status:     runStatus(results),
	}
}

// runInstance walks the attempt budget for one instance: attempts are
// issued in order and stop at the first success. The selected result is
// the first success, or the last attempt once the budget is exhausted.
func (d *Definition) runInstance(ctx context.Context, m Model, inst Instance, args Args) AttemptResult {
	var last AttemptResult
	for attempt := 1; attempt <= d.Params.NAttempts; attempt++ {
		last = invoke(ctx, m, inst, args, attempt, d.Params.Timeout)
		if last.Status == StatusSuccess {
			return last
		}
	}
	return last
}

// invoke runs a single attempt under the per-attempt time bound. A hung
// invocation is abandoned at the bound, not awaited, so one stuck model
// call cannot stall the run; its eventual result is discarded.
func invoke(ctx context.Context, m Model, inst Instance, args Args, attempt int, timeout time.Duration) AttemptResult {
	res := AttemptResult{InstanceID: inst.ID, Attempt: attempt}

	type outcome struct {
		out Output
		err error
	}
	done := make(chan outcome, 1)

	ictx := ctx
	cancel := func() {}
	if timeout > 0 {
		ictx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	start := time.Now()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("model panic: %v", r)}
			}
		}()
		out, err := m.Invoke(ictx, inst, args)
		done <- outcome{out: out, err: err}
	}()

	select {
	case o := <-done:
		res.Elapsed = time.Since(start)
		if o.err != nil {
			res.Status = StatusError
			res.Error = o.err.Error()
			return res
		}
		res.Status = StatusSuccess
		res.Output = o.out.Text
		res.InputTokens = o.out.InputTokens
		res.OutputTokens = o.out.OutputTokens
		return res
	case <-ictx.Done():
		if errors.Is(ictx.Err(), context.DeadlineExceeded) {
			// No partial output is retained; elapsed is the bound.
			res.Status = StatusTimeout
			res.Elapsed = timeout
			res.Error = fmt.Sprintf("timeout after %s", timeout)
			return res
		}
		res.Status = StatusError
		res.Elapsed = time.Since(start)
		res.Error = ictx.Err().Error()
		return res
	}
}
