package bench

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

// AggregateValue is one aggregator's computed statistic. A non-empty Error
// marks an error-kind value: the aggregator failed but the report was
// still produced.
type AggregateValue struct {
	Name   string             `json:"name"`
	Values map[string]float64 `json:"values,omitempty"`
	Error  string             `json:"error,omitempty"`
}

func (v AggregateValue) Failed() bool {
	return v.Error != ""
}

// Report is the terminal artifact: the aggregate values in definition
// order plus the Evaluation they were computed from.
type Report struct {
	Evaluation *Evaluation
	Values     []AggregateValue
}

// Report invokes every configured aggregator in definition order. One
// aggregator failing (error or panic) does not prevent the others from
// running; the failure becomes an error-kind AggregateValue.
func (ev *Evaluation) Report() *Report {
	d := ev.Execution.Definition
	values := make([]AggregateValue, 0, len(d.Aggregators))
	for _, agg := range d.Aggregators {
		values = append(values, runAggregator(agg, ev))
	}
	return &Report{Evaluation: ev, Values: values}
}

func runAggregator(agg Aggregator, ev *Evaluation) (val AggregateValue) {
	val.Name = agg.Name()
	defer func() {
		if r := recover(); r != nil {
			val.Values = nil
			val.Error = fmt.Sprintf("aggregator panic: %v", r)
		}
	}()
	vals, err := agg.Aggregate(ev)
	if err != nil {
		val.Error = err.Error()
		return val
	}
	val.Values = vals
	return val
}

// Summary renders a human-readable digest of the report. Failure counts
// are always shown, even when every instance failed.
func (r *Report) Summary() string {
	exec := r.Evaluation.Execution

	counts := map[Status]int{}
	for _, res := range exec.Results {
		counts[res.Status]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Benchmark: %s\n", exec.Definition.Name)
	fmt.Fprintf(&b, "Status: %s (%d instances: %d success, %d error, %d timeout)\n\n",
		exec.Status, len(exec.Results),
		counts[StatusSuccess], counts[StatusError], counts[StatusTimeout])

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "AGGREGATOR\tKEY\tVALUE")
	for _, v := range r.Values {
		if v.Failed() {
			fmt.Fprintf(tw, "%s\terror\t%s\n", v.Name, v.Error)
			continue
		}
		keys := make([]string, 0, len(v.Values))
		for k := range v.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) == 0 {
			fmt.Fprintf(tw, "%s\t-\t-\n", v.Name)
		}
		for _, k := range keys {
			fmt.Fprintf(tw, "%s\t%s\t%.4f\n", v.Name, k, v.Values[k])
		}
	}
	tw.Flush()
	return b.String()
}
