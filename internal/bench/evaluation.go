package bench

// ScoredResult maps metric names to scores for one instance. A nil score
// means the metric could not be computed: either the selected attempt did
// not succeed, or the metric itself rejected the output.
type ScoredResult struct {
	InstanceID string              `json:"instance_id"`
	Scores     map[string]*float64 `json:"scores"`
	Result     *AttemptResult      `json:"-"`
}

// Evaluation holds one ScoredResult per instance, in definition order,
// plus the Execution it was derived from.
type Evaluation struct {
	Execution *Execution
	Results   []ScoredResult
}

// Evaluate applies every configured metric to each selected attempt.
// Non-success attempts score nil for every metric without invoking it;
// a metric failing on an output scores nil for that (instance, metric)
// pair and evaluation continues. Evaluate never fails and is
// deterministic in its inputs.
func (e *Execution) Evaluate() *Evaluation {
	d := e.Definition
	scored := make([]ScoredResult, len(e.Results))
	for i := range e.Results {
		res := &e.Results[i]
		inst := d.Instances[i]
		scores := make(map[string]*float64, len(d.MetricNames))
		for j, name := range d.MetricNames {
			if res.Status != StatusSuccess {
				scores[name] = nil
				continue
			}
			v, err := d.metrics[j](res.Output, inst)
			if err != nil {
				scores[name] = nil
				continue
			}
			value := v
			scores[name] = &value
		}
		scored[i] = ScoredResult{
			InstanceID: res.InstanceID,
			Scores:     scores,
			Result:     res,
		}
	}
	return &Evaluation{Execution: e, Results: scored}
}
