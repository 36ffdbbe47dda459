package bench

import "errors"

// ErrUnknownMetric is returned at definition time when a metric name does
// not resolve in the registry. It is the only failure Run, Evaluate and
// Report never see: everything past construction is absorbed into result
// artifacts.
var ErrUnknownMetric = errors.New("unknown metric")
