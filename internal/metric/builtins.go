package metric

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/VascoSch92/bench-lab/internal/bench"
)

// ExactMatch scores 1 when the expected answer appears in the output as a
// whole word, case-insensitively. Boolean metric: scores are 0 or 1.
func ExactMatch(output string, inst bench.Instance) (float64, error) {
	if inst.Expected == "" {
		return 0, fmt.Errorf("instance %q has no expected answer", inst.ID)
	}
	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(inst.Expected) + `\b`)
	if err != nil {
		return 0, fmt.Errorf("compiling match pattern: %w", err)
	}
	if pattern.MatchString(output) {
		return 1, nil
	}
	return 0, nil
}

// Contains scores 1 when the expected answer appears anywhere in the
// output, case-insensitively.
func Contains(output string, inst bench.Instance) (float64, error) {
	if inst.Expected == "" {
		return 0, fmt.Errorf("instance %q has no expected answer", inst.ID)
	}
	if strings.Contains(strings.ToLower(output), strings.ToLower(inst.Expected)) {
		return 1, nil
	}
	return 0, nil
}

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// NumericDiff scores the absolute difference between the first number in
// the output and the expected answer. Regression metric: lower is better,
// 0 is an exact numerical match. Fails when either side holds no number.
func NumericDiff(output string, inst bench.Instance) (float64, error) {
	want, err := strconv.ParseFloat(strings.TrimSpace(inst.Expected), 64)
	if err != nil {
		return 0, fmt.Errorf("instance %q: expected answer %q is not numeric", inst.ID, inst.Expected)
	}
	raw := numberPattern.FindString(output)
	if raw == "" {
		return 0, fmt.Errorf("no number found in output")
	}
	got, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", raw, err)
	}
	return math.Abs(got - want), nil
}
