package bench

// Instance is one task unit to be solved by the model under test.
// Instances are values: created once at definition time and never modified.
type Instance struct {
	ID       string            `json:"id" yaml:"id"`
	Input    string            `json:"input" yaml:"input"`
	Expected string            `json:"expected,omitempty" yaml:"expected,omitempty"`
	Payload  map[string]string `json:"payload,omitempty" yaml:"payload,omitempty"`
}
