// Package model provides adapters that expose external programs as
// benchmark models: a subprocess adapter and a docker container adapter.
//
// Both adapters speak the same contract: the instance input arrives via
// BENCHLAB_* environment variables (and stdin for the subprocess), and the
// program replies with either plain text or a JSON envelope that also
// carries token usage:
//
//	{"output": "...", "input_tokens": 12, "output_tokens": 34}
package model

import (
	"encoding/json"
	"strings"

	"github.com/VascoSch92/bench-lab/internal/bench"
)

type envelope struct {
	Output       string `json:"output"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// parseOutput interprets raw program output. JSON objects with an "output"
// field are treated as envelopes; anything else is plain text, trimmed of
// the trailing newline.
func parseOutput(raw []byte) bench.Output {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") {
		var env envelope
		if err := json.Unmarshal([]byte(trimmed), &env); err == nil && env.Output != "" {
			return bench.Output{
				Text:         env.Output,
				InputTokens:  env.InputTokens,
				OutputTokens: env.OutputTokens,
			}
		}
	}
	return bench.Output{Text: trimmed}
}

// instanceEnv builds the BENCHLAB_* environment shared by both adapters.
// Args keys are uppercased and prefixed so benchmarks can pass open
// configuration through to the program.
func instanceEnv(inst bench.Instance, args bench.Args) []string {
	env := []string{
		"BENCHLAB_INSTANCE_ID=" + inst.ID,
		"BENCHLAB_INPUT=" + inst.Input,
	}
	for k, v := range args {
		env = append(env, "BENCHLAB_ARG_"+strings.ToUpper(k)+"="+v)
	}
	return env
}
