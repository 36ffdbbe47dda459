// Package report renders a stored run's report artifact for humans.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/VascoSch92/bench-lab/internal/artifact"
)

// Row is one (aggregator, key) pair of a rendered report.
type Row struct {
	Aggregator string  `json:"aggregator"`
	Key        string  `json:"key"`
	Value      float64 `json:"value"`
	Error      string  `json:"error,omitempty"`
}

// Generate reads the report artifact from runDir and writes it to w in the
// requested format: "table" (default), "markdown" or "json".
func Generate(runDir, format string, w io.Writer) error {
	rec, err := artifact.ReadReport(runDir)
	if err != nil {
		return err
	}
	rows := flatten(rec)

	switch format {
	case "markdown":
		return writeMarkdown(rec, rows, w)
	case "json":
		return writeJSON(rec, rows, w)
	case "", "table":
		return writeTable(rec, rows, w)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func flatten(rec *artifact.ReportRecord) []Row {
	var rows []Row
	for _, v := range rec.Values {
		if v.Failed() {
			rows = append(rows, Row{Aggregator: v.Name, Error: v.Error})
			continue
		}
		keys := make([]string, 0, len(v.Values))
		for k := range v.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, Row{Aggregator: v.Name, Key: k, Value: v.Values[k]})
		}
	}
	return rows
}

func writeTable(rec *artifact.ReportRecord, rows []Row, w io.Writer) error {
	fmt.Fprintf(w, "Benchmark: %s (%s)\n", rec.Benchmark, rec.Status)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "AGGREGATOR\tKEY\tVALUE")
	fmt.Fprintln(tw, strings.Repeat("-", 40))
	for _, r := range rows {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\terror\t%s\n", r.Aggregator, r.Error)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.4f\n", r.Aggregator, r.Key, r.Value)
	}
	return tw.Flush()
}

func writeMarkdown(rec *artifact.ReportRecord, rows []Row, w io.Writer) error {
	fmt.Fprintf(w, "## %s (%s)\n\n", rec.Benchmark, rec.Status)
	fmt.Fprintln(w, "| Aggregator | Key | Value |")
	fmt.Fprintln(w, "|---|---|---|")
	for _, r := range rows {
		if r.Error != "" {
			fmt.Fprintf(w, "| %s | error | %s |\n", r.Aggregator, r.Error)
			continue
		}
		fmt.Fprintf(w, "| %s | %s | %.4f |\n", r.Aggregator, r.Key, r.Value)
	}
	return nil
}

func writeJSON(rec *artifact.ReportRecord, rows []Row, w io.Writer) error {
	out := struct {
		Benchmark string `json:"benchmark"`
		Status    string `json:"status"`
		Rows      []Row  `json:"rows"`
	}{rec.Benchmark, string(rec.Status), rows}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
