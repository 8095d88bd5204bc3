package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/localdev/statistics/pkg/stats"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type statReport struct {
	Value *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Error string   `json:"error,omitempty" yaml:"error,omitempty"`
}

type summaryReport struct {
	Count  int        `json:"count" yaml:"count"`
	Mean   statReport `json:"mean" yaml:"mean"`
	Median statReport `json:"median" yaml:"median"`
	Mode   statReport `json:"mode" yaml:"mode"`
}

func newStatReport(r stats.Result) statReport {
	if !r.OK() {
		return statReport{Error: r.Err.Error()}
	}
	v := r.Value
	return statReport{Value: &v}
}

// MarshalJSON writes NaN and infinities as strings, which encoding/json
// cannot represent as numbers.
func (r statReport) MarshalJSON() ([]byte, error) {
	type plain statReport
	if r.Value == nil || !(math.IsNaN(*r.Value) || math.IsInf(*r.Value, 0)) {
		return json.Marshal(plain(r))
	}
	return json.Marshal(struct {
		Value string `json:"value"`
	}{Value: strconv.FormatFloat(*r.Value, 'g', -1, 64)})
}

func (r statReport) String() string {
	if r.Value == nil {
		return "error: " + r.Error
	}
	return strconv.FormatFloat(*r.Value, 'g', -1, 64)
}

func writeSummary(w io.Writer, format string, summary stats.Summary) error {
	report := summaryReport{
		Count:  summary.Count,
		Mean:   newStatReport(summary.Mean),
		Median: newStatReport(summary.Median),
		Mode:   newStatReport(summary.Mode),
	}

	switch format {
	case outputText:
		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
		fmt.Fprintf(tw, "count:\t%d\n", report.Count)
		fmt.Fprintf(tw, "mean:\t%s\n", report.Mean)
		fmt.Fprintf(tw, "median:\t%s\n", report.Median)
		fmt.Fprintf(tw, "mode:\t%s\n", report.Mode)
		return tw.Flush()
	case outputJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, outputText, outputJSON, outputYAML)
	}
}
