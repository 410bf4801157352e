// Package report writes a YAML summary of one tool invocation.
package report

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// GraphSection describes the loaded catalog.
type GraphSection struct {
	Input         string `yaml:"input"`
	Actors        int    `yaml:"actors"`
	Credits       int    `yaml:"credits"`
	Movies        int    `yaml:"movies"`
	Links         int    `yaml:"links"`
	FutureCredits int    `yaml:"future_credits,omitempty"`
	SkippedRows   int    `yaml:"skipped_rows"`
	ReferenceYear int    `yaml:"reference_year"`
}

// QueryCounts tallies the outcomes of one query kind.
type QueryCounts struct {
	Total   int `yaml:"total"`
	Found   int `yaml:"found"`
	Empty   int `yaml:"empty"`
	Unknown int `yaml:"unknown_actor,omitempty"`
}

// ForestSection describes a computed spanning forest.
type ForestSection struct {
	Method string `yaml:"method"`
	Edges  int    `yaml:"edges"`
	Trees  int    `yaml:"trees"`
	Nodes  int    `yaml:"nodes"`
	Weight int64  `yaml:"weight"`
}

// Report is the run summary.
type Report struct {
	RunID     string                  `yaml:"run_id"`
	Command   string                  `yaml:"command"`
	StartedAt time.Time               `yaml:"started_at"`
	Duration  string                  `yaml:"duration"`
	Graph     *GraphSection           `yaml:"graph,omitempty"`
	Queries   map[string]*QueryCounts `yaml:"queries,omitempty"`
	Forest    *ForestSection          `yaml:"forest,omitempty"`
	HaltedAt  string                  `yaml:"halted_at,omitempty"`
}

// New starts a report for command.
func New(runID, command string, started time.Time) *Report {
	return &Report{
		RunID:     runID,
		Command:   command,
		StartedAt: started.UTC(),
		Queries:   make(map[string]*QueryCounts),
	}
}

// Count returns the tally for kind, creating it on first use.
func (r *Report) Count(kind string) *QueryCounts {
	c, ok := r.Queries[kind]
	if !ok {
		c = &QueryCounts{}
		r.Queries[kind] = c
	}

	return c
}

// Finish stamps the elapsed time since StartedAt.
func (r *Report) Finish(now time.Time) {
	r.Duration = now.Sub(r.StartedAt).Round(time.Millisecond).String()
}

// Write marshals the report to path.
func (r *Report) Write(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("report: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}

	return nil
}

// Read loads a report written by Write.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: read %s: %w", path, err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("report: parse %s: %w", path, err)
	}

	return &r, nil
}
