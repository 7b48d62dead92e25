// ============================================================================
// primarray - Primitive Array Toolkit
// ============================================================================
//
// Package:     bench
// Description: Benchmark results and their table and JSON renderings
// Author:      msto63
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/msto63/primarray/foundation/utils/primarray"
)

// Stats aggregates the durations of one side of a measurement
type Stats struct {
	Count int
	Min   time.Duration
	Max   time.Duration
	Total time.Duration
}

func (s *Stats) add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Total += d
	s.Count++
}

// Mean returns the average duration, or 0 without samples
func (s Stats) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Result is the measurement of one operation on one kind
type Result struct {
	Kind      primarray.Kind
	Operation Operation
	Primitive Stats
	Boxed     Stats
	// Skipped holds the error code when the operation does not apply to Kind
	Skipped string
}

// Speedup is boxed mean over primitive mean. Values above 1 mean the
// primitive array was faster.
func (r Result) Speedup() float64 {
	p := r.Primitive.Mean()
	if p <= 0 || r.Skipped != "" {
		return 0
	}
	return float64(r.Boxed.Mean()) / float64(p)
}

// Report is the outcome of one benchmark run
type Report struct {
	RunID   string
	Started time.Time
	Elapsed time.Duration
	Size    int
	Rounds  int
	Seed    uint64
	Results []Result
}

// WriteTable renders the report as a titled text table
func (r *Report) WriteTable(w io.Writer, styled bool) error {
	title := fmt.Sprintf("primarray benchmark  run %s  size %d  rounds %d", r.RunID, r.Size, r.Rounds)
	if styled {
		title = TitleStyle.Render(title)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Operation", "Primitive min", "Primitive mean", "Boxed min", "Boxed mean", "Speedup"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, res := range r.Results {
		table.Append(res.row())
	}
	table.Render()

	footer := fmt.Sprintf("total %s", r.Elapsed.Round(time.Microsecond))
	if styled {
		footer = NoteStyle.Render(footer)
	}
	_, err := fmt.Fprintln(w, footer)
	return err
}

func (r Result) row() []string {
	if r.Skipped != "" {
		skipped := "skipped: " + r.Skipped
		return []string{r.Kind.String(), string(r.Operation), skipped, "", "", "", ""}
	}
	return []string{
		r.Kind.String(),
		string(r.Operation),
		formatDuration(r.Primitive.Min),
		formatDuration(r.Primitive.Mean()),
		formatDuration(r.Boxed.Min),
		formatDuration(r.Boxed.Mean()),
		strconv.FormatFloat(r.Speedup(), 'f', 2, 64) + "x",
	}
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

type jsonStats struct {
	MinNanos  int64 `json:"min_ns"`
	MeanNanos int64 `json:"mean_ns"`
	MaxNanos  int64 `json:"max_ns"`
}

type jsonResult struct {
	Kind      string     `json:"kind"`
	Operation string     `json:"operation"`
	Primitive *jsonStats `json:"primitive,omitempty"`
	Boxed     *jsonStats `json:"boxed,omitempty"`
	Speedup   float64    `json:"speedup,omitempty"`
	Skipped   string     `json:"skipped,omitempty"`
}

type jsonReport struct {
	RunID         string       `json:"run_id"`
	Started       time.Time    `json:"started"`
	ElapsedMillis float64      `json:"elapsed_ms"`
	Size          int          `json:"size"`
	Rounds        int          `json:"rounds"`
	Seed          uint64       `json:"seed"`
	Results       []jsonResult `json:"results"`
}

func toJSONStats(s Stats) *jsonStats {
	return &jsonStats{MinNanos: int64(s.Min), MeanNanos: int64(s.Mean()), MaxNanos: int64(s.Max)}
}

// WriteJSON writes the report as indented JSON. Durations are nanoseconds.
func (r *Report) WriteJSON(w io.Writer) error {
	out := jsonReport{
		RunID:         r.RunID,
		Started:       r.Started,
		ElapsedMillis: float64(r.Elapsed) / float64(time.Millisecond),
		Size:          r.Size,
		Rounds:        r.Rounds,
		Seed:          r.Seed,
		Results:       make([]jsonResult, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		jr := jsonResult{Kind: res.Kind.String(), Operation: string(res.Operation), Skipped: res.Skipped}
		if res.Skipped == "" {
			jr.Primitive = toJSONStats(res.Primitive)
			jr.Boxed = toJSONStats(res.Boxed)
			jr.Speedup = res.Speedup()
		}
		out.Results = append(out.Results, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
