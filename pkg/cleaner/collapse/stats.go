package collapse

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Stats captures metrics about what the collapser did.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes"`
	OutputBytes int `json:"output_bytes"`

	// Token counts
	InputTokens   int `json:"input_tokens"`
	OutputTokens  int `json:"output_tokens"`
	TokensRemoved int `json:"tokens_removed"`

	// Collapsed runs, keyed by phrase length in tokens.
	RunsByLength map[int]int `json:"runs_by_length"`

	// CyclesRemoved is the total number of extra phrase occurrences
	// dropped across all runs.
	CyclesRemoved int `json:"cycles_removed"`

	// Timing
	TokenizeDuration time.Duration `json:"tokenize_duration_ms"`
	ScanDuration     time.Duration `json:"scan_duration_ms"`
	TotalDuration    time.Duration `json:"total_duration_ms"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		RunsByLength: make(map[int]int),
	}
}

// RecordRun records one collapsed run of an n-token phrase that
// occurred repeats times in a row.
func (s *Stats) RecordRun(n, repeats int) {
	s.RunsByLength[n]++
	s.CyclesRemoved += repeats - 1
}

// TotalRuns returns the number of collapsed runs across all phrase lengths.
func (s *Stats) TotalRuns() int {
	total := 0
	for _, count := range s.RunsByLength {
		total += count
	}
	return total
}

// ReductionPercent returns the percentage of input tokens removed.
func (s *Stats) ReductionPercent() float64 {
	if s.InputTokens == 0 {
		return 0
	}
	return float64(s.InputTokens-s.OutputTokens) / float64(s.InputTokens) * 100
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Tokens: %d -> %d (%.1f%% reduction)\n",
		s.InputTokens, s.OutputTokens, s.ReductionPercent()))

	sb.WriteString(fmt.Sprintf("Runs collapsed: %d (%d cycles removed)\n",
		s.TotalRuns(), s.CyclesRemoved))

	if len(s.RunsByLength) > 0 {
		lengths := make([]int, 0, len(s.RunsByLength))
		for n := range s.RunsByLength {
			lengths = append(lengths, n)
		}
		sort.Ints(lengths)

		parts := make([]string, 0, len(lengths))
		for _, n := range lengths {
			parts = append(parts, fmt.Sprintf("%dw=%d", n, s.RunsByLength[n]))
		}
		sb.WriteString("Runs by phrase length: ")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Timing: tokenize=%v, scan=%v, total=%v\n",
		s.TokenizeDuration.Round(time.Microsecond),
		s.ScanDuration.Round(time.Microsecond),
		s.TotalDuration.Round(time.Microsecond)))

	return sb.String()
}

// Result contains the output of a collapsing operation.
type Result struct {
	// Content is the cleaned output, tokens joined by single spaces.
	Content string `json:"content"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats"`

	// Error is set when the configured window bounds are invalid; no
	// scanning is performed in that case and Content holds the input
	// unchanged.
	Error error `json:"error,omitempty"`
}
