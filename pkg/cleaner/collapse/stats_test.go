package collapse

import (
	"strings"
	"testing"
)

func TestStats_RecordRun(t *testing.T) {
	s := NewStats()

	s.RecordRun(3, 2) // one extra cycle
	s.RecordRun(3, 4) // three extra cycles
	s.RecordRun(5, 2)

	if s.RunsByLength[3] != 2 {
		t.Errorf("RunsByLength[3] = %d, want 2", s.RunsByLength[3])
	}
	if s.RunsByLength[5] != 1 {
		t.Errorf("RunsByLength[5] = %d, want 1", s.RunsByLength[5])
	}
	if s.TotalRuns() != 3 {
		t.Errorf("TotalRuns() = %d, want 3", s.TotalRuns())
	}
	if s.CyclesRemoved != 5 {
		t.Errorf("CyclesRemoved = %d, want 5", s.CyclesRemoved)
	}
}

func TestStats_ReductionPercent(t *testing.T) {
	tests := []struct {
		name   string
		input  int
		output int
		want   float64
	}{
		{"half removed", 100, 50, 50},
		{"nothing removed", 80, 80, 0},
		{"empty input", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStats()
			s.InputTokens = tt.input
			s.OutputTokens = tt.output
			if got := s.ReductionPercent(); got != tt.want {
				t.Errorf("ReductionPercent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStats_String(t *testing.T) {
	s := NewStats()
	s.InputTokens = 10
	s.OutputTokens = 6
	s.RecordRun(2, 3)

	out := s.String()
	for _, want := range []string{"10 -> 6", "40.0% reduction", "2w=1", "2 cycles removed"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() = %q, missing %q", out, want)
		}
	}
}
