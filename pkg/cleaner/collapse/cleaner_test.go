package collapse

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("nil config uses default", func(t *testing.T) {
		c := New(nil)
		if c == nil {
			t.Fatal("expected non-nil cleaner")
		}
		if c.config == nil {
			t.Fatal("expected non-nil config")
		}
		if c.config.MinWords != 3 || c.config.MaxWords != 10 {
			t.Errorf("expected default bounds 3..10, got %d..%d",
				c.config.MinWords, c.config.MaxWords)
		}
	})

	t.Run("custom config is used", func(t *testing.T) {
		c := New(&Config{MinWords: 1, MaxWords: 4})
		if c.config.MinWords != 1 || c.config.MaxWords != 4 {
			t.Errorf("expected bounds 1..4, got %d..%d",
				c.config.MinWords, c.config.MaxWords)
		}
	})
}

func TestName(t *testing.T) {
	c := New(nil)
	if c.Name() != "collapse" {
		t.Errorf("expected name 'collapse', got '%s'", c.Name())
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		config *Config
		want   string
	}{
		{
			name:   "collapses duplicated caption run",
			text:   "and then we went and then we went to the store",
			config: &Config{MinWords: 3, MaxWords: 10},
			want:   "and then we went to the store",
		},
		{
			name:   "clean text passes through",
			text:   "nothing here repeats at all",
			config: &Config{MinWords: 1, MaxWords: 10},
			want:   "nothing here repeats at all",
		},
		{
			name:   "whitespace is normalized to single spaces",
			text:   "one\ttwo\n three   four",
			config: &Config{MinWords: 3, MaxWords: 10},
			want:   "one two three four",
		},
		{
			name:   "empty input",
			text:   "",
			config: &Config{MinWords: 3, MaxWords: 10},
			want:   "",
		},
		{
			name:   "whitespace-only input",
			text:   "  \n\t ",
			config: &Config{MinWords: 3, MaxWords: 10},
			want:   "",
		},
		{
			name:   "triple cycle collapses to one",
			text:   "row your boat row your boat row your boat",
			config: &Config{MinWords: 1, MaxWords: 10},
			want:   "row your boat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.config)
			got, err := c.Clean(tt.text)
			if err != nil {
				t.Fatalf("Clean() error = %v, want nil", err)
			}
			if got != tt.want {
				t.Errorf("Clean() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClean_InvalidConfig(t *testing.T) {
	c := New(&Config{MinWords: 0, MaxWords: 10})

	_, err := c.Clean("some input text")
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	if !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("expected ErrInvalidBounds, got %v", err)
	}
}

func TestCleanWithStats(t *testing.T) {
	c := New(&Config{MinWords: 2, MaxWords: 5})

	// One run of a 2-word phrase repeated three times, plus a tail.
	result := c.CleanWithStats("over here over here over here please")

	if result.Error != nil {
		t.Fatalf("unexpected error: %v", result.Error)
	}
	if result.Content != "over here please" {
		t.Errorf("Content = %q, want %q", result.Content, "over here please")
	}

	s := result.Stats
	if s.InputTokens != 7 {
		t.Errorf("InputTokens = %d, want 7", s.InputTokens)
	}
	if s.OutputTokens != 3 {
		t.Errorf("OutputTokens = %d, want 3", s.OutputTokens)
	}
	if s.TokensRemoved != 4 {
		t.Errorf("TokensRemoved = %d, want 4", s.TokensRemoved)
	}
	if s.RunsByLength[2] != 1 {
		t.Errorf("RunsByLength[2] = %d, want 1", s.RunsByLength[2])
	}
	if s.CyclesRemoved != 2 {
		t.Errorf("CyclesRemoved = %d, want 2", s.CyclesRemoved)
	}
}

func TestCleanWithStats_InvalidConfig(t *testing.T) {
	c := New(&Config{MinWords: 4, MaxWords: 2})

	result := c.CleanWithStats("input stays put")
	if result.Error == nil {
		t.Fatal("expected error in result")
	}
	if !errors.Is(result.Error, ErrInvalidBounds) {
		t.Errorf("expected ErrInvalidBounds, got %v", result.Error)
	}
	if result.Content != "input stays put" {
		t.Errorf("Content = %q, want original input", result.Content)
	}
}

func TestStatsAccessor(t *testing.T) {
	c := New(nil)
	if c.Stats() != nil {
		t.Error("expected nil stats before first Clean")
	}

	if _, err := c.Clean("a few plain words"); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if c.Stats() == nil {
		t.Error("expected stats after Clean")
	}
}
