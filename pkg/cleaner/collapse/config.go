// Package collapse removes repeated phrase runs from transcript text.
// Overlapping caption cues frequently duplicate word runs ("caption
// stutter"); the collapser scans the token stream and keeps a single
// occurrence of each adjacent repeat, preserving reading order.
package collapse

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidBounds is returned when the window bounds do not satisfy
// MinWords >= 1 and MaxWords >= MinWords.
var ErrInvalidBounds = errors.New("invalid window bounds")

// validate checks Config structs. Safe for concurrent use.
var validate = validator.New()

// Config defines the phrase-length window for the collapser.
type Config struct {
	// MinWords is the shortest phrase length (in tokens) tested for
	// adjacent repeats. Must be at least 1.
	MinWords int `json:"min_words" yaml:"min_words" validate:"min=1"`

	// MaxWords is the longest phrase length tested. Longer windows are
	// tried first, so the largest repeating unit wins. Must be >= MinWords.
	MaxWords int `json:"max_words" yaml:"max_words" validate:"min=1,gtefield=MinWords"`
}

// DefaultConfig returns the window bounds that work well for
// auto-generated captions: phrases of 3 to 10 words.
func DefaultConfig() *Config {
	return &Config{
		MinWords: 3,
		MaxWords: 10,
	}
}

// PresetAggressive also collapses single-word and two-word stutter
// ("the the", "and so and so"). More likely to remove deliberate
// repetition, so only use it on noisy auto-caption output.
func PresetAggressive() *Config {
	return &Config{
		MinWords: 1,
		MaxWords: 10,
	}
}

// PresetConservative only collapses long phrase runs, leaving short
// repeats untouched. Use when the source may contain intentional
// repetition (lyrics, poetry, emphasis).
func PresetConservative() *Config {
	return &Config{
		MinWords: 5,
		MaxWords: 10,
	}
}

// Validate checks the window bounds. All errors wrap ErrInvalidBounds.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", ErrInvalidBounds, formatFieldError(verrs[0], c))
		}
		return fmt.Errorf("%w: %v", ErrInvalidBounds, err)
	}
	return nil
}

// formatFieldError turns a validator error into a readable message.
func formatFieldError(e validator.FieldError, c *Config) string {
	switch e.Field() {
	case "MinWords":
		return fmt.Sprintf("min_words must be at least 1, got %d", c.MinWords)
	case "MaxWords":
		if e.Tag() == "gtefield" {
			return fmt.Sprintf("max_words (%d) must be >= min_words (%d)", c.MaxWords, c.MinWords)
		}
		return fmt.Sprintf("max_words must be at least 1, got %d", c.MaxWords)
	default:
		return e.Error()
	}
}
