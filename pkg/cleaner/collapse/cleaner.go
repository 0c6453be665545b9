package collapse

import (
	"strings"
	"time"
)

// Cleaner collapses repeated phrase runs in transcript text.
// It implements the cleaner.Cleaner interface.
//
// A Cleaner instance retains the stats of its last operation and is not
// safe for concurrent use; for concurrent callers use CollapseTokens,
// which is pure.
type Cleaner struct {
	config *Config
	stats  *Stats
}

// New creates a new Cleaner with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) *Cleaner {
	if config == nil {
		config = DefaultConfig()
	}
	return &Cleaner{
		config: config,
	}
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "collapse"
}

// Clean splits the input on whitespace, collapses repeated phrase runs,
// and joins the surviving tokens with single spaces. The only error
// condition is an invalid window configuration.
func (c *Cleaner) Clean(text string) (string, error) {
	result := c.CleanWithStats(text)
	if result.Error != nil {
		return "", result.Error
	}
	return result.Content, nil
}

// CleanWithStats performs collapsing and returns detailed stats.
func (c *Cleaner) CleanWithStats(text string) *Result {
	startTime := time.Now()
	result := &Result{
		Stats: NewStats(),
	}
	result.Stats.InputBytes = len(text)

	if err := c.config.Validate(); err != nil {
		result.Content = text
		result.Error = err
		result.Stats.OutputBytes = len(text)
		result.Stats.TotalDuration = time.Since(startTime)
		return result
	}

	tokenizeStart := time.Now()
	tokens := strings.Fields(text)
	result.Stats.TokenizeDuration = time.Since(tokenizeStart)
	result.Stats.InputTokens = len(tokens)

	scanStart := time.Now()
	kept := scan(tokens, c.config.MinWords, c.config.MaxWords, result.Stats)
	result.Stats.ScanDuration = time.Since(scanStart)

	result.Content = strings.Join(kept, " ")
	result.Stats.OutputTokens = len(kept)
	result.Stats.TokensRemoved = len(tokens) - len(kept)
	result.Stats.OutputBytes = len(result.Content)
	result.Stats.TotalDuration = time.Since(startTime)
	c.stats = result.Stats

	return result
}

// Stats returns the stats from the last Clean operation.
func (c *Cleaner) Stats() *Stats {
	return c.stats
}
