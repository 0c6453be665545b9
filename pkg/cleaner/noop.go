package cleaner

// NoopCleaner passes text through without modification.
// Use this when the transcript is already clean, or when a pipeline
// slot requires a Cleaner but no collapsing is wanted.
type NoopCleaner struct{}

// NewNoop creates a new no-op cleaner.
func NewNoop() *NoopCleaner {
	return &NoopCleaner{}
}

// Clean returns the input unchanged.
func (c *NoopCleaner) Clean(text string) (string, error) {
	return text, nil
}

// Name returns the cleaner type.
func (c *NoopCleaner) Name() string {
	return "noop"
}
