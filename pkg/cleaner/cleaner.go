// Package cleaner provides interfaces and implementations for cleaning
// transcript text. Cleaners transform raw caption text into a deduplicated
// form suitable for downstream consumption.
package cleaner

// Cleaner transforms transcript text into a cleaned format.
// The default implementation collapses repeated phrase runs left behind
// by overlapping caption cues.
type Cleaner interface {
	// Clean transforms the input text into a cleaned format.
	Clean(text string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
