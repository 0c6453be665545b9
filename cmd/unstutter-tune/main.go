// unstutter-tune is a standalone CLI tool for tuning the repeat collapser
// window bounds against a sample transcript.
//
// Usage:
//
//	unstutter-tune [options] <file>
//
// Examples:
//
//	# Collapse a transcript and show stats
//	unstutter-tune transcript.txt
//
//	# Collapse with the aggressive preset
//	unstutter-tune -preset aggressive transcript.txt
//
//	# Custom window bounds
//	unstutter-tune -min 2 -max 6 transcript.txt
//
//	# Compare presets and window sweeps side by side
//	unstutter-tune -compare transcript.txt
//
//	# Show only stats, don't output content
//	unstutter-tune -stats-only transcript.txt
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/rjessup/unstutter/pkg/cleaner/collapse"
)

var (
	// Input options
	fileInput = flag.String("f", "", "read transcript from file (also accepted as positional arg)")

	// Config options
	preset   = flag.String("preset", "", "use preset: aggressive, conservative")
	minWords = flag.Int("min", 0, "shortest phrase length tested (overrides preset)")
	maxWords = flag.Int("max", 0, "longest phrase length tested (overrides preset)")

	// Output options
	outputFile = flag.String("o", "", "write cleaned output to file")
	statsOnly  = flag.Bool("stats-only", false, "only show stats, don't output content")
	jsonStats  = flag.Bool("json", false, "output stats as JSON")
	quiet      = flag.Bool("q", false, "quiet mode (no stats, only content)")

	// Compare mode
	compare = flag.Bool("compare", false, "compare presets and window sweeps")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "unstutter-tune - Tuning tool for the repeat collapser\n\n")
		fmt.Fprintf(os.Stderr, "Usage: unstutter-tune [options] <file>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  unstutter-tune transcript.txt\n")
		fmt.Fprintf(os.Stderr, "  unstutter-tune -preset aggressive transcript.txt\n")
		fmt.Fprintf(os.Stderr, "  unstutter-tune -min 2 -max 6 transcript.txt\n")
		fmt.Fprintf(os.Stderr, "  unstutter-tune -compare transcript.txt\n")
	}

	flag.Parse()

	// Get input source
	var text string
	var source string
	var err error

	if *fileInput != "" {
		text, err = readFile(*fileInput)
		source = *fileInput
	} else if flag.NArg() > 0 {
		text, err = readFile(flag.Arg(0))
		source = flag.Arg(0)
	} else {
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", readErr)
			os.Exit(1)
		}
		text = string(data)
		source = "stdin"
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(text) == 0 {
		fmt.Fprintf(os.Stderr, "Error: empty input\n")
		os.Exit(1)
	}

	// Compare mode
	if *compare {
		runComparison(text, source)
		return
	}

	// Build config
	cfg := buildConfig()

	// Run collapser
	c := collapse.New(cfg)
	result := c.CleanWithStats(text)
	if result.Error != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", result.Error)
		os.Exit(1)
	}

	// Output stats
	if !*quiet {
		if *jsonStats {
			outputJSONStats(result, source)
		} else {
			outputTextStats(result, source)
		}
	}

	// Output content
	if !*statsOnly {
		if *outputFile != "" {
			if err := os.WriteFile(*outputFile, []byte(result.Content), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
				os.Exit(1)
			}
			if !*quiet {
				fmt.Fprintf(os.Stderr, "\nWritten to %s\n", *outputFile)
			}
		} else if !*quiet {
			fmt.Println("\n--- Cleaned Transcript ---")
			fmt.Println(result.Content)
		} else {
			fmt.Println(result.Content)
		}
	}
}

func buildConfig() *collapse.Config {
	var cfg *collapse.Config

	// Start with preset or default
	switch *preset {
	case "aggressive":
		cfg = collapse.PresetAggressive()
	case "conservative":
		cfg = collapse.PresetConservative()
	default:
		cfg = collapse.DefaultConfig()
	}

	// Override with flags
	if *minWords > 0 {
		cfg.MinWords = *minWords
	}
	if *maxWords > 0 {
		cfg.MaxWords = *maxWords
	}

	return cfg
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}
	return string(data), nil
}

func outputTextStats(result *collapse.Result, source string) {
	fmt.Fprintf(os.Stderr, "\n=== Collapse Stats ===\n")
	fmt.Fprintf(os.Stderr, "Source: %s (%s)\n", source, humanize.Bytes(uint64(result.Stats.InputBytes)))
	fmt.Fprintf(os.Stderr, "%s", result.Stats.String())
}

func outputJSONStats(result *collapse.Result, source string) {
	stats := struct {
		Source  string          `json:"source"`
		Stats   *collapse.Stats `json:"stats"`
		Reduced float64         `json:"reduction_percent"`
	}{
		Source:  source,
		Stats:   result.Stats,
		Reduced: result.Stats.ReductionPercent(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(stats)
}

func runComparison(text string, source string) {
	configs := []struct {
		name string
		cfg  *collapse.Config
	}{
		{"default", collapse.DefaultConfig()},
		{"aggressive", collapse.PresetAggressive()},
		{"conservative", collapse.PresetConservative()},
		{"window 1..2", &collapse.Config{MinWords: 1, MaxWords: 2}},
		{"window 2..5", &collapse.Config{MinWords: 2, MaxWords: 5}},
		{"window 5..20", &collapse.Config{MinWords: 5, MaxWords: 20}},
	}

	inputTokens := int64(0)
	if r := collapse.New(collapse.DefaultConfig()).CleanWithStats(text); r.Error == nil {
		inputTokens = int64(r.Stats.InputTokens)
	}

	fmt.Printf("\n=== Window Comparison for %s ===\n", source)
	fmt.Printf("Input size: %s, %s tokens\n\n",
		humanize.Bytes(uint64(len(text))), humanize.Comma(inputTokens))
	fmt.Printf("%-14s %10s %8s %8s %8s %12s\n", "Config", "Tokens", "Runs", "Cycles", "Reduce%", "Time")
	fmt.Printf("%-14s %10s %8s %8s %8s %12s\n", "------", "------", "----", "------", "-------", "----")

	for _, p := range configs {
		c := collapse.New(p.cfg)
		result := c.CleanWithStats(text)
		if result.Error != nil {
			fmt.Printf("%-14s error: %v\n", p.name, result.Error)
			continue
		}

		fmt.Printf("%-14s %10s %8d %8d %7.1f%% %12v\n",
			p.name,
			humanize.Comma(int64(result.Stats.OutputTokens)),
			result.Stats.TotalRuns(),
			result.Stats.CyclesRemoved,
			result.Stats.ReductionPercent(),
			result.Stats.TotalDuration.Round(time.Microsecond))
	}

	fmt.Println()
}
