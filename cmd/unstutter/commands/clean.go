package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rjessup/unstutter/internal/logger"
	"github.com/rjessup/unstutter/internal/output"
	"github.com/rjessup/unstutter/pkg/cleaner/collapse"
)

// wrappedResult wraps cleaned text with metadata.
type wrappedResult struct {
	Metadata resultMetadata `json:"_metadata" yaml:"_metadata"`
	Text     string         `json:"text" yaml:"text"`
}

type resultMetadata struct {
	Source        string `json:"source" yaml:"source"`
	CleanedAt     string `json:"cleaned_at" yaml:"cleaned_at"`
	MinWords      int    `json:"min_words" yaml:"min_words"`
	MaxWords      int    `json:"max_words" yaml:"max_words"`
	InputTokens   int    `json:"input_tokens" yaml:"input_tokens"`
	OutputTokens  int    `json:"output_tokens" yaml:"output_tokens"`
	CyclesRemoved int    `json:"cycles_removed" yaml:"cycles_removed"`
	DurationMs    int64  `json:"duration_ms" yaml:"duration_ms"`
}

var cleanCmd = &cobra.Command{
	Use:   "clean [file]",
	Short: "Collapse repeated phrase runs in a transcript",
	Long: `Clean transcript text by collapsing adjacent repeated phrases.

Reads from the given file, or from stdin when no file is provided.
Phrases of --min-words to --max-words tokens are tested for adjacent
repeats; the longest repeating unit wins and is kept once.

Examples:
  # Clean a file with the default 3..10 word window
  unstutter clean transcript.txt

  # Catch single-word stutter as well
  unstutter clean --preset aggressive transcript.txt

  # Write JSON with metadata to a file
  unstutter clean --format json -o cleaned.json transcript.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()

	// Window settings
	flags.Int("min-words", 3, "shortest phrase length tested for repeats")
	flags.Int("max-words", 10, "longest phrase length tested for repeats")
	flags.String("preset", "", "window preset: aggressive, conservative")

	// Output settings
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "text", "output format: text, json, jsonl, yaml")
	flags.Bool("include-metadata", true, "wrap structured output with a _metadata key (use --include-metadata=false to disable)")
	flags.Bool("stats", false, "print collapsing stats to stderr")

	// Bind to viper so the config file and env vars can set defaults
	_ = viper.BindPFlag("min_words", flags.Lookup("min-words"))
	_ = viper.BindPFlag("max_words", flags.Lookup("max-words"))
	_ = viper.BindPFlag("preset", flags.Lookup("preset"))
}

func runClean(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	// Read input
	text, source, err := readInput(args)
	if err != nil {
		logError("%v", err)
		return err
	}
	logger.Debug("input read", "source", source, "bytes", len(text))

	// Build window config
	cfg, err := buildWindowConfig(cmd)
	if err != nil {
		logError("%v", err)
		return err
	}
	logger.Debug("window config", "min_words", cfg.MinWords, "max_words", cfg.MaxWords)

	// Run the collapser
	c := collapse.New(cfg)
	result := c.CleanWithStats(text)
	if result.Error != nil {
		logError("%v", result.Error)
		return result.Error
	}
	logger.Debug("collapse complete",
		"input_tokens", result.Stats.InputTokens,
		"output_tokens", result.Stats.OutputTokens,
		"runs", result.Stats.TotalRuns())

	// Stats to stderr
	showStats, _ := cmd.Flags().GetBool("stats")
	if showStats {
		logInfo("\n=== Collapse Stats ===\nSource: %s\n%s", source, result.Stats.String())
	}

	// Destination
	out := os.Stdout
	if outputPath, _ := cmd.Flags().GetString("output"); outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			logError("creating output file: %v", err)
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	return writeResult(cmd, out, source, cfg, result)
}

// readInput returns the transcript text and a name for its source.
func readInput(args []string) (string, string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "stdin", nil
}

// buildWindowConfig resolves preset, config file, and explicit flags into
// a collapse.Config. Explicit flags win over the preset.
func buildWindowConfig(cmd *cobra.Command) (*collapse.Config, error) {
	var preset *collapse.Config
	switch name := viper.GetString("preset"); name {
	case "":
	case "aggressive":
		preset = collapse.PresetAggressive()
	case "conservative":
		preset = collapse.PresetConservative()
	default:
		return nil, fmt.Errorf("unknown preset: %s", name)
	}

	cfg := collapse.DefaultConfig()
	if preset != nil {
		cfg = preset
	}

	// Explicit flags (and, without a preset, config file / env values)
	// override the preset bounds.
	if preset == nil || cmd.Flags().Changed("min-words") {
		cfg.MinWords = viper.GetInt("min_words")
	}
	if preset == nil || cmd.Flags().Changed("max-words") {
		cfg.MaxWords = viper.GetInt("max_words")
	}

	return cfg, nil
}

// writeResult emits the cleaned text in the requested format.
func writeResult(cmd *cobra.Command, out io.Writer, source string, cfg *collapse.Config, result *collapse.Result) error {
	format, _ := cmd.Flags().GetString("format")

	if format == "text" {
		_, err := fmt.Fprintln(out, result.Content)
		return err
	}

	writer, err := output.NewWriter(out, output.Format(format))
	if err != nil {
		logError("%v", err)
		return err
	}

	includeMetadata, _ := cmd.Flags().GetBool("include-metadata")
	var payload any
	if includeMetadata {
		payload = wrappedResult{
			Metadata: resultMetadata{
				Source:        source,
				CleanedAt:     time.Now().UTC().Format(time.RFC3339),
				MinWords:      cfg.MinWords,
				MaxWords:      cfg.MaxWords,
				InputTokens:   result.Stats.InputTokens,
				OutputTokens:  result.Stats.OutputTokens,
				CyclesRemoved: result.Stats.CyclesRemoved,
				DurationMs:    result.Stats.TotalDuration.Milliseconds(),
			},
			Text: result.Content,
		}
	} else {
		payload = result.Content
	}

	if err := writer.Write(payload); err != nil {
		return err
	}
	return writer.Close()
}
