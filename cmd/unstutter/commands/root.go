// Package commands implements the CLI commands for unstutter.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "unstutter",
	Short: "Remove repeated phrase runs from caption transcripts",
	Long: `Unstutter cleans transcript text extracted from timed subtitle data.

Overlapping caption cues duplicate word runs ("caption stutter");
unstutter collapses adjacent repeated phrases to a single occurrence
while preserving reading order.

Examples:
  # Clean a transcript file
  unstutter clean transcript.txt

  # Clean from stdin, catching single-word stutter too
  cat transcript.txt | unstutter clean --preset aggressive

  # Custom phrase-length window with stats
  unstutter clean --min-words 2 --max-words 8 --stats transcript.txt

  # JSON output with metadata
  unstutter clean --format json transcript.txt`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.unstutter.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".unstutter")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("UNSTUTTER")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
