// Command deckctl builds, shuffles and draws decks from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose       bool
	variationName string
	variationFile string
	ordered       bool
	seed          uint64

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "deckctl",
	Short: "Build and draw from card decks",
	Long: `deckctl works with the same deck variations as the bot.

Built-in variations are always available. Custom ones can be loaded from a
YAML file with --file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&variationName, "variation", "standard52", "Variation to build")
	rootCmd.PersistentFlags().StringVarP(&variationFile, "file", "f", "", "YAML file with custom variations")
	rootCmd.PersistentFlags().BoolVar(&ordered, "ordered", false, "Keep canonical order instead of shuffling")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Shuffle seed (random when unset)")

	drawCmd.Flags().IntVarP(&drawCount, "count", "n", 1, "Number of cards to draw")
	drawCmd.Flags().BoolVar(&drawSorted, "sorted", false, "Print the drawn cards lowest first")

	rootCmd.AddCommand(showCmd, drawCmd, compareCmd, variationsCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
