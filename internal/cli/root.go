package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"nlpkit/config"
	"nlpkit/internal/logging"
)

var (
	cfgFile    string
	cfg        *config.Config
	rootDir    string
	sampleText string
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nlpkit",
	Short: "NLP toolkit - Text preprocessing and pretrained-model demos",
	Long: `nlpkit cleans text (accent folding, punctuation and stopword removal) and runs
pretrained sentence detection, POS tagging and person-name recognition models.

Run without a subcommand to open the interactive menu.

Example usage:
  nlpkit                               # Interactive menu over the sample text
  nlpkit preprocess "Olá, mundo!"      # Clean a piece of text
  nlpkit pos -t "Meu nome é Renato."   # Tag a piece of text
  nlpkit batch ./corpus -o clean.json  # Clean every .txt/.md file in a directory`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = logging.NewFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		return nil
	},
	RunE: runMenu,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./nlpkit.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().StringVarP(&sampleText, "text", "t", "", "text to analyze (default is the configured sample text)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// GetLogger returns the logger built from the loaded config.
func GetLogger() *slog.Logger {
	if logger == nil {
		return logging.Discard()
	}
	return logger
}
