package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"nlpkit/config"
	"nlpkit/internal/adapter/analyzer"
	"nlpkit/internal/adapter/nlp"
	"nlpkit/internal/port"
	"nlpkit/internal/usecase"
)

// newCleaner builds a text cleaner with the configured stopword override.
func newCleaner() (*analyzer.TextCleaner, error) {
	words, err := GetConfig().StopwordList(GetRootDir())
	if err != nil {
		return nil, err
	}
	cleaner := analyzer.NewTextCleaner(words...)
	for _, w := range cleaner.RejectedStopwords() {
		GetLogger().Warn("stopword ignored: it cleans to more than one token", "stopword", w)
	}
	return cleaner, nil
}

// newLoader returns a loader for the models configured under the root dir.
func newLoader() port.ProviderLoader {
	paths := GetConfig().ModelPaths(GetRootDir())
	return func() (port.NLPProvider, error) {
		p, err := nlp.Initialize(paths)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

func newSession() (*usecase.Session, error) {
	cleaner, err := newCleaner()
	if err != nil {
		return nil, err
	}
	return usecase.NewSession(cleaner, analyzer.NewSimpleTokenizer(), newLoader(), GetLogger()), nil
}

// inputText picks the text a subcommand works on: positional args, then
// --text, then piped stdin, then the configured sample text.
func inputText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if sampleText != "" {
		return sampleText, nil
	}
	if stdin != nil && !isTerminal(stdin) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		if text := strings.TrimSpace(string(data)); text != "" {
			return text, nil
		}
	}
	return demoText(), nil
}

func demoText() string {
	if sampleText != "" {
		return sampleText
	}
	if c := GetConfig(); c != nil && c.Demo.SampleText != "" {
		return c.Demo.SampleText
	}
	return config.DefaultSampleText
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
