package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"nlpkit/config"
	"nlpkit/internal/adapter/analyzer"
	"nlpkit/internal/adapter/nlp"
	"nlpkit/internal/domain"
	"nlpkit/internal/logging"
	"nlpkit/internal/port"
	"nlpkit/internal/usecase"
)

type stubProvider struct{}

func (stubProvider) DetectSentences(text string) ([]string, error) {
	return []string{text}, nil
}

func (stubProvider) Tokenize(text string) []string {
	return strings.Fields(text)
}

func (stubProvider) POSTag(tokens []string) ([]domain.TaggedToken, error) {
	out := make([]domain.TaggedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = domain.TaggedToken{Text: tok, Tag: "NOUN"}
	}
	return out, nil
}

func (stubProvider) FindPersonSpans([]string) ([]domain.Span, error) {
	return nil, &nlp.FeatureUnavailableError{Feature: "person-name recognition", Reason: "no model"}
}

func (p stubProvider) FindPersonNames(tokens []string) ([]string, error) {
	_, err := p.FindPersonSpans(tokens)
	return nil, err
}

func (stubProvider) Status() domain.ModelStatus {
	return domain.ModelStatus{NERReason: "no model"}
}

func newTestMenu(input string, loader port.ProviderLoader) (*Menu, *bytes.Buffer, *bytes.Buffer) {
	var out, logs bytes.Buffer
	logger, _ := logging.New(logging.Options{Level: "info", Format: "json", Output: &logs})
	session := usecase.NewSession(analyzer.NewTextCleaner(), analyzer.NewSimpleTokenizer(), loader, logger)
	return &Menu{
		In:      strings.NewReader(input),
		Out:     &out,
		Session: session,
		Text:    config.DefaultSampleText,
		Logger:  logger,
	}, &out, &logs
}

func stubLoader() (port.NLPProvider, error) {
	return stubProvider{}, nil
}

func TestMenu_ExitOption(t *testing.T) {
	m, out, _ := newTestMenu("0\n1\n", stubLoader)

	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Exiting") {
		t.Errorf("expected exit message, got %q", out.String())
	}
	if strings.Contains(out.String(), "[DEMO]") {
		t.Error("no option should run after exit")
	}
}

func TestMenu_EndOfInput(t *testing.T) {
	m, out, _ := newTestMenu("", stubLoader)

	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "----- MENU -----") {
		t.Errorf("expected menu to be shown, got %q", out.String())
	}
	if !strings.Contains(out.String(), config.DefaultSampleText) {
		t.Error("expected banner with sample text")
	}
}

func TestMenu_InvalidOption(t *testing.T) {
	m, out, _ := newTestMenu("9\n  \nabc\n", stubLoader)

	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(out.String(), "Invalid option."); got != 3 {
		t.Errorf("expected 3 invalid option messages, got %d", got)
	}
	// Initial display plus one redisplay per line.
	if got := strings.Count(out.String(), "----- MENU -----"); got != 4 {
		t.Errorf("expected menu shown 4 times, got %d", got)
	}
}

func TestMenu_Options(t *testing.T) {
	m, out, _ := newTestMenu(" 1 \n2\n3\n4\n0\n", stubLoader)

	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := out.String()
	for _, want := range []string{
		"Processed text : ola meu nome renato trabalho ciencia dados sao paulo gosto aprender nlp java usando apache opennlp",
		"Sentence 1: " + config.DefaultSampleText,
		"[Olá] [,] [meu]",
		"NOUN",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if strings.Contains(text, "Invalid option.") {
		t.Error("trimmed choices should be accepted")
	}
}

func TestMenu_AdvisoryErrorIsNotice(t *testing.T) {
	m, out, logs := newTestMenu("5\n3\n", stubLoader)

	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Notice: person-name recognition is unavailable") {
		t.Errorf("expected notice, got %q", out.String())
	}
	if !strings.Contains(out.String(), "[DEMO] Tokenization") {
		t.Error("expected loop to continue after the notice")
	}
	if strings.Contains(logs.String(), `"level":"error"`) {
		t.Errorf("advisory errors should not be logged as errors: %s", logs.String())
	}
}

func TestMenu_FailureIsolation(t *testing.T) {
	calls := 0
	loader := func() (port.NLPProvider, error) {
		calls++
		if calls == 1 {
			panic("corrupt model")
		}
		return nil, errors.New("models unavailable")
	}
	m, out, logs := newTestMenu("2\n4\n1\n0\n", loader)

	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := out.String()
	if strings.Count(text, "Error while running the option") != 2 {
		t.Errorf("expected two failure reports, got %q", text)
	}
	if !strings.Contains(text, "Processed text") {
		t.Error("expected later options to keep working")
	}
	if !strings.Contains(text, "Exiting") {
		t.Error("expected the loop to reach the exit option")
	}

	logText := logs.String()
	if !strings.Contains(logText, "menu option panicked") || !strings.Contains(logText, `"stack"`) {
		t.Errorf("expected panic logged with stack, got %s", logText)
	}
	if !strings.Contains(logText, "models unavailable") {
		t.Errorf("expected failure logged, got %s", logText)
	}
	for _, line := range strings.Split(strings.TrimSpace(logText), "\n") {
		if strings.Contains(line, `"level":"error"`) && !strings.Contains(line, `"stack":"`) {
			t.Errorf("expected every failure logged with a stack trace, got %s", line)
		}
	}
}

func TestMenu_PromptOnlyWhenInteractive(t *testing.T) {
	m, out, _ := newTestMenu("0\n", stubLoader)
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out.String(), "Choose an option") {
		t.Error("prompt should be hidden for non-interactive input")
	}

	m, out, _ = newTestMenu("0\n", stubLoader)
	m.Prompt = true
	if err := m.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Choose an option: ") {
		t.Error("expected prompt when interactive")
	}
}
