package usecase

import (
	"errors"
	"strings"
	"testing"

	"nlpkit/internal/adapter/analyzer"
	"nlpkit/internal/adapter/nlp"
	"nlpkit/internal/domain"
	"nlpkit/internal/logging"
	"nlpkit/internal/port"
)

type fakeProvider struct {
	tokenizer *analyzer.SimpleTokenizer
	ner       bool
}

func (f *fakeProvider) DetectSentences(text string) ([]string, error) {
	return strings.SplitAfter(text, ". "), nil
}

func (f *fakeProvider) Tokenize(text string) []string {
	return f.tokenizer.Tokenize(text)
}

func (f *fakeProvider) POSTag(tokens []string) ([]domain.TaggedToken, error) {
	out := make([]domain.TaggedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = domain.TaggedToken{Text: tok, Tag: "X"}
	}
	return out, nil
}

func (f *fakeProvider) FindPersonSpans(tokens []string) ([]domain.Span, error) {
	if !f.ner {
		return nil, &nlp.FeatureUnavailableError{Feature: "person-name recognition"}
	}
	var spans []domain.Span
	for i, tok := range tokens {
		if tok == "Renato" {
			spans = append(spans, domain.Span{Start: i, End: i + 1})
		}
	}
	return spans, nil
}

func (f *fakeProvider) FindPersonNames(tokens []string) ([]string, error) {
	spans, err := f.FindPersonSpans(tokens)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(spans))
	for i, s := range spans {
		names[i] = strings.Join(tokens[s.Start:s.End], " ")
	}
	return names, nil
}

func (f *fakeProvider) Status() domain.ModelStatus {
	return domain.ModelStatus{SentenceModel: "s", POSModel: "p", NERAvailable: f.ner}
}

func newTestSession(loader port.ProviderLoader) *Session {
	return NewSession(analyzer.NewTextCleaner(), analyzer.NewSimpleTokenizer(), loader, logging.Discard())
}

func TestSession_ProviderLoadedOnce(t *testing.T) {
	calls := 0
	s := newTestSession(func() (port.NLPProvider, error) {
		calls++
		return &fakeProvider{tokenizer: analyzer.NewSimpleTokenizer(), ner: true}, nil
	})

	for i := 0; i < 3; i++ {
		if _, err := s.Sentences("Um. Dois."); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected loader called once, got %d", calls)
	}
}

func TestSession_LoadFailureIsRetried(t *testing.T) {
	calls := 0
	s := newTestSession(func() (port.NLPProvider, error) {
		calls++
		if calls == 1 {
			return nil, &nlp.ModelNotFoundError{Kind: "sentence", Path: "/models/sentence.json"}
		}
		return &fakeProvider{tokenizer: analyzer.NewSimpleTokenizer()}, nil
	})

	if _, err := s.POSTag("Olá mundo"); !errors.Is(err, nlp.ErrModelNotFound) {
		t.Fatalf("expected ErrModelNotFound, got %v", err)
	}
	tagged, err := s.POSTag("Olá mundo")
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if len(tagged) != 2 {
		t.Errorf("expected 2 tagged tokens, got %v", tagged)
	}
}

func TestSession_TokensNeverLoadModels(t *testing.T) {
	s := newTestSession(func() (port.NLPProvider, error) {
		t.Fatal("loader must not be called for tokenization")
		return nil, nil
	})

	tokens := s.Tokens("Olá, meu nome é Renato.")
	if len(tokens) != 7 {
		t.Errorf("expected 7 tokens, got %v", tokens)
	}
}

func TestSession_Preprocess(t *testing.T) {
	s := newTestSession(nil)

	trace := s.Preprocess("Olá, este é UM pequeno TESTE!")
	if trace.WithoutStopwords != "ola pequeno teste" {
		t.Errorf("unexpected result %q", trace.WithoutStopwords)
	}
}

func TestSession_PersonNamesUnavailable(t *testing.T) {
	s := newTestSession(func() (port.NLPProvider, error) {
		return &fakeProvider{tokenizer: analyzer.NewSimpleTokenizer()}, nil
	})

	_, err := s.PersonNames("Meu nome é Renato.")
	if !nlp.IsAdvisory(err) {
		t.Fatalf("expected advisory error, got %v", err)
	}
	if _, err := s.Sentences("Meu nome é Renato."); err != nil {
		t.Errorf("sentences should still work, got %v", err)
	}
}

func TestSession_PersonNames(t *testing.T) {
	s := newTestSession(func() (port.NLPProvider, error) {
		return &fakeProvider{tokenizer: analyzer.NewSimpleTokenizer(), ner: true}, nil
	})

	names, err := s.PersonNames("Meu nome é Renato.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "Renato" {
		t.Errorf("unexpected names %v", names)
	}

	st, err := s.ModelStatus()
	if err != nil || !st.NERAvailable {
		t.Errorf("unexpected status %+v, %v", st, err)
	}
}

func TestSession_NoLoader(t *testing.T) {
	s := newTestSession(nil)
	if _, err := s.Sentences("x"); err == nil {
		t.Error("expected error without loader")
	}
}
