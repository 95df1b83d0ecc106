package usecase

import (
	"fmt"
	"log/slog"

	"nlpkit/internal/domain"
	"nlpkit/internal/port"
)

// Session runs the demo operations against text. The NLP provider is
// loaded on first use and kept once loading succeeds; a failed load is
// retried on the next call.
type Session struct {
	cleaner   port.TextCleaner
	tokenizer port.Tokenizer
	loader    port.ProviderLoader
	provider  port.NLPProvider
	logger    *slog.Logger
}

// NewSession creates a new session use case.
func NewSession(
	cleaner port.TextCleaner,
	tokenizer port.Tokenizer,
	loader port.ProviderLoader,
	logger *slog.Logger,
) *Session {
	return &Session{
		cleaner:   cleaner,
		tokenizer: tokenizer,
		loader:    loader,
		logger:    logger,
	}
}

// Provider returns the loaded provider, loading it if needed.
func (s *Session) Provider() (port.NLPProvider, error) {
	if s.provider != nil {
		return s.provider, nil
	}
	if s.loader == nil {
		return nil, fmt.Errorf("no model loader configured")
	}

	p, err := s.loader()
	if err != nil {
		return nil, err
	}

	st := p.Status()
	s.logger.Debug("models loaded",
		"sentence_model", st.SentenceModel,
		"pos_model", st.POSModel,
		"ner_available", st.NERAvailable,
	)
	if !st.NERAvailable {
		s.logger.Info("person-name model not loaded", "reason", st.NERReason)
	}

	s.provider = p
	return p, nil
}

// Preprocess runs the cleaning pipeline and returns every stage.
func (s *Session) Preprocess(text string) domain.StageTrace {
	return s.cleaner.Stages(text)
}

// Tokens tokenizes text. It never loads models.
func (s *Session) Tokens(text string) []string {
	return s.tokenizer.Tokenize(text)
}

// Sentences splits text into sentences.
func (s *Session) Sentences(text string) ([]string, error) {
	p, err := s.Provider()
	if err != nil {
		return nil, err
	}
	return p.DetectSentences(text)
}

// POSTag tokenizes and tags text.
func (s *Session) POSTag(text string) ([]domain.TaggedToken, error) {
	p, err := s.Provider()
	if err != nil {
		return nil, err
	}
	return p.POSTag(s.Tokens(text))
}

// PersonNames tokenizes text and returns the person names found in it.
func (s *Session) PersonNames(text string) ([]string, error) {
	p, err := s.Provider()
	if err != nil {
		return nil, err
	}
	return p.FindPersonNames(s.Tokens(text))
}

// ModelStatus loads the models and reports which ones are available.
func (s *Session) ModelStatus() (domain.ModelStatus, error) {
	p, err := s.Provider()
	if err != nil {
		return domain.ModelStatus{}, err
	}
	return p.Status(), nil
}
