package port

import "nlpkit/internal/domain"

// NLPProvider exposes capabilities backed by pretrained statistical models.
type NLPProvider interface {
	// DetectSentences splits text into sentences.
	DetectSentences(text string) ([]string, error)

	// Tokenize splits text into tokens. It never requires a model.
	Tokenize(text string) []string

	// POSTag attaches a part-of-speech tag to each token.
	POSTag(tokens []string) ([]domain.TaggedToken, error)

	// FindPersonSpans locates person names within tokens.
	FindPersonSpans(tokens []string) ([]domain.Span, error)

	// FindPersonNames returns the text of each person span.
	FindPersonNames(tokens []string) ([]string, error)

	// Status reports which models are loaded.
	Status() domain.ModelStatus
}

// ProviderLoader builds an initialized NLPProvider.
type ProviderLoader func() (NLPProvider, error)
