package nlp

import (
	"fmt"
	"os"
	"strings"

	"nlpkit/config"
	"nlpkit/internal/adapter/analyzer"
	"nlpkit/internal/domain"
)

// Provider owns the loaded model handles. Only Initialize produces a
// usable Provider; the zero value answers every model-backed call with
// ErrNotInitialized.
type Provider struct {
	ready     bool
	tokenizer *analyzer.SimpleTokenizer
	sentences sentenceDetector
	tagger    posTagger
	persons   personFinder // nil when the person model is absent
	status    domain.ModelStatus
}

// Initialize loads the sentence and POS models and, when present, the
// person-name model. A missing mandatory model yields *ModelNotFoundError;
// a missing person model only disables FindPersonSpans and FindPersonNames.
func Initialize(paths config.ModelPaths) (*Provider, error) {
	if err := requireModel("sentence", paths.Sentence, false); err != nil {
		return nil, err
	}
	if err := requireModel("pos", paths.POS, true); err != nil {
		return nil, err
	}

	detector, err := loadSentenceModel(paths.Sentence)
	if err != nil {
		return nil, err
	}
	tagger, err := loadPOSModel(paths.POS)
	if err != nil {
		return nil, fmt.Errorf("failed to load pos model: %w", err)
	}

	p := &Provider{
		ready:     true,
		tokenizer: analyzer.NewSimpleTokenizer(),
		sentences: detector,
		tagger:    tagger,
		status: domain.ModelStatus{
			SentenceModel: paths.Sentence,
			POSModel:      paths.POS,
			NERModel:      paths.NERPerson,
		},
	}

	persons, reason := loadPersonFinder(paths.NERPerson)
	if persons != nil {
		p.persons = persons
		p.status.NERAvailable = true
	} else {
		p.status.NERReason = reason
	}

	return p, nil
}

func loadPersonFinder(path string) (personFinder, string) {
	if path == "" {
		return nil, "no person-name model configured"
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Sprintf("person-name model not found at %s", path)
	}
	model, err := loadProseModel(path)
	if err != nil {
		return nil, err.Error()
	}
	return &prosePersonFinder{model: model}, ""
}

func (p *Provider) initialized() bool {
	return p != nil && p.ready
}

// DetectSentences splits text into sentences.
func (p *Provider) DetectSentences(text string) ([]string, error) {
	if !p.initialized() {
		return nil, notInitialized("DetectSentences")
	}
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}
	return p.sentences.Detect(text), nil
}

// Tokenize splits text into tokens without any model, so it works on an
// uninitialized provider too.
func (p *Provider) Tokenize(text string) []string {
	if p == nil || p.tokenizer == nil {
		return analyzer.NewSimpleTokenizer().Tokenize(text)
	}
	return p.tokenizer.Tokenize(text)
}

// POSTag tags each token.
func (p *Provider) POSTag(tokens []string) ([]domain.TaggedToken, error) {
	if !p.initialized() {
		return nil, notInitialized("POSTag")
	}
	return p.tagger.Tag(tokens)
}

// FindPersonSpans returns the token ranges of person names.
func (p *Provider) FindPersonSpans(tokens []string) ([]domain.Span, error) {
	if !p.initialized() {
		return nil, notInitialized("FindPersonSpans")
	}
	if p.persons == nil {
		return nil, &FeatureUnavailableError{
			Feature: "person-name recognition",
			Reason:  p.status.NERReason,
		}
	}
	names, err := p.persons.Find(tokens)
	if err != nil {
		return nil, err
	}
	return alignSpans(tokens, names), nil
}

// FindPersonNames returns each person name found in tokens.
func (p *Provider) FindPersonNames(tokens []string) ([]string, error) {
	spans, err := p.FindPersonSpans(tokens)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(spans))
	for _, s := range spans {
		names = append(names, strings.Join(tokens[s.Start:s.End], " "))
	}
	return names, nil
}

// Status reports which models are loaded.
func (p *Provider) Status() domain.ModelStatus {
	if p == nil {
		return domain.ModelStatus{}
	}
	return p.status
}
