package nlp

import (
	"errors"
	"fmt"
)

var (
	// ErrModelNotFound marks a missing mandatory model. Capabilities that
	// need the model cannot run until it is installed.
	ErrModelNotFound = errors.New("model not found")
	// ErrNotInitialized marks a model-backed call on a provider that was
	// not produced by Initialize.
	ErrNotInitialized = errors.New("nlp provider not initialized")
	// ErrFeatureUnavailable marks an optional capability whose model was
	// never loaded. Other capabilities keep working.
	ErrFeatureUnavailable = errors.New("feature unavailable")
)

// ModelNotFoundError reports a mandatory model missing from disk.
type ModelNotFoundError struct {
	Kind string // "sentence" or "pos"
	Path string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("%s model %q not found.\n"+
		"Download a pretrained %s model and place it at %s (see models.dir in nlpkit.yaml).\n"+
		"Sentence models are Punkt training JSON files; POS models are directories holding\n"+
		"AveragedPerceptron/{weights,tags,classes}.gob.",
		e.Kind, e.Path, e.Kind, e.Path)
}

func (e *ModelNotFoundError) Unwrap() error {
	return ErrModelNotFound
}

// FeatureUnavailableError reports an optional capability that cannot run.
type FeatureUnavailableError struct {
	Feature string
	Reason  string
}

func (e *FeatureUnavailableError) Error() string {
	msg := fmt.Sprintf("%s is unavailable", e.Feature)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg + ".\nSentence detection, tokenization and POS tagging keep working normally."
}

func (e *FeatureUnavailableError) Unwrap() error {
	return ErrFeatureUnavailable
}

// IsAdvisory reports whether err only signals a missing optional feature.
func IsAdvisory(err error) bool {
	return errors.Is(err, ErrFeatureUnavailable)
}

func notInitialized(operation string) error {
	return fmt.Errorf("%w: call Initialize before %s", ErrNotInitialized, operation)
}
