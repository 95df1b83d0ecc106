package port

import (
	"io"

	"nlpkit/internal/domain"
)

// TextCleaner turns raw text into cleaned text.
type TextCleaner interface {
	Normalize(text string) string

	RemovePunctuation(text string) string

	RemoveStopwords(text string) string

	// Preprocess is RemoveStopwords(RemovePunctuation(Normalize(text))).
	Preprocess(text string) string

	PreprocessReader(r io.Reader) (string, error)

	Stages(text string) domain.StageTrace
}
