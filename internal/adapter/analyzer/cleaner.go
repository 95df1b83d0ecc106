package analyzer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"nlpkit/internal/domain"
)

// TextCleaner runs the normalize, punctuation and stopword stages.
type TextCleaner struct {
	stopwords StopwordSet
	rejected  []string
}

// NewTextCleaner creates a TextCleaner. With no usable words the default
// Portuguese and English stopwords are used.
func NewTextCleaner(stopwords ...string) *TextCleaner {
	set, rejected := newStopwordSet(stopwords)
	if len(set) == 0 {
		set = DefaultStopwords()
	}
	return &TextCleaner{stopwords: set, rejected: rejected}
}

// Stopwords returns the active stopword set. Callers must not modify it.
func (c *TextCleaner) Stopwords() StopwordSet {
	return c.stopwords
}

// RejectedStopwords returns the override entries that clean to more than
// one token, such as "pré-processamento", and so were left out of the set.
func (c *TextCleaner) RejectedStopwords() []string {
	return c.rejected
}

// Preprocess runs the three stages in order.
func (c *TextCleaner) Preprocess(text string) string {
	return c.RemoveStopwords(RemovePunctuation(Normalize(text)))
}

// PreprocessReader reads all of r and preprocesses it. A nil reader
// is treated as empty input.
func (c *TextCleaner) PreprocessReader(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return c.Preprocess(string(data)), nil
}

// Stages returns the output of every stage for text.
func (c *TextCleaner) Stages(text string) domain.StageTrace {
	normalized := Normalize(text)
	noPunct := RemovePunctuation(normalized)
	return domain.StageTrace{
		Original:         text,
		Normalized:       normalized,
		NoPunctuation:    noPunct,
		WithoutStopwords: c.RemoveStopwords(noPunct),
	}
}

// Normalize lowercases text and folds accented letters to their base letter.
func (c *TextCleaner) Normalize(text string) string {
	return Normalize(text)
}

// RemovePunctuation replaces punctuation with spaces and collapses whitespace.
func (c *TextCleaner) RemovePunctuation(text string) string {
	return RemovePunctuation(text)
}

// RemoveStopwords drops every whitespace-delimited token found in the
// stopword set. Survivors keep their order and are joined by one space.
func (c *TextCleaner) RemoveStopwords(text string) string {
	tokens := splitFields(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if c.stopwords.Contains(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// Normalize lowercases text with a locale-independent mapping, decomposes
// it, and strips every combining mark. Lowercasing runs first so accented
// capitals fold the same way as lowercase letters.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	t := transform.Chain(
		cases.Lower(language.Und),
		norm.NFD,
		runes.Remove(runes.In(unicode.M)),
		norm.NFC,
	)
	normalized, _, _ := transform.String(t, text)
	return normalized
}

// RemovePunctuation maps every Unicode punctuation rune to a space, then
// collapses whitespace runs and trims the ends in a single pass.
func RemovePunctuation(text string) string {
	replaced, _, _ := transform.String(runes.Map(punctuationToSpace), text)
	return strings.Join(splitFields(replaced), " ")
}

func punctuationToSpace(r rune) rune {
	if unicode.IsPunct(r) {
		return ' '
	}
	return r
}

// splitFields splits on whitespace runs. It never yields empty tokens, so
// empty input produces no tokens at all.
func splitFields(text string) []string {
	return strings.Fields(text)
}
