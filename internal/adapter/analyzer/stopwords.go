package analyzer

import "strings"

// StopwordSet is an immutable set of lowercase, unaccented tokens.
type StopwordSet map[string]struct{}

// Contains reports whether word is a stopword.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Words returns the members of the set in no particular order.
func (s StopwordSet) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	return words
}

var portugueseStopwords = []string{
	"a", "o", "as", "os", "de", "da", "do", "das", "dos",
	"e", "ou", "em", "para", "por", "com", "sem",
	"um", "uma", "uns", "umas",
	"que", "se", "na", "no", "nas", "nos",
	"este", "esta", "estes", "estas", "isto", "esse", "essa", "isso",
}

var englishStopwords = []string{
	"a", "an", "the", "and", "or", "in", "on", "at", "for",
	"of", "to", "with", "without", "is", "are", "was", "were",
}

// DefaultStopwords returns the union of the Portuguese and English lists.
func DefaultStopwords() StopwordSet {
	set := make(StopwordSet, len(portugueseStopwords)+len(englishStopwords))
	for _, w := range portugueseStopwords {
		set[w] = struct{}{}
	}
	for _, w := range englishStopwords {
		set[w] = struct{}{}
	}
	return set
}

// newStopwordSet cleans words the way text is cleaned before stopword
// removal, so every entry can match a cleaned token. Entries that clean to
// nothing are dropped; entries that clean to several tokens can never match
// and are returned as rejected.
func newStopwordSet(words []string) (StopwordSet, []string) {
	set := make(StopwordSet, len(words))
	var rejected []string
	for _, w := range words {
		cleaned := RemovePunctuation(Normalize(w))
		if cleaned == "" {
			continue
		}
		if strings.Contains(cleaned, " ") {
			rejected = append(rejected, w)
			continue
		}
		set[cleaned] = struct{}{}
	}
	return set, rejected
}
