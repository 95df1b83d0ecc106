package analyzer

import (
	"unicode"
)

type charClass int

const (
	classSpace charClass = iota
	classLetter
	classDigit
	classOther
)

// SimpleTokenizer splits text at character class changes. It needs no model.
type SimpleTokenizer struct{}

// NewSimpleTokenizer creates a new SimpleTokenizer.
func NewSimpleTokenizer() *SimpleTokenizer {
	return &SimpleTokenizer{}
}

// Tokenize splits text into tokens. Letters, digits and whitespace form
// runs; whitespace is dropped. Other runes are grouped only with identical
// neighbours, so "..." stays one token while ",\"" becomes two.
func (t *SimpleTokenizer) Tokenize(text string) []string {
	tokens := make([]string, 0, len(text)/4)

	start := -1
	prevClass := classSpace
	var prev rune

	for i, r := range text {
		class := classify(r)
		// Combining marks stay attached to the letter they decorate.
		if class == classOther && prevClass == classLetter && unicode.IsMark(r) {
			class = classLetter
		}

		boundary := class != prevClass || (class == classOther && r != prev)
		if boundary {
			if start >= 0 {
				tokens = append(tokens, text[start:i])
				start = -1
			}
			if class != classSpace {
				start = i
			}
		}

		prevClass = class
		prev = r
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}

	return tokens
}

func classify(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case unicode.IsLetter(r):
		return classLetter
	case unicode.IsDigit(r):
		return classDigit
	default:
		return classOther
	}
}
