package domain

// TaggedToken is a token paired with its part-of-speech tag.
type TaggedToken struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// Span is a half-open token index range [Start, End).
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of tokens covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// StageTrace records the output of every preprocessing stage.
type StageTrace struct {
	Original         string `json:"original"`
	Normalized       string `json:"normalized"`
	NoPunctuation    string `json:"no_punctuation"`
	WithoutStopwords string `json:"without_stopwords"`
}

// CleanedDocument is the batch result for a single file.
type CleanedDocument struct {
	Path     string   `json:"path"`
	Original int      `json:"original_bytes"`
	Cleaned  string   `json:"cleaned"`
	Tokens   []string `json:"tokens"`
}

// BatchReport is the output of a batch run.
type BatchReport struct {
	Root      string            `json:"root"`
	Documents []CleanedDocument `json:"documents"`
	Errors    []string          `json:"errors,omitempty"`
}

// ModelStatus describes which models a provider holds.
type ModelStatus struct {
	SentenceModel string `json:"sentence_model"`
	POSModel      string `json:"pos_model"`
	NERModel      string `json:"ner_model,omitempty"`
	NERAvailable  bool   `json:"ner_available"`
	NERReason     string `json:"ner_reason,omitempty"`
}
