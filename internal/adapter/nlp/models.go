package nlp

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jdkato/prose/tag"
	"github.com/jdkato/prose/v2"
	"github.com/neurosnap/sentences"

	"nlpkit/internal/domain"
)

const personLabel = "PERSON"

type sentenceDetector interface {
	Detect(text string) []string
}

type posTagger interface {
	Tag(tokens []string) ([]domain.TaggedToken, error)
}

// personFinder returns the text of every person entity, in order.
type personFinder interface {
	Find(tokens []string) ([]string, error)
}

// requireModel checks that a mandatory model exists before anything is decoded.
func requireModel(kind, path string, wantDir bool) error {
	if path == "" {
		return &ModelNotFoundError{Kind: kind, Path: "(not configured)"}
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() != wantDir {
		return &ModelNotFoundError{Kind: kind, Path: path}
	}
	return nil
}

type punktDetector struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func loadSentenceModel(path string) (*punktDetector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sentence model: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read sentence model %s: %w", path, err)
	}
	training, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sentence model %s: %w", path, err)
	}
	return &punktDetector{tokenizer: sentences.NewSentenceTokenizer(training)}, nil
}

func (d *punktDetector) Detect(text string) []string {
	var out []string
	for _, s := range d.tokenizer.Tokenize(text) {
		sentence := strings.TrimSpace(s.Text)
		if sentence == "" {
			continue
		}
		out = append(out, sentence)
	}
	return out
}

// loadProseModel decodes a prose model directory. prose panics on a
// malformed directory, so the panic is turned into an error.
func loadProseModel(path string) (model *prose.Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			model = nil
			err = fmt.Errorf("failed to decode model %s: %v", path, r)
		}
	}()
	return prose.ModelFromDisk(path), nil
}

// POS models use prose's averaged-perceptron layout:
// <dir>/AveragedPerceptron/{weights,tags,classes}.gob.
const (
	perceptronDir = "AveragedPerceptron"
	weightsFile   = "weights.gob"
	tagsFile      = "tags.gob"
	classesFile   = "classes.gob"
)

type perceptronTagger struct {
	tagger *tag.PerceptronTagger
}

func loadPOSModel(path string) (*perceptronTagger, error) {
	loc := filepath.Join(path, perceptronDir)

	var weights map[string]map[string]float64
	var tags map[string]string
	var classes []string

	if err := decodeGob(filepath.Join(loc, weightsFile), &weights); err != nil {
		return nil, err
	}
	if err := decodeGob(filepath.Join(loc, tagsFile), &tags); err != nil {
		return nil, err
	}
	if err := decodeGob(filepath.Join(loc, classesFile), &classes); err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("pos model %s defines no tag classes", path)
	}
	if weights == nil {
		weights = map[string]map[string]float64{}
	}
	if tags == nil {
		tags = map[string]string{}
	}

	model := tag.NewAveragedPerceptron(weights, tags, classes)
	return &perceptronTagger{tagger: tag.NewTrainedPerceptronTagger(model)}, nil
}

func decodeGob(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func (t *perceptronTagger) Tag(tokens []string) ([]domain.TaggedToken, error) {
	out := make([]domain.TaggedToken, 0, len(tokens))
	for _, tok := range t.tagger.Tag(tokens) {
		out = append(out, domain.TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}

type prosePersonFinder struct {
	model *prose.Model
}

func (f *prosePersonFinder) Find(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	doc, err := prose.NewDocument(strings.Join(tokens, " "),
		prose.WithSegmentation(false),
		prose.UsingModel(f.model),
	)
	if err != nil {
		return nil, fmt.Errorf("entity extraction failed: %w", err)
	}

	var names []string
	for _, ent := range doc.Entities() {
		if ent.Label == personLabel {
			names = append(names, ent.Text)
		}
	}
	return names, nil
}

// alignSpans maps entity texts back onto token positions. Entities are
// matched left to right; one that cannot be found after the previous
// match is dropped.
func alignSpans(tokens []string, names []string) []domain.Span {
	spans := make([]domain.Span, 0, len(names))
	cursor := 0
	for _, name := range names {
		words := strings.Fields(name)
		if len(words) == 0 {
			continue
		}
		for start := cursor; start+len(words) <= len(tokens); start++ {
			if matchAt(tokens, start, words) {
				spans = append(spans, domain.Span{Start: start, End: start + len(words)})
				cursor = start + len(words)
				break
			}
		}
	}
	return spans
}

func matchAt(tokens []string, start int, words []string) bool {
	for i, w := range words {
		if tokens[start+i] != w {
			return false
		}
	}
	return true
}
