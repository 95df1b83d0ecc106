//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"nlpkit/internal/adapter/analyzer"
)

var (
	cleaner   *analyzer.TextCleaner
	tokenizer *analyzer.SimpleTokenizer
)

func init() {
	cleaner = analyzer.NewTextCleaner()
	tokenizer = analyzer.NewSimpleTokenizer()
}

func main() {
	c := make(chan struct{})

	js.Global().Set("nlpkitPreprocess", js.FuncOf(preprocess))
	js.Global().Set("nlpkitStages", js.FuncOf(stages))
	js.Global().Set("nlpkitTokenize", js.FuncOf(tokenize))
	js.Global().Set("nlpkitStopwords", js.FuncOf(setStopwords))

	<-c
}

func preprocess(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: nlpkitPreprocess(text)")
	}
	return makeResult(map[string]interface{}{
		"text": cleaner.Preprocess(textArg(args[0])),
	})
}

func stages(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: nlpkitStages(text)")
	}
	trace := cleaner.Stages(textArg(args[0]))
	return makeResult(map[string]interface{}{
		"original":         trace.Original,
		"normalized":       trace.Normalized,
		"noPunctuation":    trace.NoPunctuation,
		"withoutStopwords": trace.WithoutStopwords,
	})
}

func tokenize(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: nlpkitTokenize(text)")
	}
	tokens := tokenizer.Tokenize(textArg(args[0]))
	return makeResult(map[string]interface{}{
		"tokens": tokens,
		"count":  len(tokens),
	})
}

// setStopwords replaces the stopword set; no arguments restores the defaults.
func setStopwords(this js.Value, args []js.Value) interface{} {
	words := make([]string, 0, len(args))
	for _, a := range args {
		if w := textArg(a); w != "" {
			words = append(words, w)
		}
	}
	cleaner = analyzer.NewTextCleaner(words...)
	return makeResult(map[string]interface{}{
		"success":   true,
		"stopwords": len(cleaner.Stopwords()),
	})
}

// textArg reads a JS string argument. null, undefined and non-string values
// are absent input and read as "".
func textArg(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
