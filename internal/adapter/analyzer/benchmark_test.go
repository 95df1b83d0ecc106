package analyzer

import (
	"strings"
	"testing"
)

var benchText = strings.Repeat("Olá, meu nome é Renato. Trabalho com ciência de dados em São Paulo. "+
	"Gosto de aprender NLP em Java usando Apache OpenNLP. ", 50)

func BenchmarkPreprocess(b *testing.B) {
	c := NewTextCleaner()
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Preprocess(benchText)
	}
}

func BenchmarkNormalize(b *testing.B) {
	b.SetBytes(int64(len(benchText)))
	for i := 0; i < b.N; i++ {
		Normalize(benchText)
	}
}

func BenchmarkTokenize(b *testing.B) {
	tok := NewSimpleTokenizer()
	b.SetBytes(int64(len(benchText)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tok.Tokenize(benchText)
	}
}
