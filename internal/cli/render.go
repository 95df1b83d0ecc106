package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"nlpkit/internal/domain"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func writeStages(w io.Writer, trace domain.StageTrace, all bool) {
	fmt.Fprintf(w, "Original text  : %s\n", trace.Original)
	if all {
		fmt.Fprintf(w, "Normalized     : %s\n", trace.Normalized)
		fmt.Fprintf(w, "No punctuation : %s\n", trace.NoPunctuation)
	}
	fmt.Fprintf(w, "Processed text : %s\n", trace.WithoutStopwords)
}

func writeSentences(w io.Writer, sentences []string) {
	if len(sentences) == 0 {
		fmt.Fprintln(w, "No sentences found.")
		return
	}
	for i, s := range sentences {
		fmt.Fprintf(w, "Sentence %d: %s\n", i+1, s)
	}
}

func writeTokens(w io.Writer, tokens []string) {
	fmt.Fprintln(w, "Tokens:")
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString("[" + tok + "] ")
	}
	fmt.Fprintln(w, strings.TrimSpace(sb.String()))
}

func writeTagged(w io.Writer, tagged []domain.TaggedToken) {
	rows := make([][]string, len(tagged))
	for i, t := range tagged {
		rows[i] = []string{fmt.Sprintf("%d", i+1), t.Text, t.Tag}
	}
	fmt.Fprintln(w, renderTable([]string{"#", "Token", "Tag"}, rows, []columnAlignment{alignRight}))
}

func writeNames(w io.Writer, names []string) {
	if len(names) == 0 {
		fmt.Fprintln(w, "No person names found in the text.")
		return
	}
	fmt.Fprintln(w, "Person names found:")
	for _, name := range names {
		fmt.Fprintf(w, "- %s\n", name)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
