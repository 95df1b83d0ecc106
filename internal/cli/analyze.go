package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	preprocessStages bool
	posJSON          bool
	nerJSON          bool
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess [text...]",
	Short: "Normalize text and remove punctuation and stopwords",
	Long: `Run the cleaning pipeline: lowercase and strip accents, replace punctuation
with spaces, then drop stopwords. Reads stdin when no text is given.

Examples:
  nlpkit preprocess "Olá, este é UM pequeno TESTE!"
  cat notes.txt | nlpkit preprocess --stages`,
	RunE: runPreprocess,
}

var sentencesCmd = &cobra.Command{
	Use:   "sentences [text...]",
	Short: "Split text into sentences",
	RunE:  runSentences,
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [text...]",
	Short: "Split text into tokens (no model required)",
	RunE:  runTokenize,
}

var posCmd = &cobra.Command{
	Use:   "pos [text...]",
	Short: "Tag each token with its part of speech",
	RunE:  runPOS,
}

var nerCmd = &cobra.Command{
	Use:   "ner [text...]",
	Short: "Find person names (requires the optional person-name model)",
	RunE:  runNER,
}

func init() {
	rootCmd.AddCommand(preprocessCmd, sentencesCmd, tokenizeCmd, posCmd, nerCmd)
	preprocessCmd.Flags().BoolVar(&preprocessStages, "stages", false, "print the output of every pipeline stage")
	posCmd.Flags().BoolVar(&posJSON, "json", false, "output as JSON")
	nerCmd.Flags().BoolVar(&nerJSON, "json", false, "output as JSON")
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	text, err := inputText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	cleaner, err := newCleaner()
	if err != nil {
		return err
	}

	if preprocessStages {
		writeStages(cmd.OutOrStdout(), cleaner.Stages(text), true)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), cleaner.Preprocess(text))
	return nil
}

func runSentences(cmd *cobra.Command, args []string) error {
	text, err := inputText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	session, err := newSession()
	if err != nil {
		return err
	}

	sentences, err := session.Sentences(text)
	if err != nil {
		return err
	}
	writeSentences(cmd.OutOrStdout(), sentences)
	return nil
}

func runTokenize(cmd *cobra.Command, args []string) error {
	text, err := inputText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	session, err := newSession()
	if err != nil {
		return err
	}

	writeTokens(cmd.OutOrStdout(), session.Tokens(text))
	return nil
}

func runPOS(cmd *cobra.Command, args []string) error {
	text, err := inputText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	session, err := newSession()
	if err != nil {
		return err
	}

	tagged, err := session.POSTag(text)
	if err != nil {
		return err
	}
	if posJSON {
		return writeJSON(cmd.OutOrStdout(), tagged)
	}
	writeTagged(cmd.OutOrStdout(), tagged)
	return nil
}

func runNER(cmd *cobra.Command, args []string) error {
	text, err := inputText(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	session, err := newSession()
	if err != nil {
		return err
	}

	names, err := session.PersonNames(text)
	if err != nil {
		return err
	}
	if nerJSON {
		if names == nil {
			names = []string{}
		}
		return writeJSON(cmd.OutOrStdout(), names)
	}
	writeNames(cmd.OutOrStdout(), names)
	return nil
}
