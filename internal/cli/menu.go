package cli

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"nlpkit/internal/adapter/nlp"
	"nlpkit/internal/usecase"
)

//go:embed templates/*.txt
var menuTemplates embed.FS

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive demo menu",
	Long: `Open the interactive menu. Each option runs one step of the pipeline
against the sample text (configure demo.sample_text or pass --text).

The menu reads one line per choice and exits on 0 or end of input.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	session, err := newSession()
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	m := &Menu{
		In:      in,
		Out:     cmd.OutOrStdout(),
		Session: session,
		Text:    demoText(),
		Logger:  GetLogger().With("session", uuid.NewString()),
		Prompt:  isTerminal(in),
	}
	return m.Run()
}

// Menu is the read-eval loop over the demo options.
type Menu struct {
	In      io.Reader
	Out     io.Writer
	Session *usecase.Session
	Text    string
	Logger  *slog.Logger
	Prompt  bool
}

type menuOption struct {
	name string
	run  func(m *Menu) error
}

var menuOptions = map[string]menuOption{
	"1": {"preprocess", (*Menu).demoPreprocess},
	"2": {"sentences", (*Menu).demoSentences},
	"3": {"tokenize", (*Menu).demoTokens},
	"4": {"pos", (*Menu).demoPOS},
	"5": {"persons", (*Menu).demoPersons},
}

// Run loops until the exit option or end of input. A failing option is
// reported and the loop continues.
func (m *Menu) Run() error {
	banner, err := renderMenuTemplate("templates/banner.txt", m)
	if err != nil {
		return err
	}
	menu, err := renderMenuTemplate("templates/menu.txt", m)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.Out, banner)
	m.Logger.Debug("menu started")

	scanner := bufio.NewScanner(m.In)
	for {
		fmt.Fprint(m.Out, menu)
		if m.Prompt {
			fmt.Fprint(m.Out, "Choose an option: ")
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			m.Logger.Debug("menu input closed")
			return nil
		}

		choice := strings.TrimSpace(scanner.Text())
		if choice == "0" {
			fmt.Fprintln(m.Out, "Exiting. Thanks for trying nlpkit!")
			return nil
		}

		opt, ok := menuOptions[choice]
		if !ok {
			fmt.Fprintln(m.Out, "Invalid option.")
			continue
		}
		m.runOption(opt)
	}
}

// panicError carries a recovered panic and the stack it was raised on.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (m *Menu) runOption(opt menuOption) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &panicError{value: r, stack: debug.Stack()}
			}
		}()
		return opt.run(m)
	}()
	if err == nil {
		return
	}

	if nlp.IsAdvisory(err) {
		m.Logger.Info("menu option unavailable", "option", opt.name, "reason", err.Error())
		fmt.Fprintf(m.Out, "Notice: %v\n", err)
		return
	}

	var pe *panicError
	if errors.As(err, &pe) {
		m.Logger.Error("menu option panicked", "option", opt.name, "error", err, "stack", string(pe.stack))
	} else {
		m.Logger.Error("menu option failed", "option", opt.name, "error", err, "stack", string(debug.Stack()))
	}
	fmt.Fprintf(m.Out, "Error while running the option: %v\n", err)
}

func (m *Menu) demoPreprocess() error {
	fmt.Fprintln(m.Out, "\n[DEMO] Text preprocessing")
	writeStages(m.Out, m.Session.Preprocess(m.Text), false)
	return nil
}

func (m *Menu) demoSentences() error {
	fmt.Fprintln(m.Out, "\n[DEMO] Sentence detection")
	sentences, err := m.Session.Sentences(m.Text)
	if err != nil {
		return err
	}
	writeSentences(m.Out, sentences)
	return nil
}

func (m *Menu) demoTokens() error {
	fmt.Fprintln(m.Out, "\n[DEMO] Tokenization")
	writeTokens(m.Out, m.Session.Tokens(m.Text))
	return nil
}

func (m *Menu) demoPOS() error {
	fmt.Fprintln(m.Out, "\n[DEMO] POS tagging")
	tagged, err := m.Session.POSTag(m.Text)
	if err != nil {
		return err
	}
	writeTagged(m.Out, tagged)
	return nil
}

func (m *Menu) demoPersons() error {
	fmt.Fprintln(m.Out, "\n[DEMO] Named entity recognition (persons)")
	names, err := m.Session.PersonNames(m.Text)
	if err != nil {
		return err
	}
	writeNames(m.Out, names)
	return nil
}

func renderMenuTemplate(name string, m *Menu) (string, error) {
	content, err := menuTemplates.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template not found: %w", err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ SampleText string }{m.Text}); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}
