package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show where models are expected and which ones load",
	Long: `List the configured model locations, check which exist, then load them.

Sentence and POS models are required; the person-name model is optional.`,
	Args: cobra.NoArgs,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	paths := GetConfig().ModelPaths(GetRootDir())

	rows := [][]string{
		modelRow("sentence", paths.Sentence, true, false),
		modelRow("pos", paths.POS, true, true),
		modelRow("person-name", paths.NERPerson, false, true),
	}
	fmt.Fprintln(out, renderTable([]string{"Model", "Required", "Path", "Status"}, rows, nil))

	session, err := newSession()
	if err != nil {
		return err
	}
	status, err := session.ModelStatus()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Sentence and POS models loaded.")
	if status.NERAvailable {
		fmt.Fprintln(out, "Person-name model loaded.")
	} else {
		fmt.Fprintf(out, "Person-name recognition disabled: %s\n", status.NERReason)
	}
	return nil
}

func modelRow(kind, path string, required, wantDir bool) []string {
	req := "no"
	if required {
		req = "yes"
	}
	return []string{kind, req, displayPath(path), modelState(path, wantDir)}
}

func displayPath(path string) string {
	if path == "" {
		return "(not configured)"
	}
	return path
}

func modelState(path string, wantDir bool) string {
	if path == "" {
		return "-"
	}
	info, err := os.Stat(path)
	if err != nil {
		return "missing"
	}
	if info.IsDir() != wantDir {
		if wantDir {
			return "not a directory"
		}
		return "not a file"
	}
	return "found"
}

