// validate.go implements the "textidx validate" command.
//
// The words file is checked first, then the documents file, one after the
// other. Anomalies are printed as they are found and never affect the exit
// status; only an unreadable file does, and it stops the run.

package cmd

import (
	"fmt"

	"github.com/jpl-au/textidx/internal/config"
	"github.com/jpl-au/textidx/internal/log"
	"github.com/jpl-au/textidx/internal/progress"
	"github.com/jpl-au/textidx/internal/scan"
	"github.com/spf13/cobra"
)

const (
	flagWordsFields = "words-fields"
	flagDocsFields  = "docs-fields"
)

// fileReport is the JSON form of one file's pass.
type fileReport struct {
	Path      string         `json:"path"`
	MinFields int            `json:"min_fields"`
	Anomalies []scan.Anomaly `json:"anomalies"`
}

func newValidateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "validate <wordsfile> <docsfile>",
		Short: "Report empty and malformed lines in a words and documents file",
		Long: `Checks that every words line has at least 3 tab-separated fields and
every documents line at least 2. Empty lines are reported as empty, short
lines as malformed. Nothing is modified.

  textidx validate words.tsv docs.tsv
  textidx validate --words-fields 4 words.tsv docs.tsv`,
		Args: cobra.MinimumNArgs(2),
		RunE: runValidate,
	}
	c.Flags().Int(flagWordsFields, 0, "Minimum fields per words line (default from config, 3)")
	c.Flags().Int(flagDocsFields, 0, "Minimum fields per documents line (default from config, 2)")
	return c
}

func runValidate(c *cobra.Command, args []string) error {
	c.SilenceUsage = true
	words, docs := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return PrintJSONError(c, fmt.Errorf("config load: %w", err))
	}
	wordsMin := cfg.WordsFields()
	if n, _ := c.Flags().GetInt(flagWordsFields); n != 0 {
		wordsMin = n
	}
	docsMin := cfg.DocsFields()
	if n, _ := c.Flags().GetInt(flagDocsFields); n != 0 {
		docsMin = n
	}

	reports := []fileReport{}
	for _, f := range []struct {
		path string
		min  int
	}{{words, wordsMin}, {docs, docsMin}} {
		r, err := checkOne(f.path, f.min, cfg.MaxLineLength())
		if err != nil {
			if JSON() {
				// Keep what earlier passes found alongside the failure.
				_ = PrintJSON(map[string]any{"files": reports, "error": err.Error()})
				c.SilenceErrors = true
			}
			return err
		}
		reports = append(reports, r)
	}

	if JSON() {
		return PrintJSON(map[string]any{"files": reports})
	}
	fmt.Fprintln(Out(), "Validation complete.")
	return nil
}

// checkOne runs a single file's pass, printing as it goes unless output is
// JSON, in which case anomalies are collected for the final document.
func checkOne(path string, minFields, maxLine int) (fileReport, error) {
	r := fileReport{Path: path, MinFields: minFields, Anomalies: []scan.Anomaly{}}
	empty, malformed := 0, 0

	if !JSON() {
		fmt.Fprintf(Out(), "Validating %s (should have at least %d fields per line)\n", path, minFields)
	}
	sp := progress.NewSpinner("Validating " + path)
	report := func(a scan.Anomaly) {
		if a.Kind == scan.KindEmpty {
			empty++
		} else {
			malformed++
		}
		if JSON() {
			r.Anomalies = append(r.Anomalies, a)
			return
		}
		sp.Clear()
		fmt.Fprintln(Out(), a.String())
	}

	sp.Start()
	err := scan.CheckFile(path, minFields, report, scan.Options{MaxLineLength: maxLine, Progress: sp.Line})
	sp.Stop()

	log.Event("cli:validate", "validate").Author(Author()).Input(path).
		Detail("min_fields", minFields).
		Detail("empty", empty).
		Detail("malformed", malformed).
		Write(err)
	return r, err
}

func init() {
	rootCmd.AddCommand(newValidateCmd())
}
