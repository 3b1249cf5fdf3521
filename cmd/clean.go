// clean.go implements the "textidx clean" command.
//
// The command reports where the output went and nothing else. Lines the
// pass drops are not printed, counted or logged.

package cmd

import (
	"fmt"

	"github.com/jpl-au/textidx/internal/config"
	"github.com/jpl-au/textidx/internal/log"
	"github.com/jpl-au/textidx/internal/progress"
	"github.com/jpl-au/textidx/internal/scan"
	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean <input_docsfile> <output_docsfile>",
		Short: "Write only the valid lines of a documents file",
		Long: `Copies every valid documents line (<digits>\t<text>) from the input to
the output, unchanged and in order. Invalid lines are dropped silently.
The output is created or truncated.

  textidx clean docs.tsv docs.clean.tsv`,
		Args: cobra.ExactArgs(2),
		RunE: runClean,
	}
}

func runClean(c *cobra.Command, args []string) error {
	c.SilenceUsage = true
	in, dst := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return PrintJSONError(c, fmt.Errorf("config load: %w", err))
	}

	sp := progress.NewSpinner("Cleaning " + in)
	sp.Start()
	err = scan.CleanFile(in, dst, scan.Options{
		MaxLineLength: cfg.MaxLineLength(),
		Progress:      sp.Line,
	})
	sp.Stop()

	log.Event("cli:clean", "clean").Author(Author()).Input(in).Output(dst).Write(err)
	if err != nil {
		return PrintJSONError(c, err)
	}

	if JSON() {
		return PrintJSON(map[string]string{"output": dst})
	}
	fmt.Fprintln(Out(), "Cleaned docsfile written to", dst)
	return nil
}

func init() {
	rootCmd.AddCommand(newCleanCmd())
}
