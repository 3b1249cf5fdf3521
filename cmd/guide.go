// guide.go implements the "textidx guide" command.
//
// Guides are embedded in the binary. Terminal output gets glamour
// rendering; pipes and redirects get the raw markdown.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/textidx/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the textidx usage guide",
		Long: `Outputs the textidx guide.

  textidx guide            # main guide
  textidx guide formats    # words and documents file formats
  textidx guide clean      # what clean keeps and drops`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return PrintJSONError(c, fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if JSON() {
				return PrintJSON(map[string]string{"topic": name, "content": content})
			}

			if out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(Out(), content)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newGuideCmd())
}
