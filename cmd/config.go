// config.go implements the "textidx config" command.
//
// Config follows a cascade model similar to git: local config
// (.textidx/config.yaml) takes precedence over global
// (~/.textidx/config.yaml). The --local flag forces use of local config
// even if it doesn't exist yet.

package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jpl-au/textidx/internal/config"
	"github.com/jpl-au/textidx/internal/log"
	"github.com/spf13/cobra"
)

const flagLocal = "local"

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  textidx config                           # show config
  textidx config validate.words_fields     # show one value
  textidx config validate.words_fields 4   # set a value

Keys:
  author.name              recorded in the audit log
  limits.max_line_length   longest line accepted, in bytes (default 10 MB)
  validate.words_fields    minimum fields per words line (default 3)
  validate.docs_fields     minimum fields per documents line (default 2)

Configuration locations:
  Global: ~/.textidx/config.yaml
  Local:  .textidx/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(flagLocal, false, "Use local config (.textidx/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(flagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return PrintJSONError(c, fmt.Errorf("config load: %w", err))
	}

	if len(args) > 0 && !config.IsValidKey(args[0]) {
		err := fmt.Errorf("%w: %s (valid: %s)", config.ErrUnknownKey, args[0], strings.Join(config.ValidKeys(), ", "))
		log.Event("cli:config", "get").Author(Author()).Detail("key", args[0]).Write(err)
		return PrintJSONError(c, err)
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("cli:config", "list").Author(Author()).Write(nil)
		if JSON() {
			return PrintJSON(all)
		}
		keys := config.ValidKeys()
		slices.Sort(keys)
		for _, k := range keys {
			if cfg.IsSet(k) {
				fmt.Fprintf(Out(), "%s: %s\n", k, all[k])
			} else {
				fmt.Fprintf(Out(), "%s: %s (default)\n", k, all[k])
			}
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("cli:config", "get").Author(Author()).Detail("key", args[0]).Write(err)
		if err != nil {
			return PrintJSONError(c, fmt.Errorf("config get %q: %w", args[0], err))
		}
		if JSON() {
			return PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("cli:config", "set").Author(Author()).Detail("key", args[0]).Write(err)
			return PrintJSONError(c, fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("cli:config", "set").Author(Author()).Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return PrintJSONError(c, fmt.Errorf("config save: %w", saveErr))
		}
		if JSON() {
			return PrintJSON(map[string]string{"key": args[0], "value": args[1], "scope": scopeName})
		}
		fmt.Fprintf(Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(newConfigCmd())
}
