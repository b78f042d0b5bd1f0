// A command line tool to check typed reproductions of sample texts
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fractalqb/retype/internal/config"
)

const longUsage = `Compare texts typed by a user with their sample text.

Texts are compared token by token. Tokens are words, single spaces and the
punctuation marks . , ! ? ; : each. Reported errors are missing and extra
tokens. Tokens on the whitelist are never errors, "[kw]" and "[KW]" are
always whitelisted.

Whitelist entries are separated by ',', ';' or newlines.

CONFIGURATION

Without --config the file .retype.yaml in the working directory or
retype/config.yaml in the XDG config directories is used:

   whitelist: ["[name]", "[date]"]
   max_tokens: 5000
   typo_distance: 2
   format: text | markdown | json
   log_level: debug | info | warn | error
`

var rootCmd = struct {
	cobra.Command
	cfgFile string
	verbose bool
	cfg     *config.Config
}{
	Command: cobra.Command{
		Use:           "retype",
		Short:         "Check typed reproductions of sample texts",
		Long:          longUsage,
		SilenceUsage:  true,
		SilenceErrors: true,
	},
}

func init() {
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentFlags().StringVarP(&rootCmd.cfgFile, "config", "c", "",
		"Set configuration file")
	rootCmd.PersistentFlags().BoolVarP(&rootCmd.verbose, "verbose", "v", false,
		"Enable debug logging")
}

func setup(cmd *cobra.Command, _ []string) (err error) {
	path, err := config.Find(rootCmd.cfgFile)
	switch {
	case errors.Is(err, config.ErrNotFound):
		rootCmd.cfg = config.Default()
	case err != nil:
		return err
	default:
		if rootCmd.cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	level := rootCmd.cfg.LogLevel.Level()
	if rootCmd.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(
		cmd.ErrOrStderr(),
		&slog.HandlerOptions{Level: level},
	)))
	if path != "" {
		slog.Debug("loaded configuration", "file", path)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "retype:", err)
		os.Exit(1)
	}
}
