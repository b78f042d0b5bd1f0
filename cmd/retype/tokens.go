package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fractalqb/retype"
)

func init() {
	tokensCmd.RunE = printTokens
	rootCmd.AddCommand(tokensCmd)
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [FILE]",
	Short: "Print the tokens of a text",
	Long: `Print each token of FILE or stdin with its position and kind. Space
tokens do not have a position.`,
	Args: cobra.MaximumNArgs(1),
}

func printTokens(cmd *cobra.Command, args []string) error {
	var (
		txt string
		err error
	)
	if len(args) == 0 {
		txt, err = retype.ReadText(cmd.InOrStdin())
	} else {
		txt, err = readFile(args[0])
	}
	if err != nil {
		return err
	}
	return writeTokens(cmd.OutOrStdout(), retype.Tokenize(txt))
}

func writeTokens(w io.Writer, toks []retype.Token) error {
	bw := bufio.NewWriter(w)
	pos := 0
	for _, t := range toks {
		if t.IsSpace() {
			fmt.Fprintf(bw, "     %-5s %q\n", t.Kind(), string(t))
		} else {
			pos++
			fmt.Fprintf(bw, "%4d %-5s %q\n", pos, t.Kind(), string(t))
		}
	}
	return bw.Flush()
}
