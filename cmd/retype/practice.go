package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fractalqb/retype"
	"github.com/fractalqb/retype/internal/report"
)

func init() {
	practiceCmd.RunE = practice
	practiceCmd.Flags().StringVarP(&practiceCmd.whitelist, "whitelist", "w", "",
		"Add whitelist entries")
	rootCmd.AddCommand(&practiceCmd.Command)
}

var practiceCmd = struct {
	cobra.Command
	whitelist string
}{
	Command: cobra.Command{
		Use:   "practice EXERCISES",
		Short: "Type the exercises from a file one after another",
		Long: `Show each exercise from the EXERCISES file and check the text typed
in answer. Exercises are separated by blank lines, a line starting with '#'
titles the next exercise. An answer ends with an empty line.

Instead of an answer enter one of:
  :skip          skip the current exercise
  :restart       start again with the first exercise
  :hint FRAGMENT list whitelist entries completing FRAGMENT
  :quit          end the session`,
		Args: cobra.ExactArgs(1),
	},
}

func practice(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	exs, err := retype.ReadExercises(f)
	f.Close()
	if err != nil {
		return err
	}
	if len(exs) == 0 {
		return fmt.Errorf("%s: %w", args[0], retype.ErrNoExercise)
	}
	cfg := rootCmd.cfg
	cmpr := cfg.Compare("")
	sess := retype.NewSession(cmpr, cfg.RawWhitelist(practiceCmd.whitelist), exs...)
	slog.Debug("practice",
		"exercises", len(exs),
		"whitelist", sess.Whitelist().Entries(),
	)
	return runSession(sess, cmd.InOrStdin(), cmd.OutOrStdout())
}

func runSession(sess *retype.Session, in io.Reader, out io.Writer) error {
	scn := bufio.NewScanner(in)
	scn.Buffer(nil, retype.MaxLineLength)
	prompt := func(ex *retype.Exercise) {
		title := ex.Title
		if title == "" {
			title = fmt.Sprintf("Exercise %d", sess.Summary().Exercises-sess.Left()+1)
		}
		fmt.Fprintf(out, "\n== %s (%d left)\n%s\n--\n", title, sess.Left(), ex.Sample)
	}
	var lines []string
	ex := sess.Current()
	if ex != nil {
		prompt(ex)
	}
SCAN:
	for ex != nil && scn.Scan() {
		line := scn.Text()
		if len(lines) == 0 {
			switch cmd, arg, _ := strings.Cut(line, " "); cmd {
			case "":
				continue
			case ":quit":
				break SCAN
			case ":skip":
				sess.Skip()
			case ":restart":
				sess.Restart()
			case ":hint":
				fmt.Fprintln(out, strings.Join(sess.Suggest(arg), " "))
				continue
			default:
				lines = append(lines, line)
				continue
			}
			if ex = sess.Current(); ex != nil {
				prompt(ex)
			}
			continue
		}
		if line != "" {
			lines = append(lines, line)
			continue
		}
		if err := checkAnswer(sess, out, lines); err != nil {
			return err
		}
		lines = lines[:0]
		if ex = sess.Current(); ex != nil {
			prompt(ex)
		}
	}
	if err := scn.Err(); err != nil {
		return err
	}
	if ex != nil && len(lines) > 0 {
		if err := checkAnswer(sess, out, lines); err != nil {
			return err
		}
	}
	sum := sess.Summary()
	fmt.Fprintf(out, "\nChecked %d of %d exercises, skipped %d. Errors: %d (missing: %d, extra: %d)\n",
		sum.Checked, sum.Exercises, sum.Skipped,
		sum.Errors, sum.Missing, sum.Extra,
	)
	return nil
}

func checkAnswer(sess *retype.Session, out io.Writer, lines []string) error {
	res, err := sess.Check(strings.Join(lines, "\n"))
	if err != nil {
		return err
	}
	return report.Text{}.Write(out, "", res)
}
