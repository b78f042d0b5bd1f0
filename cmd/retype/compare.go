package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fractalqb/retype"
	"github.com/fractalqb/retype/internal/config"
	"github.com/fractalqb/retype/internal/report"
)

func init() {
	compareCmd.RunE = checkFiles
	compareCmd.Flags().StringVarP(&compareCmd.sample, "sample", "s", "",
		"Set sample file name")
	compareCmd.MarkFlagRequired("sample")
	compareCmd.Flags().StringVarP(&compareCmd.whitelist, "whitelist", "w", "",
		"Add whitelist entries")
	compareCmd.Flags().StringVarP(&compareCmd.format, "format", "f", "",
		"Set report format: text, markdown or json")
	compareCmd.Flags().IntVarP(&compareCmd.jobs, "jobs", "j", runtime.NumCPU(),
		"Set number of files compared in parallel")
	rootCmd.AddCommand(&compareCmd.Command)
}

var compareCmd = struct {
	cobra.Command
	sample    string
	whitelist string
	format    string
	jobs      int
}{
	Command: cobra.Command{
		Use:   "compare -s SAMPLE [FILE]...",
		Short: "Compare typed files to a sample file",
		Long: `Compare each typed FILE to the sample file. Without FILE the
typed text is read from stdin. Exits with an error if any file has typing
errors.`,
	},
}

// FailedCount is the number of compared files with typing errors.
type FailedCount int

func (fc FailedCount) Error() string {
	if fc == 1 {
		return "1 file with typing errors"
	}
	return fmt.Sprintf("%d files with typing errors", fc)
}

func checkFiles(cmd *cobra.Command, files []string) error {
	cfg := rootCmd.cfg
	format := cfg.Format
	if compareCmd.format != "" {
		format = config.Format(compareCmd.format)
	}
	wr, err := report.New(format)
	if err != nil {
		return err
	}
	cmpr := cfg.Compare(compareCmd.whitelist)
	slog.Debug("compare",
		"sample", compareCmd.sample,
		"whitelist", cmpr.Whitelist.Entries(),
		"files", len(files),
	)
	sample, err := readFile(compareCmd.sample)
	if err != nil {
		return fmt.Errorf("sample: %w", err)
	}

	if len(files) == 0 {
		typed, err := retype.ReadText(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		res, err := cmpr.Strings(sample, typed)
		if err != nil {
			return err
		}
		if err = wr.Write(cmd.OutOrStdout(), "stdin", res); err != nil {
			return err
		}
		if !res.OK() {
			return FailedCount(1)
		}
		return nil
	}

	results := make([]*retype.Result, len(files))
	eg, ctx := errgroup.WithContext(cmd.Context())
	eg.SetLimit(max(compareCmd.jobs, 1))
	for i, file := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			typed, err := readFile(file)
			if err != nil {
				return err
			}
			res, err := cmpr.Strings(sample, typed)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	failed := 0
	for i, res := range results {
		if err := wr.Write(cmd.OutOrStdout(), files[i], res); err != nil {
			return err
		}
		if !res.OK() {
			failed++
		}
		slog.Debug("compared", "file", files[i], "errors", res.Errors)
	}
	if failed > 0 {
		return FailedCount(failed)
	}
	return nil
}

func readFile(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return retype.ReadText(f)
}
