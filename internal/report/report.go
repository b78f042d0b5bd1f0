// Package report writes comparison results for humans and machines.
package report

import (
	"fmt"
	"io"

	"github.com/fractalqb/retype"
	"github.com/fractalqb/retype/internal/config"
)

// Writer writes the result of comparing the subject named name.
type Writer interface {
	Write(w io.Writer, name string, res *retype.Result) error
}

// New returns the writer for format. The empty format is text.
func New(format config.Format) (Writer, error) {
	switch format {
	case "", config.FormatText:
		return Text{}, nil
	case config.FormatMarkdown:
		return Markdown{}, nil
	case config.FormatJSON:
		return JSON{Indent: "  "}, nil
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}

func summary(res *retype.Result) string {
	return fmt.Sprintf("Total tokens: %d | Your tokens: %d | Errors: %d (missing: %d, extra: %d)",
		res.SampleTokens,
		res.UserTokens,
		res.Errors,
		res.Missing,
		res.Extra,
	)
}

const noErrors = "No errors. Excellent!"
