package report

import (
	"bufio"
	"io"
	"strings"

	"github.com/fractalqb/retype"
)

// Text writes a plain text report. Missing sample tokens are shown as
// {-token-}, whitelisted ones as {~token~}.
type Text struct{}

func (Text) Write(w io.Writer, name string, res *retype.Result) error {
	bw := bufio.NewWriter(w)
	if name != "" {
		bw.WriteString(name)
		bw.WriteString(": ")
	}
	bw.WriteString(summary(res))
	bw.WriteByte('\n')
	bw.WriteString(RenderText(res.Rendered))
	bw.WriteByte('\n')
	if res.OK() {
		bw.WriteString("- ")
		bw.WriteString(noErrors)
		bw.WriteByte('\n')
	}
	for _, rec := range res.Records {
		bw.WriteString("- ")
		bw.WriteString(rec.Message())
		bw.WriteByte('\n')
	}
	for _, ty := range res.Typos {
		bw.WriteString("  typo at ")
		bw.WriteString(ty.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// RenderText renders the sample tokens with their class.
func RenderText(rs []retype.Rendered) string {
	var sb strings.Builder
	for _, r := range rs {
		switch r.Class {
		case retype.Absent:
			sb.WriteString("{-")
			sb.WriteString(string(r.Token))
			sb.WriteString("-}")
		case retype.Whitelisted:
			sb.WriteString("{~")
			sb.WriteString(string(r.Token))
			sb.WriteString("~}")
		default:
			sb.WriteString(string(r.Token))
		}
	}
	return sb.String()
}
