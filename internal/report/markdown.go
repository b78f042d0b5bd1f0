package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/fractalqb/retype"
)

// Markdown writes a GitHub flavored markdown report. Missing sample tokens
// are struck through, whitelisted ones are italic.
type Markdown struct{}

func (Markdown) Write(w io.Writer, name string, res *retype.Result) error {
	md := markdown.NewMarkdown(w)
	if name == "" {
		name = "Typing Check"
	}
	md.H2(name)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Tokens", "Count"},
		Rows: [][]string{
			{"Sample", strconv.Itoa(res.SampleTokens)},
			{"Typed", strconv.Itoa(res.UserTokens)},
			{"Missing", strconv.Itoa(res.Missing)},
			{"Extra", strconv.Itoa(res.Extra)},
			{"**Errors**", markdown.Bold(strconv.Itoa(res.Errors))},
		},
		Alignment: []markdown.TableAlignment{markdown.AlignLeft, markdown.AlignRight},
	})
	md.PlainText("")
	md.Blockquote(renderMarkdown(res.Rendered))
	md.PlainText("")
	if res.OK() {
		md.Tip(noErrors)
		return md.Build()
	}
	msgs := make([]string, len(res.Records))
	for i, rec := range res.Records {
		msgs[i] = rec.Message()
	}
	md.OrderedList(msgs...)
	if len(res.Typos) > 0 {
		md.PlainText("")
		md.H3("Probable Typos")
		md.PlainText("")
		typos := make([]string, len(res.Typos))
		for i, ty := range res.Typos {
			typos[i] = ty.String()
		}
		md.BulletList(typos...)
	}
	return md.Build()
}

func renderMarkdown(rs []retype.Rendered) string {
	var sb strings.Builder
	for _, r := range rs {
		tok := escape(string(r.Token))
		switch r.Class {
		case retype.Absent:
			if r.Token.IsSpace() {
				tok = "␣"
			}
			sb.WriteString(markdown.Strikethrough(tok))
		case retype.Whitelisted:
			sb.WriteString(markdown.Italic(tok))
		default:
			sb.WriteString(tok)
		}
	}
	return sb.String()
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "~", `\~`, "`", "\\`",
	"[", `\[`, "]", `\]`, "\n", "  \n",
)

func escape(s string) string { return mdEscaper.Replace(s) }
