package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fractalqb/retype"
	"github.com/fractalqb/retype/internal/config"
)

func testResult(t *testing.T, sample, typed string) *retype.Result {
	t.Helper()
	cmpr := retype.Compare{
		Whitelist:    retype.SessionWhitelist(""),
		TypoDistance: 2,
	}
	res, err := cmpr.Strings(sample, typed)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestNew(t *testing.T) {
	for _, f := range []config.Format{"", config.FormatText, config.FormatMarkdown, config.FormatJSON} {
		if _, err := New(f); err != nil {
			t.Errorf("%q: %s", f, err)
		}
	}
	if _, err := New("html"); err == nil {
		t.Error("html format accepted")
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := (Text{}).Write(&buf, "t", testResult(t, "Hello world", "Hello wrold")); err != nil {
		t.Fatal(err)
	}
	const want = `t: Total tokens: 3 | Your tokens: 3 | Errors: 2 (missing: 1, extra: 1)
Hello {-world-}
- Missing token at position 2: expected "world".
- Extra token at position 3: got "wrold".
  typo at position 2: typed "wrold" for "world"
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestText_rendering(t *testing.T) {
	var buf bytes.Buffer
	if err := (Text{}).Write(&buf, "", testResult(t, "The [kw] ran.", "The ran.")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "The{- -}{~[kw]~} ran.") {
		t.Errorf("rendering:\n%s", buf.String())
	}
	buf.Reset()
	if err := (Text{}).Write(&buf, "", testResult(t, "Hi.", "Hi.")); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "- No errors. Excellent!\n") {
		t.Errorf("no praise:\n%s", buf.String())
	}
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	res := testResult(t, "The [kw] said hello world", "The said hello wrold")
	if err := (Markdown{}).Write(&buf, "lesson 1", res); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, frag := range []string{
		"## lesson 1",
		"| Sample | 9 |",
		"| **Errors** | **3** |",
		"> The~~␣~~*\\[kw\\]* said hello ~~world~~",
		"1. Missing token at position 1: expected \"space\".",
		"### Probable Typos",
		"- position 5: typed \"wrold\" for \"world\"",
	} {
		if !strings.Contains(out, frag) {
			t.Errorf("missing %q in:\n%s", frag, out)
		}
	}
}

func TestMarkdown_noErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := (Markdown{}).Write(&buf, "", testResult(t, "Hi.", "Hi.")); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "## Typing Check") ||
		!strings.Contains(out, "[!TIP]") {
		t.Errorf("unexpected report:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSON{}).Write(&buf, "x", testResult(t, "Stop now", "Stop now.")); err != nil {
		t.Fatal(err)
	}
	var got jsonResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	want := jsonResult{
		Name:         "x",
		SampleTokens: 3,
		UserTokens:   4,
		Errors:       1,
		Extra:        1,
		Records: []jsonRecord{{
			Kind:     "extra",
			Position: 3,
			Token:    ".",
			Message:  `Extra token at position 3: got "symbol "."".`,
		}},
		Rendered: []jsonRendered{
			{"Stop", "correct"}, {" ", "correct"}, {"now", "correct"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
