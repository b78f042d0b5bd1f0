package retype

import "fmt"

// Render classes of sample tokens
const (
	Correct Class = iota
	Whitelisted
	Absent
)

type Class int

func (c Class) String() string {
	switch c {
	case Correct:
		return "correct"
	case Whitelisted:
		return "whitelisted"
	case Absent:
		return "missing"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Rendered is a sample token with its render class.
type Rendered struct {
	Token Token
	Class Class
}

// ErrorRecord is a typing mistake. Op is either Missing or Extra. Pos is the
// number of non-space tokens consumed from sample and user up to and
// including Token.
type ErrorRecord struct {
	Op    Op
	Pos   int
	Token Token

	gap int
}

func (e ErrorRecord) Message() string {
	if e.Op == Extra {
		return fmt.Sprintf("Extra token at position %d: got \"%s\".", e.Pos, e.Token.Readable())
	}
	return fmt.Sprintf("Missing token at position %d: expected \"%s\".", e.Pos, e.Token.Readable())
}

func (e ErrorRecord) String() string {
	return fmt.Sprintf("%s@%d:%q", e.Op, e.Pos, e.Token)
}

// Result is the outcome of comparing a sample with a user text.
type Result struct {
	SampleTokens int
	UserTokens   int
	Errors       int
	Missing      int
	Extra        int
	Records      []ErrorRecord
	// Sample tokens in order, Extra steps are not rendered.
	Rendered []Rendered
	// Probable misspellings, see [Typos].
	Typos []Typo
}

func (res *Result) OK() bool { return res.Errors == 0 }

// Classify walks steps and counts all Missing and Extra steps as errors
// unless their token is in wl. SampleTokens and UserTokens are the number
// of tokens steps reconstruct for each side, i.e. trimmed steps are not
// counted. Use [Compare] to get the token counts of the untrimmed texts.
func Classify(steps []Step, wl Whitelist) *Result {
	res := &Result{Rendered: make([]Rendered, 0, len(steps))}
	pos, gap := 0, 0
	consume := func(t Token) {
		if !t.IsSpace() {
			pos++
		}
	}
	for _, s := range steps {
		switch s.Op {
		case Match:
			res.SampleTokens++
			res.UserTokens++
			consume(s.Sample)
			gap++
			if wl.Contains(s.Sample) {
				res.Rendered = append(res.Rendered, Rendered{s.Sample, Whitelisted})
			} else {
				res.Rendered = append(res.Rendered, Rendered{s.Sample, Correct})
			}
		case Missing:
			res.SampleTokens++
			consume(s.Sample)
			if wl.Contains(s.Sample) {
				res.Rendered = append(res.Rendered, Rendered{s.Sample, Whitelisted})
				break
			}
			res.Errors++
			res.Missing++
			res.Rendered = append(res.Rendered, Rendered{s.Sample, Absent})
			res.Records = append(res.Records, ErrorRecord{
				Op: Missing, Pos: pos, Token: s.Sample, gap: gap,
			})
		case Extra:
			res.UserTokens++
			consume(s.User)
			if wl.Contains(s.User) {
				break
			}
			res.Errors++
			res.Extra++
			res.Records = append(res.Records, ErrorRecord{
				Op: Extra, Pos: pos, Token: s.User, gap: gap,
			})
		}
	}
	return res
}
