package retype

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultMaxTokens is the token limit per side if Compare.MaxTokens is 0.
const DefaultMaxTokens = 5000

// ErrTooLarge is wrapped by *SizeError
var ErrTooLarge = errors.New("text too large")

// Side identifies the compared text an error relates to.
type Side int

const (
	SampleSide Side = iota
	UserSide
)

func (s Side) String() string {
	if s == UserSide {
		return "user"
	}
	return "sample"
}

type SizeError struct {
	Side   Side
	Tokens int
	Limit  int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s text has %d tokens, limit is %d", e.Side, e.Tokens, e.Limit)
}

func (e *SizeError) Unwrap() error { return ErrTooLarge }

type ReadError struct {
	Side Side
	err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s:%s", e.Side, e.err)
}

func (e *ReadError) Unwrap() error { return e.err }

// ErrorFunc is called for each typing error found by a comparison.
type ErrorFunc func(rec ErrorRecord)

// Compare compares sample texts with user texts. The zero value is ready to
// use. A Compare that is not modified can be used concurrently.
type Compare struct {
	Whitelist Whitelist
	// Maximum number of tokens for each side. If MaxTokens == 0
	// DefaultMaxTokens is used, if MaxTokens < 0 size is not limited.
	MaxTokens int
	// Maximum edit distance of typo hints. If TypoDistance <= 0 no typo
	// hints are computed.
	TypoDistance int
	// OnError is called for each error record in order
	OnError ErrorFunc
}

func (cmpr *Compare) limit() int {
	if cmpr.MaxTokens == 0 {
		return DefaultMaxTokens
	}
	return cmpr.MaxTokens
}

func (cmpr *Compare) Strings(sample, user string) (*Result, error) {
	sts := Tokenize(sample)
	if err := cmpr.checkSize(SampleSide, sts); err != nil {
		return nil, err
	}
	uts := Tokenize(user)
	if err := cmpr.checkSize(UserSide, uts); err != nil {
		return nil, err
	}
	steps := TrimTrailingSpaceDiff(Diff(sts, uts))
	res := Classify(steps, cmpr.Whitelist)
	res.SampleTokens = len(sts)
	res.UserTokens = len(uts)
	res.Typos = Typos(res, cmpr.TypoDistance)
	if cmpr.OnError != nil {
		for _, rec := range res.Records {
			cmpr.OnError(rec)
		}
	}
	return res, nil
}

// Readers reads sample and user with [ReadText] and compares them.
func (cmpr *Compare) Readers(sample, user io.Reader) (*Result, error) {
	stxt, err := ReadText(sample)
	if err != nil {
		return nil, &ReadError{Side: SampleSide, err: err}
	}
	utxt, err := ReadText(user)
	if err != nil {
		return nil, &ReadError{Side: UserSide, err: err}
	}
	return cmpr.Strings(stxt, utxt)
}

func (cmpr *Compare) Files(sample, user string) (*Result, error) {
	sr, err := os.Open(sample)
	if err != nil {
		return nil, &ReadError{Side: SampleSide, err: err}
	}
	defer sr.Close()
	ur, err := os.Open(user)
	if err != nil {
		return nil, &ReadError{Side: UserSide, err: err}
	}
	defer ur.Close()
	return cmpr.Readers(sr, ur)
}

func (cmpr *Compare) checkSize(side Side, ts []Token) error {
	if l := cmpr.limit(); l > 0 && len(ts) > l {
		return &SizeError{Side: side, Tokens: len(ts), Limit: l}
	}
	return nil
}

// ReadText reads all of r and drops one final line separator "\n" or
// "\r\n". Files usually end with a newline the typist never types.
func ReadText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	txt := string(data)
	if strings.HasSuffix(txt, "\n") {
		txt = dropCR(txt[:len(txt)-1])
	}
	return txt, nil
}

func dropCR(s string) string {
	if l := len(s); l > 0 && s[l-1] == '\r' {
		return s[:l-1]
	}
	return s
}
