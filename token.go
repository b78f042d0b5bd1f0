package retype

import "strings"

// Token kinds
const (
	// A run of characters that are neither space nor punctuation.
	Word Kind = iota
	// Exactly one U+0020.
	Space
	// Exactly one rune from [Punctuation].
	Punct
)

// Punctuation is the fixed set of marks that are tokens of their own.
// Other marks, tabs and line breaks are word characters.
const Punctuation = ".,!?;:"

type Kind int

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Space:
		return "space"
	case Punct:
		return "punct"
	}
	return "invalid"
}

// Token is an atomic unit of compared text. Tokens produced by [Tokenize]
// are never empty.
type Token string

const spaceToken Token = " "

func (t Token) Kind() Kind {
	switch {
	case t == spaceToken:
		return Space
	case len(t) == 1 && isPunct(t[0]):
		return Punct
	}
	return Word
}

func (t Token) IsSpace() bool { return t == spaceToken }

// Readable names the token for error messages.
func (t Token) Readable() string {
	switch t.Kind() {
	case Space:
		return "space"
	case Punct:
		return `symbol "` + string(t) + `"`
	}
	return string(t)
}

func isPunct(c byte) bool { return strings.IndexByte(Punctuation, c) >= 0 }

// Tokenize splits text into words, single spaces and single punctuation
// marks. Concatenating the result reproduces text.
func Tokenize(text string) []Token {
	var (
		res  []Token
		word = -1
	)
	flush := func(end int) {
		if word >= 0 {
			res = append(res, Token(text[word:end]))
			word = -1
		}
	}
	for i, r := range text {
		switch {
		case r == ' ':
			flush(i)
			res = append(res, spaceToken)
		case r < 0x80 && isPunct(byte(r)):
			flush(i)
			res = append(res, Token(text[i:i+1]))
		case word < 0:
			word = i
		}
	}
	flush(len(text))
	return res
}

// Join concatenates tokens back to text.
func Join(ts []Token) string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteString(string(t))
	}
	return sb.String()
}
